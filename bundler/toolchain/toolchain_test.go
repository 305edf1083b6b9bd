package toolchain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	available map[string]string
}

func (s stubRunner) Look(name string) (string, error) {
	if path, ok := s.available[name]; ok {
		return path, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

func (s stubRunner) Run(name string, args ...string) error { return nil }

func TestRequire(t *testing.T) {
	runner := stubRunner{available: map[string]string{
		BytecodeCompiler: "/usr/local/bin/hmsc",
	}}

	path, err := Require(runner, BytecodeCompiler)
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/hmsc", path)
}

func TestRequireMissingTool(t *testing.T) {
	runner := stubRunner{}

	_, err := Require(runner, JSTranspiler)
	require.Error(t, err)
	assert.ErrorContains(t, err, "`hms2js` was not found on PATH")
}

func TestExecRunnerLookMissing(t *testing.T) {
	runner := NewRunner(false)

	_, err := runner.Look("hmsbuild-no-such-tool-for-sure")
	assert.Error(t, err)
}

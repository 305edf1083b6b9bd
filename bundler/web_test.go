package bundler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildWebDisabled(t *testing.T) {
	cfg := testConfig(t)
	source := writeTestSource(t, "fn main() {}\n")
	runner := newFakeRunner()

	_, err := BuildWeb(cfg, runner, source)
	assert.ErrorContains(t, err, "disabled")

	// The placeholder must not touch the filesystem or spawn anything.
	assert.Empty(t, runner.calls)
	_, statErr := os.Stat(cfg.BuildDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestBuildWebMissingSource(t *testing.T) {
	cfg := testConfig(t)

	_, err := BuildWeb(cfg, newFakeRunner(), filepath.Join(t.TempDir(), "ghost.hms"))
	assert.ErrorContains(t, err, "ghost.hms")
}

package bundler

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/smarthome-go/hmsbuild/bundler/toolchain"
)

// shimSource is the installed C entrypoint that boots the embedded bytecode.
const shimSource = "runtime/shim.c"

// BuildNative compiles a source file into a native executable. The pipeline
// is strictly sequential: assemble the build input, compile it to an
// embeddable bytecode C array with the bytecode compiler, then link the array
// against the installed runtime shim with the host C compiler.
//
// All prerequisites (source file, both compilers) are checked before any file
// is written.
func BuildNative(cfg Config, runner toolchain.Runner, sourcePath string) (string, error) {
	if _, err := os.Stat(sourcePath); err != nil {
		return "", fmt.Errorf("could not read source file `%s`: %w", sourcePath, err)
	}

	if _, err := toolchain.Require(runner, toolchain.BytecodeCompiler); err != nil {
		return "", err
	}
	if _, err := toolchain.Require(runner, cfg.CC); err != nil {
		return "", err
	}

	assembled, err := AssembleSource(cfg, sourcePath)
	if err != nil {
		return "", err
	}

	name := appName(cfg, sourcePath)
	bytecodeC := filepath.Join(cfg.BuildDir, name+".c")

	if err := runner.Run(toolchain.BytecodeCompiler, "--embed", "-o", bytecodeC, assembled); err != nil {
		return "", err
	}

	shim := filepath.Join(cfg.InstallDir, shimSource)
	shimCopy := filepath.Join(cfg.BuildDir, name+"_shim.c")
	if err := copyFile(shim, shimCopy); err != nil {
		return "", fmt.Errorf("could not copy runtime shim: %w", err)
	}

	executable := filepath.Join(cfg.BuildDir, name)
	if err := runner.Run(cfg.CC, "-O2", "-o", executable, shimCopy, bytecodeC, "-lm"); err != nil {
		return "", err
	}

	if !cfg.Debug {
		if err := removeIntermediates(assembled, bytecodeC, shimCopy); err != nil {
			return "", err
		}
	}

	return executable, nil
}

// removeIntermediates deletes the given build intermediates after a
// successful build. Debug builds skip this so the files can be inspected.
func removeIntermediates(paths ...string) error {
	for _, path := range paths {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("could not remove intermediate `%s`: %w", path, err)
		}
	}
	return nil
}

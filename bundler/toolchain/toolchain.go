// Package toolchain locates and invokes the external compilers the bundler
// delegates all real work to. Every tool is looked up on the host PATH; a
// missing tool is a user-reported, fatal condition.
package toolchain

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"
)

// Names of the external tools expected on PATH.
const (
	BytecodeCompiler = "hmsc"
	JSTranspiler     = "hms2js"
	DeviceBundler    = "xcodebuild"
)

// Runner abstracts tool lookup and invocation so build drivers can be tested
// without spawning processes.
type Runner interface {
	// Look resolves a tool name to an executable path.
	Look(name string) (string, error)

	// Run invokes a tool and blocks until it exits.
	Run(name string, args ...string) error
}

type execRunner struct {
	stdout  io.Writer
	stderr  io.Writer
	verbose bool
}

// NewRunner returns a Runner backed by the host PATH. With verbose set, every
// invocation is logged before it runs.
func NewRunner(verbose bool) Runner {
	return &execRunner{
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		verbose: verbose,
	}
}

func (r *execRunner) Look(name string) (string, error) {
	return exec.LookPath(name)
}

func (r *execRunner) Run(name string, args ...string) error {
	if r.verbose {
		log.Printf("Executing: %s %s", name, strings.Join(args, " "))
	}

	cmd := exec.Command(name, args...)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("`%s` failed: %w", name, err)
	}

	return nil
}

// Require resolves a tool or returns an error suitable for direct display.
func Require(r Runner, name string) (string, error) {
	path, err := r.Look(name)
	if err != nil {
		return "", fmt.Errorf("`%s` was not found on PATH: install it and try again", name)
	}
	return path, nil
}

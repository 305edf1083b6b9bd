package bundler

import (
	"fmt"
	"os"
	"path/filepath"
)

// sourceExt is the extension of Homescript sources and of the assembled
// build input.
const sourceExt = ".hms"

// AssembleSource produces the single compiler input for a build: the bundled
// library followed by the user's source with its standard-library import
// stripped. The result is written to `<buildDir>/<name>.hms`.
//
// The source file is validated before anything is written, so a missing input
// leaves the filesystem untouched.
func AssembleSource(cfg Config, sourcePath string) (string, error) {
	source, err := os.ReadFile(sourcePath)
	if err != nil {
		return "", fmt.Errorf("could not read source file `%s`: %w", sourcePath, err)
	}

	library, err := AssembleLibrary(cfg.InstallDir)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(cfg.BuildDir, 0755); err != nil {
		return "", fmt.Errorf("could not create build directory `%s`: %w", cfg.BuildDir, err)
	}

	assembled := library + StripStdImport(string(source))

	outPath := filepath.Join(cfg.BuildDir, appName(cfg, sourcePath)+sourceExt)
	if err := os.WriteFile(outPath, []byte(assembled), 0644); err != nil {
		return "", fmt.Errorf("could not write assembled source `%s`: %w", outPath, err)
	}

	return outPath, nil
}

package bundler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// intermediateGlobs are the build intermediates removed by every clean run,
// relative to the build directory.
var intermediateGlobs = []string{
	"*.hms",
	"*.c",
	"*.o",
	"*.js",
}

// Clean removes the defined set of intermediate files from the build
// directory. With all set, final artifacts (executables, app bundles, device
// project trees) are removed too. Anything else in the build directory is
// left untouched. The removed paths are returned for reporting.
func Clean(cfg Config, all bool) ([]string, error) {
	if _, err := os.Stat(cfg.BuildDir); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not read build directory `%s`: %w", cfg.BuildDir, err)
	}

	var removed []string

	for _, pattern := range intermediateGlobs {
		matches, err := filepath.Glob(filepath.Join(cfg.BuildDir, pattern))
		if err != nil {
			return removed, err
		}

		for _, path := range matches {
			if err := os.Remove(path); err != nil {
				return removed, fmt.Errorf("could not remove `%s`: %w", path, err)
			}
			removed = append(removed, path)
		}
	}

	if !all {
		return removed, nil
	}

	entries, err := os.ReadDir(cfg.BuildDir)
	if err != nil {
		return removed, fmt.Errorf("could not read build directory `%s`: %w", cfg.BuildDir, err)
	}

	for _, entry := range entries {
		if !isFinalArtifact(entry.Name(), entry.IsDir()) {
			continue
		}

		path := filepath.Join(cfg.BuildDir, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			return removed, fmt.Errorf("could not remove `%s`: %w", path, err)
		}
		removed = append(removed, path)
	}

	return removed, nil
}

// isFinalArtifact reports whether a build directory entry is a final build
// product: an app bundle, a device project tree, or a native executable
// (which has no extension).
func isFinalArtifact(name string, isDir bool) bool {
	if isDir {
		return strings.HasSuffix(name, ".app") ||
			strings.HasSuffix(name, "-"+string(TargetIOS)) ||
			strings.HasSuffix(name, "-"+string(TargetTVOS))
	}

	return filepath.Ext(name) == ""
}

// Package manifest reads the optional `bundle.yaml` project manifest that
// supplies bundle metadata for the macOS and device targets.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Filename is the manifest's expected name next to the application source.
const Filename = "bundle.yaml"

// Manifest describes the application being packaged.
type Manifest struct {
	Name         string `yaml:"name"`
	Identifier   string `yaml:"identifier"`
	Version      string `yaml:"version"`
	Organization string `yaml:"organization"`
}

// Default fills in the values used when no manifest is present.
func Default(name string) Manifest {
	return Manifest{
		Name:       name,
		Identifier: fmt.Sprintf("org.homescript.%s", name),
		Version:    "0.1.0",
	}
}

// Load reads `bundle.yaml` from dir. A missing manifest is not an error: the
// defaults for fallbackName are returned instead. Fields absent from the file
// fall back to their defaults as well.
func Load(dir string, fallbackName string) (Manifest, error) {
	defaults := Default(fallbackName)

	path := filepath.Join(dir, Filename)
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaults, nil
		}
		return Manifest{}, fmt.Errorf("could not read manifest `%s`: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(contents, &m); err != nil {
		return Manifest{}, fmt.Errorf("invalid manifest `%s`: %w", path, err)
	}

	if m.Name == "" {
		m.Name = defaults.Name
	}
	if m.Identifier == "" {
		m.Identifier = defaults.Identifier
	}
	if m.Version == "" {
		m.Version = defaults.Version
	}

	return m, nil
}

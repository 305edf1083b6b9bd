package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingManifestUsesDefaults(t *testing.T) {
	m, err := Load(t.TempDir(), "thermostat")
	require.NoError(t, err)

	assert.Equal(t, "thermostat", m.Name)
	assert.Equal(t, "org.homescript.thermostat", m.Identifier)
	assert.Equal(t, "0.1.0", m.Version)
}

func TestLoadFullManifest(t *testing.T) {
	dir := t.TempDir()
	contents := `name: Thermostat
identifier: org.smarthome.thermostat
version: 2.3.1
organization: Smarthome
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, Filename), []byte(contents), 0644))

	m, err := Load(dir, "app")
	require.NoError(t, err)

	assert.Equal(t, Manifest{
		Name:         "Thermostat",
		Identifier:   "org.smarthome.thermostat",
		Version:      "2.3.1",
		Organization: "Smarthome",
	}, m)
}

func TestLoadPartialManifestFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, Filename), []byte("name: Thermostat\n"), 0644))

	m, err := Load(dir, "app")
	require.NoError(t, err)

	assert.Equal(t, "Thermostat", m.Name)
	assert.Equal(t, "org.homescript.app", m.Identifier)
	assert.Equal(t, "0.1.0", m.Version)
}

func TestLoadInvalidManifest(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, Filename), []byte("name: [unclosed"), 0644))

	_, err := Load(dir, "app")
	assert.ErrorContains(t, err, "invalid manifest")
}

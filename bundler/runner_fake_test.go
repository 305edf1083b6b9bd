package bundler

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeRunner records tool invocations instead of spawning processes. Any
// `-o <path>` argument pair produces a placeholder output file, mimicking
// what the real tools leave behind.
type fakeRunner struct {
	tools map[string]bool
	calls [][]string
}

func newFakeRunner(tools ...string) *fakeRunner {
	available := make(map[string]bool, len(tools))
	for _, tool := range tools {
		available[tool] = true
	}
	return &fakeRunner{tools: available}
}

func (f *fakeRunner) Look(name string) (string, error) {
	if f.tools[name] {
		return filepath.Join("/usr/bin", name), nil
	}
	return "", errors.New("executable file not found in $PATH")
}

func (f *fakeRunner) Run(name string, args ...string) error {
	call := append([]string{name}, args...)
	f.calls = append(f.calls, call)

	for i, arg := range args {
		if arg == "-o" && i+1 < len(args) {
			if err := os.WriteFile(args[i+1], []byte(name+" output\n"), 0755); err != nil {
				return err
			}
		}
	}

	return nil
}

// testInstallDir builds a minimal installation tree: every library source in
// declared order plus the native runtime shim.
func testInstallDir(t *testing.T) string {
	t.Helper()

	installDir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(installDir, libDir), 0755))
	for idx, name := range LibraryFiles {
		content := []byte(libFixtureContent(idx, name))
		require.NoError(t, os.WriteFile(filepath.Join(installDir, libDir, name), content, 0644))
	}

	require.NoError(t, os.MkdirAll(filepath.Join(installDir, "runtime"), 0755))
	shim := []byte("int main(int argc, char **argv) { return hms_boot(argc, argv); }\n")
	require.NoError(t, os.WriteFile(filepath.Join(installDir, shimSource), shim, 0644))

	return installDir
}

func libFixtureContent(idx int, name string) string {
	return "// " + name + "\nfn lib_" + string(rune('a'+idx)) + "() {}\n"
}

func testConfig(t *testing.T) Config {
	t.Helper()

	return Config{
		InstallDir: testInstallDir(t),
		BuildDir:   filepath.Join(t.TempDir(), "build"),
		CC:         "cc",
	}
}

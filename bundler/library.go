package bundler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LibraryFiles lists the bundled library sources in the exact order they are
// concatenated. Later files may reference declarations from earlier ones, so
// the order is load-bearing.
var LibraryFiles = []string{
	"core.hms",
	"option.hms",
	"collections.hms",
	"strings.hms",
	"math.hms",
	"time.hms",
	"net.hms",
}

// libraryTrailer is appended after the concatenated library sources.
const libraryTrailer = `
// --- end of bundled standard library ---
pub fn __std_bundled() -> bool {
    return true;
}
`

// libDir is the library location below the installation directory.
const libDir = "lib"

// AssembleLibrary concatenates the installed library sources in their
// declared order and appends the fixed trailer.
func AssembleLibrary(installDir string) (string, error) {
	var builder strings.Builder

	for _, name := range LibraryFiles {
		path := filepath.Join(installDir, libDir, name)
		contents, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("could not read library source `%s`: %w", path, err)
		}

		builder.Write(contents)
		if len(contents) > 0 && contents[len(contents)-1] != '\n' {
			builder.WriteByte('\n')
		}
	}

	builder.WriteString(libraryTrailer)

	return builder.String(), nil
}

package bundler

import (
	"regexp"
	"strings"
)

// stdImportPattern matches the one import form the bundler resolves itself:
// the standard library is concatenated into the build input, so the import
// line must not survive into the compiler's view of the program.
var stdImportPattern = regexp.MustCompile(`^\s*import\s+.*\bfrom\s+"std"\s*;\s*$`)

// StripStdImport removes every line matching the recognized standard-library
// import. All other lines pass through verbatim, in order, including their
// original line endings.
func StripStdImport(source string) string {
	lines := strings.SplitAfter(source, "\n")

	var builder strings.Builder
	for _, line := range lines {
		if stdImportPattern.MatchString(strings.TrimSuffix(line, "\n")) {
			continue
		}
		builder.WriteString(line)
	}

	return builder.String()
}

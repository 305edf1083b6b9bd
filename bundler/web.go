package bundler

import (
	"fmt"
	"os"

	"github.com/smarthome-go/hmsbuild/bundler/toolchain"
)

// BuildWeb is a placeholder: the `hms2js` pipeline is disabled until the
// transpiler's new module format is released. The source file is still
// validated so callers get the same error shape as the other targets, but no
// files are written and no subprocess is started.
//
// TODO: re-enable once hms2js emits ES modules again.
func BuildWeb(cfg Config, runner toolchain.Runner, sourcePath string) (string, error) {
	if _, err := os.Stat(sourcePath); err != nil {
		return "", fmt.Errorf("could not read source file `%s`: %w", sourcePath, err)
	}

	return "", fmt.Errorf("the web target is disabled in this release (pending a `%s` upgrade)", toolchain.JSTranspiler)
}

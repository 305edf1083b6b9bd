// Package bundler assembles a Homescript application's sources, drives the
// external compilers, and packages the result into platform artifacts. Every
// computational step is delegated: the bytecode compiler, the host C
// compiler, the JS transpiler and `xcodebuild` are invoked as black boxes.
package bundler

import (
	"fmt"
	"path/filepath"

	"github.com/smarthome-go/hmsbuild/bundler/manifest"
	"github.com/smarthome-go/hmsbuild/bundler/toolchain"
)

// Build dispatches a source file to the driver for the selected target and
// returns the path of the produced artifact (or project tree). The project
// manifest only matters for the bundle targets, so it is loaded for those
// alone: a broken `bundle.yaml` must not fail a native or web build.
func Build(cfg Config, runner toolchain.Runner, sourcePath string, target Target) (string, error) {
	switch target {
	case TargetNative:
		return BuildNative(cfg, runner, sourcePath)
	case TargetWeb:
		return BuildWeb(cfg, runner, sourcePath)
	case TargetMacOS, TargetIOS, TargetTVOS:
		m, err := manifest.Load(filepath.Dir(sourcePath), appName(cfg, sourcePath))
		if err != nil {
			return "", err
		}

		if target == TargetMacOS {
			return BuildMacOS(cfg, runner, sourcePath, m)
		}
		return BuildDevice(cfg, runner, sourcePath, m, target)
	default:
		return "", fmt.Errorf("unknown target `%s`", target)
	}
}

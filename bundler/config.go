package bundler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Target selects the platform a build produces an artifact for.
type Target string

const (
	TargetNative Target = "native"
	TargetWeb    Target = "web"
	TargetMacOS  Target = "macos"
	TargetIOS    Target = "ios"
	TargetTVOS   Target = "tvos"
)

const defaultInstallDir = "/usr/local/share/hmsbuild"

// InstallDirEnv overrides the default installation directory.
const InstallDirEnv = "HMSBUILD_HOME"

// Targets returns every supported build target in display order.
func Targets() []Target {
	return []Target{TargetNative, TargetWeb, TargetMacOS, TargetIOS, TargetTVOS}
}

// ParseTarget validates a user-supplied target name.
// For unknown names, a close match is suggested.
func ParseTarget(input string) (Target, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))

	for _, target := range Targets() {
		if normalized == string(target) {
			return target, nil
		}
	}

	bestDist := -1
	best := Target("")
	for _, target := range Targets() {
		dist := levenshtein.ComputeDistance(normalized, string(target))
		if bestDist == -1 || dist < bestDist {
			bestDist = dist
			best = target
		}
	}

	if bestDist != -1 && bestDist <= 2 {
		return "", fmt.Errorf("unknown target `%s`: did you mean `%s`?", input, best)
	}

	return "", fmt.Errorf("unknown target `%s`: valid targets are %s", input, joinTargets())
}

func joinTargets() string {
	names := make([]string, 0, len(Targets()))
	for _, target := range Targets() {
		names = append(names, string(target))
	}
	return strings.Join(names, ", ")
}

// Config carries everything a build driver needs. The original tool kept this
// as process-wide state; here it is passed explicitly to every action.
type Config struct {
	// InstallDir is the root of the installed assets (library sources, the
	// native shim, platform templates).
	InstallDir string

	// BuildDir receives all intermediates and final artifacts.
	BuildDir string

	// Debug enables verbose plan output and keeps intermediate files around.
	Debug bool

	// AppName overrides the artifact name derived from the source filename.
	AppName string

	// CC is the C compiler executable. Empty means `$CC` or `cc`.
	CC string
}

// DefaultConfig resolves the installation directory from the environment and
// uses `build/` relative to the working directory.
func DefaultConfig() Config {
	installDir := os.Getenv(InstallDirEnv)
	if installDir == "" {
		installDir = defaultInstallDir
	}

	cc := os.Getenv("CC")
	if cc == "" {
		cc = "cc"
	}

	return Config{
		InstallDir: installDir,
		BuildDir:   "build",
		CC:         cc,
	}
}

// appName derives the artifact name for a source file, honoring the override.
func appName(cfg Config, sourcePath string) string {
	if cfg.AppName != "" {
		return cfg.AppName
	}
	base := filepath.Base(sourcePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

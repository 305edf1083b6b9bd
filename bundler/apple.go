package bundler

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/smarthome-go/hmsbuild/bundler/manifest"
	"github.com/smarthome-go/hmsbuild/bundler/toolchain"
)

// Placeholders rewritten inside the copied Xcode project template.
const (
	placeholderAppName  = "__APP_NAME__"
	placeholderBundleID = "__BUNDLE_ID__"
	placeholderVersion  = "__VERSION__"
)

// templateFileExts are the template files that contain placeholders.
var templateFileExts = map[string]bool{
	".pbxproj":    true,
	".plist":      true,
	".storyboard": true,
}

// deviceTemplateDir returns the installed Xcode project template for a
// device platform.
func deviceTemplateDir(cfg Config, platform Target) string {
	return filepath.Join(cfg.InstallDir, "assets", string(platform), "project")
}

// BuildDevice assembles an iOS or tvOS Xcode project: the installed template
// tree is copied into the build directory, the assembled source is placed
// into its resources, and the project placeholders are filled from the
// manifest. Building and signing the project stays with `xcodebuild`.
func BuildDevice(cfg Config, runner toolchain.Runner, sourcePath string, m manifest.Manifest, platform Target) (string, error) {
	if platform != TargetIOS && platform != TargetTVOS {
		return "", fmt.Errorf("`%s` is not a device target", platform)
	}

	if _, err := os.Stat(sourcePath); err != nil {
		return "", fmt.Errorf("could not read source file `%s`: %w", sourcePath, err)
	}

	if _, err := toolchain.Require(runner, toolchain.DeviceBundler); err != nil {
		return "", err
	}

	templateDir := deviceTemplateDir(cfg, platform)
	if _, err := os.Stat(templateDir); err != nil {
		return "", fmt.Errorf("the %s project template is not installed (expected at `%s`)", platform, templateDir)
	}

	assembled, err := AssembleSource(cfg, sourcePath)
	if err != nil {
		return "", err
	}

	name := appName(cfg, sourcePath)
	projectDir := filepath.Join(cfg.BuildDir, fmt.Sprintf("%s-%s", name, platform))

	if err := copyTree(templateDir, projectDir); err != nil {
		return "", fmt.Errorf("could not copy project template: %w", err)
	}

	resources := filepath.Join(projectDir, "Resources")
	if err := os.MkdirAll(resources, 0755); err != nil {
		return "", fmt.Errorf("could not create resources directory: %w", err)
	}
	if err := copyFile(assembled, filepath.Join(resources, "main.hms")); err != nil {
		return "", fmt.Errorf("could not place assembled source: %w", err)
	}

	if !cfg.Debug {
		if err := removeIntermediates(assembled); err != nil {
			return "", err
		}
	}

	if err := fillProjectPlaceholders(projectDir, m); err != nil {
		return "", err
	}

	return projectDir, nil
}

func fillProjectPlaceholders(projectDir string, m manifest.Manifest) error {
	return filepath.WalkDir(projectDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !templateFileExts[filepath.Ext(path)] {
			return nil
		}

		contents, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("could not read template file `%s`: %w", path, err)
		}

		replaced := strings.NewReplacer(
			placeholderAppName, m.Name,
			placeholderBundleID, m.Identifier,
			placeholderVersion, m.Version,
		).Replace(string(contents))

		if replaced == string(contents) {
			return nil
		}

		if err := os.WriteFile(path, []byte(replaced), 0644); err != nil {
			return fmt.Errorf("could not rewrite template file `%s`: %w", path, err)
		}

		return nil
	})
}

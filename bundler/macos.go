package bundler

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/smarthome-go/hmsbuild/bundler/manifest"
	"github.com/smarthome-go/hmsbuild/bundler/toolchain"
)

const infoPlistTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>CFBundleName</key>
	<string>{{.Name}}</string>
	<key>CFBundleExecutable</key>
	<string>{{.Executable}}</string>
	<key>CFBundleIdentifier</key>
	<string>{{.Identifier}}</string>
	<key>CFBundleShortVersionString</key>
	<string>{{.Version}}</string>
	<key>CFBundlePackageType</key>
	<string>APPL</string>
	<key>CFBundleIconFile</key>
	<string>icon.icns</string>
	<key>NSHighResolutionCapable</key>
	<true/>
{{- if .Organization}}
	<key>NSHumanReadableCopyright</key>
	<string>Copyright {{.Organization}}</string>
{{- end}}
</dict>
</plist>
`

var infoPlist = template.Must(template.New("Info.plist").Parse(infoPlistTemplate))

type plistValues struct {
	Name         string
	Executable   string
	Identifier   string
	Version      string
	Organization string
}

// macOSIcon is the optional installed icon asset.
const macOSIcon = "assets/macos/icon.icns"

// BuildMacOS produces `<Name>.app` in the build directory: a native build
// placed under Contents/MacOS plus a generated Info.plist.
func BuildMacOS(cfg Config, runner toolchain.Runner, sourcePath string, m manifest.Manifest) (string, error) {
	executable, err := BuildNative(cfg, runner, sourcePath)
	if err != nil {
		return "", err
	}

	name := appName(cfg, sourcePath)
	appDir := filepath.Join(cfg.BuildDir, m.Name+".app")
	contents := filepath.Join(appDir, "Contents")

	for _, dir := range []string{
		filepath.Join(contents, "MacOS"),
		filepath.Join(contents, "Resources"),
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("could not create bundle directory `%s`: %w", dir, err)
		}
	}

	if err := copyFile(executable, filepath.Join(contents, "MacOS", name)); err != nil {
		return "", fmt.Errorf("could not place executable into bundle: %w", err)
	}

	var rendered bytes.Buffer
	err = infoPlist.Execute(&rendered, plistValues{
		Name:         m.Name,
		Executable:   name,
		Identifier:   m.Identifier,
		Version:      m.Version,
		Organization: m.Organization,
	})
	if err != nil {
		return "", fmt.Errorf("could not render Info.plist: %w", err)
	}

	plistPath := filepath.Join(contents, "Info.plist")
	if err := os.WriteFile(plistPath, rendered.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("could not write `%s`: %w", plistPath, err)
	}

	// The icon is optional: a bare installation still produces a valid bundle.
	icon := filepath.Join(cfg.InstallDir, macOSIcon)
	if _, err := os.Stat(icon); err == nil {
		if err := copyFile(icon, filepath.Join(contents, "Resources", "icon.icns")); err != nil {
			return "", fmt.Errorf("could not copy icon asset: %w", err)
		}
	}

	return appDir, nil
}

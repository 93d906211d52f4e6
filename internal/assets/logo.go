// Package assets loads branding assets for the dashboard chrome.
package assets

import (
	"log/slog"

	"github.com/spf13/afero"
)

// fallbackLogo is rendered when no logo file is configured or readable.
const fallbackLogo = `<svg width="120" height="120" viewBox="0 0 120 120" xmlns="http://www.w3.org/2000/svg">
  <rect width="120" height="120" rx="20" fill="#1a5276"/>
  <text x="60" y="65" text-anchor="middle" fill="white" font-size="20" font-weight="bold" font-family="Arial">LIBDASH</text>
  <text x="60" y="85" text-anchor="middle" fill="white" font-size="12" font-family="Arial">LIBRARY</text>
</svg>`

// LogoLoader reads the sidebar logo SVG from a filesystem. The afero
// abstraction lets tests supply an in-memory filesystem.
type LogoLoader struct {
	fs   afero.Fs
	path string
}

// NewLogoLoader creates a loader for the given filesystem and path.
func NewLogoLoader(fs afero.Fs, path string) *LogoLoader {
	return &LogoLoader{fs: fs, path: path}
}

// Load returns the logo SVG markup, falling back to the built-in logo when
// the file is missing or unreadable.
func (l *LogoLoader) Load() string {
	data, err := afero.ReadFile(l.fs, l.path)
	if err != nil {
		slog.Debug("Logo file not readable, using fallback", "path", l.path, "error", err)
		return fallbackLogo
	}
	return string(data)
}

// Package xdg exposes the XDG Base Directory paths used to locate
// configuration, data, cache, and state files. It wraps the adrg/xdg
// library, which honors the XDG_* environment variables and falls back to
// the platform conventions when they are unset.
package xdg

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// ConfigHome returns the base directory for user configuration files.
func ConfigHome() string {
	return xdg.ConfigHome
}

// DataHome returns the base directory for user data files.
func DataHome() string {
	return xdg.DataHome
}

// CacheHome returns the base directory for non-essential cached data.
func CacheHome() string {
	return xdg.CacheHome
}

// StateHome returns the base directory for user state files.
func StateHome() string {
	return xdg.StateHome
}

// RuntimeDir returns the base directory for runtime files.
func RuntimeDir() string {
	return xdg.RuntimeDir
}

// ConfigFile returns a path under ConfigHome for the given app-relative
// name, creating parent directories as needed.
func ConfigFile(relPath string) (string, error) {
	return xdg.ConfigFile(relPath)
}

// DataFile returns a path under DataHome for the given app-relative name,
// creating parent directories as needed.
func DataFile(relPath string) (string, error) {
	return xdg.DataFile(relPath)
}

// AppConfigDir returns the configuration directory for a named application.
func AppConfigDir(app string) string {
	return filepath.Join(xdg.ConfigHome, app)
}

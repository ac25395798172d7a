// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/panoshell/panoshell/constant"
	"github.com/panoshell/panoshell/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "PANOSHELL_CONFIG_PATH"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// Direct override: The path resolution can be explicitly specified via the PANOSHELL_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Panoshell))
}

// Cache resolves the absolute path to the application's persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		// Fallback: Revert to a localized cache directory if the system-provided path is inaccessible.
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Panoshell))
}

// Logs resolves the absolute path to the directory used for application diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Storage resolves the directory backing the durable extension storage.
// It is not created eagerly; backend selection probes it.
func Storage() string {
	return filepath.Join(Config(), "storage")
}

// Sync resolves the file holding the synchronized key/value area.
func Sync() string {
	return filepath.Join(Storage(), "sync.json")
}

// LocalStorage resolves the file emulating the local-origin string store used as fallback.
func LocalStorage() string {
	return filepath.Join(Cache(), "localstorage.json")
}

// Temp resolves a volatile filesystem path for transient application artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Panoshell))
}

// Busy resolves the marker file whose presence signals an active viewer interaction.
func Busy() string {
	return filepath.Join(Temp(), "busy")
}

// Fullscreen resolves the marker file whose presence signals a fullscreen viewer.
func Fullscreen() string {
	return filepath.Join(Temp(), "fullscreen")
}

package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "tjdelta"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/tjdelta by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/tjdelta by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/tjdelta/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/tjdelta/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// IdentityFilePath returns the path to name corrections and manual
// identifier overrides.
// Returns ~/.config/tjdelta/identity.yaml by default.
func IdentityFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "identity.yaml")
}

// EventCachePath returns the path to the SQLite cache of pitch events.
// Returns ~/.cache/tjdelta/events.sqlite by default.
func EventCachePath(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), "events.sqlite")
}

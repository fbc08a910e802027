package config

import (
	"os"
	"path/filepath"
)

// Environment variables overriding the default directories.
const (
	EnvConfigDir = "TUI_TEMPLATE_CONFIG"
	EnvDataDir   = "TUI_TEMPLATE_DATA"
)

const appDirName = "tui-template"

// ConfigDir returns the directory searched for config.yaml. The
// TUI_TEMPLATE_CONFIG environment variable takes precedence over the
// platform config directory.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appDirName)
	}
	return filepath.Join(".", ".config")
}

// DataDir returns the directory used for log files. The
// TUI_TEMPLATE_DATA environment variable takes precedence over the
// platform cache directory.
func DataDir() string {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir
	}
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, appDirName)
	}
	return filepath.Join(".", ".data")
}

// DefaultConfigPath returns the default config file location.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// DefaultLogPath returns the default log file location.
func DefaultLogPath() string {
	return filepath.Join(DataDir(), appDirName+".log")
}

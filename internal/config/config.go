package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755
)

var (
	// ConfigDir is the application configuration directory (<user config dir>/sniprrr)
	ConfigDir string

	// SnippetsFile is the persisted snippet list
	SnippetsFile string

	// SettingsFile is the optional YAML settings file
	SettingsFile string

	// DatabasePath is the SQLite database file for the history log
	DatabasePath string
)

// Initialize resolves the configuration paths and creates the config
// directory if it doesn't exist.
func Initialize() error {
	base, err := os.UserConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get user config directory: %w", err)
	}

	ConfigDir = filepath.Join(base, "sniprrr")
	SnippetsFile = filepath.Join(ConfigDir, "messages.json")
	SettingsFile = filepath.Join(ConfigDir, "config.yaml")
	DatabasePath = filepath.Join(ConfigDir, "sniprrr.db")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	return nil
}

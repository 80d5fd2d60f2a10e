package settings

import (
	"fmt"
	"os"

	"github.com/studiowebux/sniprrr/internal/config"
	"gopkg.in/yaml.v3"
)

// Settings holds the optional user preferences from config.yaml.
// Every field has a default; a missing or broken file never blocks startup.
type Settings struct {
	// QuitAfterCopy exits the program after a copy attempt, matching the
	// historical behavior. Off by default: the status bar reports the
	// copy result and the session continues.
	QuitAfterCopy bool `yaml:"quitAfterCopy"`

	// ConfirmDelete asks before removing the selected snippet.
	ConfirmDelete bool `yaml:"confirmDelete"`

	// HistoryEnabled controls the SQLite event log.
	HistoryEnabled *bool `yaml:"historyEnabled"`

	// HighlightSymbol prefixes the selected table row.
	HighlightSymbol string `yaml:"highlightSymbol"`
}

// Manager loads and saves settings.
type Manager struct {
	path     string
	settings *Settings
}

// NewManager creates a manager bound to the configured settings file.
func NewManager() *Manager {
	return &Manager{path: config.SettingsFile, settings: Defaults()}
}

// NewManagerWithPath creates a manager for an explicit file path.
func NewManagerWithPath(path string) *Manager {
	return &Manager{path: path, settings: Defaults()}
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	enabled := true
	return &Settings{
		QuitAfterCopy:   false,
		ConfirmDelete:   false,
		HistoryEnabled:  &enabled,
		HighlightSymbol: "> ",
	}
}

// Load reads the settings file. Read failures degrade to defaults, the
// same fail-open policy as the snippet store's load path.
func (m *Manager) Load() {
	defaults := Defaults()

	data, err := os.ReadFile(m.path)
	if err != nil {
		m.settings = defaults
		return
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		m.settings = defaults
		return
	}

	if s.HistoryEnabled == nil {
		s.HistoryEnabled = defaults.HistoryEnabled
	}
	if s.HighlightSymbol == "" {
		s.HighlightSymbol = defaults.HighlightSymbol
	}

	m.settings = &s
}

// Save writes the current settings to disk.
func (m *Manager) Save() error {
	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(m.path, data, config.FilePermissions); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// Get returns the current settings.
func (m *Manager) Get() *Settings {
	if m.settings == nil {
		m.settings = Defaults()
	}
	return m.settings
}

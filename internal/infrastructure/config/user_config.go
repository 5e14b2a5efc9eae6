package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CLIPreferences are operator preferences for the nations CLI, kept in ~/.nations/cli.yaml.
// Never store secrets here.
type CLIPreferences struct {
	// User id used by "country" subcommands when --user is omitted
	DefaultUserID string `yaml:"default_user_id,omitempty"`

	// Socket override for reaching the daemon
	SocketPath string `yaml:"socket_path,omitempty"`
}

// PreferencesStore loads and saves CLIPreferences
type PreferencesStore struct {
	path string
}

// NewPreferencesStore uses ~/.nations/cli.yaml
func NewPreferencesStore() (*PreferencesStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return NewPreferencesStoreAt(filepath.Join(homeDir, ".nations", "cli.yaml")), nil
}

// NewPreferencesStoreAt uses an explicit file path
func NewPreferencesStoreAt(path string) *PreferencesStore {
	return &PreferencesStore{path: path}
}

// Path returns the backing file
func (s *PreferencesStore) Path() string {
	return s.path
}

// Load reads the preferences; a missing file yields empty preferences
func (s *PreferencesStore) Load() (*CLIPreferences, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return &CLIPreferences{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cli preferences: %w", err)
	}

	var prefs CLIPreferences
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("failed to parse cli preferences: %w", err)
	}
	return &prefs, nil
}

// Save writes the preferences, creating the directory if needed
func (s *PreferencesStore) Save(prefs *CLIPreferences) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal cli preferences: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write cli preferences: %w", err)
	}
	return nil
}

// SetDefaultUser stores the default user id
func (s *PreferencesStore) SetDefaultUser(userID string) error {
	prefs, err := s.Load()
	if err != nil {
		return err
	}
	prefs.DefaultUserID = userID
	return s.Save(prefs)
}

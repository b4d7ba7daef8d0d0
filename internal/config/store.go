package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// SettingsFile is the settings file name inside the asset directory.
const SettingsFile = ".settings"

// Store reads and writes Settings as JSON in Dir.
type Store struct {
	Dir string
}

// Path returns the settings file location.
func (s Store) Path() string {
	return filepath.Join(s.Dir, SettingsFile)
}

// Load returns the persisted settings, or Defaults when none exist yet.
func (s Store) Load() (Settings, error) {
	data, err := os.ReadFile(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := Defaults()
	if err := json.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings %s: %w", s.Path(), err)
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("settings %s: %w", s.Path(), err)
	}
	return settings, nil
}

// Save writes settings, creating Dir if needed.
func (s Store) Save(settings Settings) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	payload, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(s.Path(), payload, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

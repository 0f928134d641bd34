package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const settingsFile = "settings.yaml"

// Settings are the player preferences kept between sessions.
type Settings struct {
	Lang  string `yaml:"lang"`
	Muted bool   `yaml:"muted"`
}

func DefaultSettings() Settings {
	return Settings{Lang: string(LangEN)}
}

// SettingsPath is settings.yaml under the user config directory.
func SettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("settings: config dir: %w", err)
	}
	return filepath.Join(dir, "eliko", settingsFile), nil
}

// LoadSettings reads path. A missing file yields the defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("settings: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("settings: parse %s: %w", path, err)
	}
	s.Lang = string(ParseLang(s.Lang))
	return s, nil
}

func SaveSettings(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("settings: mkdir: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("settings: write %s: %w", path, err)
	}
	return nil
}

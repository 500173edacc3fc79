// Package config persists user settings as a JSON file under %APPDATA%.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults applied when no config file exists or a field is missing.
const (
	DefaultOverlaySize = "l"
	DefaultTheme       = "modern_light_gray"
	DefaultPositionX   = 100
	DefaultPositionY   = 100
)

// Position is a screen coordinate pair for the overlay window.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Config holds all persisted user settings.
type Config struct {
	// OverlayPosition is the last saved top-left corner of the overlay.
	// Written whenever the overlay moves or is hidden.
	OverlayPosition Position `json:"overlay_position"`

	// OverlaySize is one of "hide", "s", "m", "l", "xl", "xxl".
	OverlaySize string `json:"overlay_size"`

	// AutoHide hides the overlay when the simulator is not the focused
	// application.
	AutoHide bool `json:"auto_hide"`

	// StartWithWindows mirrors whether a Startup-folder shortcut exists.
	StartWithWindows bool `json:"start_with_windows"`

	// Theme selects the control panel color theme.
	Theme string `json:"theme"`
}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		OverlayPosition:  Position{X: DefaultPositionX, Y: DefaultPositionY},
		OverlaySize:      DefaultOverlaySize,
		AutoHide:         true,
		StartWithWindows: false,
		Theme:            DefaultTheme,
	}
}

// GetConfigPath returns the config file path under %APPDATA%\SimRateMonitor.
// Falls back to the user home directory when APPDATA is not set.
func GetConfigPath() string {
	appData := os.Getenv("APPDATA")
	if appData == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		appData = home
	}

	return filepath.Join(appData, "SimRateMonitor", "config.json")
}

// Load reads the config file, returning defaults when the file is missing.
// A corrupt file is reported as an error; the caller decides whether to fall
// back to defaults.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom reads a config file from an explicit path.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if !ValidSize(cfg.OverlaySize) {
		cfg.OverlaySize = DefaultOverlaySize
	}

	return cfg, nil
}

// Save writes the config file, creating the directory if needed.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo writes the config to an explicit path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// ValidSize reports whether s names a known overlay size.
func ValidSize(s string) bool {
	switch s {
	case "hide", "s", "m", "l", "xl", "xxl":
		return true
	}

	return false
}

// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/alertbar/internal/alertbar"
)

// Default terminal host values.
const (
	DefaultCellWidth     = 10
	DefaultCellHeight    = 20
	DefaultStatusBarRows = 1
	DefaultNavBarRows    = 2
	DefaultFPS           = 60
)

// Config is the alertbar configuration.
// Loaded from ~/.config/alertbar/config.toml
type Config struct {
	Bar alertbar.Options `toml:"bar" yaml:"bar"`
	TUI TUIConfig        `toml:"tui" yaml:"tui"`
}

// TUIConfig holds terminal host settings.
type TUIConfig struct {
	CellWidth     int    `toml:"cell_width" yaml:"cell_width"`           // Points per column
	CellHeight    int    `toml:"cell_height" yaml:"cell_height"`         // Points per row
	StatusBarRows int    `toml:"status_bar_rows" yaml:"status_bar_rows"` // Rows reserved for the status line
	NavBarRows    int    `toml:"nav_bar_rows" yaml:"nav_bar_rows"`       // Rows of screen title chrome
	FPS           int    `toml:"fps" yaml:"fps"`                         // Animation frame rate
	Background    string `toml:"background" yaml:"background"`           // Empty = detect from terminal
	Mouse         bool   `toml:"mouse" yaml:"mouse"`                     // Click to tap
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Bar: alertbar.DefaultOptions(),
		TUI: TUIConfig{
			CellWidth:     DefaultCellWidth,
			CellHeight:    DefaultCellHeight,
			StatusBarRows: DefaultStatusBarRows,
			NavBarRows:    DefaultNavBarRows,
			FPS:           DefaultFPS,
			Background:    "", // Auto-detect
			Mouse:         true,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "alertbar", "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults, then overlay with file contents
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	// Write atomically via temp file
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return os.Rename(tmpPath, path)
}

// Marshal encodes the configuration as TOML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := c.Bar.Validate(); err != nil {
		return fmt.Errorf("bar: %w", err)
	}

	if c.TUI.CellWidth < 1 || c.TUI.CellHeight < 1 {
		return fmt.Errorf("cell size must be positive, got %dx%d", c.TUI.CellWidth, c.TUI.CellHeight)
	}
	if c.TUI.StatusBarRows < 0 {
		return fmt.Errorf("status_bar_rows must not be negative, got %d", c.TUI.StatusBarRows)
	}
	if c.TUI.NavBarRows < 0 {
		return fmt.Errorf("nav_bar_rows must not be negative, got %d", c.TUI.NavBarRows)
	}
	if c.TUI.FPS < 1 || c.TUI.FPS > 120 {
		return fmt.Errorf("fps must be between 1 and 120, got %d", c.TUI.FPS)
	}
	if c.TUI.Background != "" {
		if _, err := colorful.Hex(c.TUI.Background); err != nil {
			return fmt.Errorf("invalid background color %q: %w", c.TUI.Background, err)
		}
	}

	return nil
}

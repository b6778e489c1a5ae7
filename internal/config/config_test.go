package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 50.0, cfg.Bar.Size.BaseHeight)
	assert.Equal(t, 5.0, cfg.Bar.Size.Padding)
	assert.Equal(t, 2*time.Second, cfg.Bar.DismissAfter.Duration())
	assert.True(t, cfg.Bar.TapToDismiss)
	assert.Equal(t, 10, cfg.TUI.CellWidth)
	assert.Equal(t, 20, cfg.TUI.CellHeight)
	assert.Equal(t, 1, cfg.TUI.StatusBarRows)
	assert.Equal(t, 2, cfg.TUI.NavBarRows)
	assert.Equal(t, 60, cfg.TUI.FPS)
	assert.Empty(t, cfg.TUI.Background)
	assert.True(t, cfg.TUI.Mouse)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_ParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[bar]
image = "check"
dismiss_after = "5s"
tap_to_dismiss = false

[bar.colors]
background = "#1e1e2e"
background_opacity = 0.5
title = "#cdd6f4"

[bar.animation]
enabled = true
fade = true
duration = "300ms"

[bar.size]
base_height = 40
width = 200
padding = 0

[tui]
cell_width = 8
cell_height = 16
fps = 30
background = "#000000"
mouse = false
`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "check", cfg.Bar.Image)
	assert.Equal(t, 5*time.Second, cfg.Bar.DismissAfter.Duration())
	assert.False(t, cfg.Bar.TapToDismiss)
	assert.Equal(t, "#1e1e2e", cfg.Bar.Colors.Background)
	assert.Equal(t, 0.5, cfg.Bar.Colors.BackgroundOpacity)
	assert.Equal(t, "#cdd6f4", cfg.Bar.Colors.Title)
	assert.True(t, cfg.Bar.Animation.Fade)
	assert.Equal(t, 300*time.Millisecond, cfg.Bar.Animation.Duration.Duration())
	assert.Equal(t, 40.0, cfg.Bar.Size.BaseHeight)
	assert.Equal(t, 200.0, cfg.Bar.Size.Width)
	assert.Equal(t, 0.0, cfg.Bar.Size.Padding)
	assert.Equal(t, 8, cfg.TUI.CellWidth)
	assert.Equal(t, 16, cfg.TUI.CellHeight)
	assert.Equal(t, 30, cfg.TUI.FPS)
	assert.Equal(t, "#000000", cfg.TUI.Background)
	assert.False(t, cfg.TUI.Mouse)
}

func TestLoadConfig_PartialConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[bar.colors]
title = "#ff0000"
`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// Changed field
	assert.Equal(t, "#ff0000", cfg.Bar.Colors.Title)

	// Unchanged fields should have defaults
	assert.Equal(t, "#ffffff", cfg.Bar.Colors.Body)
	assert.Equal(t, 0.85, cfg.Bar.Colors.BackgroundOpacity)
	assert.Equal(t, 60, cfg.TUI.FPS)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	err := os.WriteFile(path, []byte(`this is not valid toml [`), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	err := os.WriteFile(path, []byte("[bar]\nimage = \"rocket\"\n"), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"bad bar color", func(c *Config) { c.Bar.Colors.Body = "white" }, true},
		{"zero cell width", func(c *Config) { c.TUI.CellWidth = 0 }, true},
		{"negative status rows", func(c *Config) { c.TUI.StatusBarRows = -1 }, true},
		{"negative nav rows", func(c *Config) { c.TUI.NavBarRows = -1 }, true},
		{"no nav rows", func(c *Config) { c.TUI.NavBarRows = 0 }, false},
		{"fps too high", func(c *Config) { c.TUI.FPS = 500 }, true},
		{"fps zero", func(c *Config) { c.TUI.FPS = 0 }, true},
		{"background hex", func(c *Config) { c.TUI.Background = "#1e1e2e" }, false},
		{"background name", func(c *Config) { c.TUI.Background = "dark" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Save(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subdir", "config.toml")

	cfg := DefaultConfig()
	cfg.Bar.Image = "caution"
	cfg.Bar.Animation.Fade = true
	cfg.TUI.FPS = 24

	err := cfg.Save(path)
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/alertbar/config.toml", ConfigPath())
}

func TestConfigPathDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	assert.Contains(t, ConfigPath(), filepath.Join("alertbar", "config.toml"))
}

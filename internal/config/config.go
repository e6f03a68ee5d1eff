package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"
)

// Config is the full markstorm configuration.
type Config struct {
	Toolbar ToolbarConfig `toml:"toolbar"`
	Format  FormatConfig  `toml:"format"`
	Plugins PluginConfig  `toml:"plugins"`
	Log     LogConfig     `toml:"log"`
}

// ToolbarConfig controls which actions the toolbar exposes and in what order.
type ToolbarConfig struct {
	// Actions lists the toolbar items by action name, in display order.
	Actions []string `toml:"actions"`

	// LinkDialog enables the two-step link prompt. When false, Link is
	// applied immediately with an empty URL.
	LinkDialog bool `toml:"link_dialog"`
}

// FormatConfig controls formatting defaults.
type FormatConfig struct {
	// ItalicMarker is the marker used for italics, "*" or "_".
	ItalicMarker string `toml:"italic_marker"`

	// TitleLevel is the heading level used by the Title action, 1..6.
	TitleLevel int `toml:"title_level"`
}

// PluginConfig controls the Lua plugin runtime.
type PluginConfig struct {
	// Enabled turns the Lua runtime on or off.
	Enabled bool `toml:"enabled"`

	// Paths lists Lua scripts to load at startup.
	Paths []string `toml:"paths"`
}

// LogConfig controls logging.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `toml:"level"`

	// File is an optional log file path. Empty means stderr.
	File string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Toolbar: ToolbarConfig{
			Actions: []string{
				"bold", "italic", "strikethrough", "title", "link", "list",
			},
			LinkDialog: true,
		},
		Format: FormatConfig{
			ItalicMarker: "*",
			TitleLevel:   1,
		},
		Plugins: PluginConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.Format.ItalicMarker != "*" && c.Format.ItalicMarker != "_" {
		return fmt.Errorf("%w: %q", ErrInvalidItalicMarker, c.Format.ItalicMarker)
	}
	if c.Format.TitleLevel < 1 || c.Format.TitleLevel > 6 {
		return fmt.Errorf("%w: %d", ErrInvalidTitleLevel, c.Format.TitleLevel)
	}
	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	return nil
}

// Load reads a TOML configuration file and merges it over the defaults.
// A missing file returns the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := Parse(data, &cfg); err != nil {
		return Default(), &ParseError{Path: path, Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Parse decodes TOML data over an existing configuration. Fields absent
// from the data keep their current values.
func Parse(data []byte, cfg *Config) error {
	return toml.Unmarshal(data, cfg)
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	if cfg.Format.ItalicMarker != "*" {
		t.Errorf("default italic marker = %q, want \"*\"", cfg.Format.ItalicMarker)
	}
	if cfg.Format.TitleLevel != 1 {
		t.Errorf("default title level = %d, want 1", cfg.Format.TitleLevel)
	}
	if len(cfg.Toolbar.Actions) != 6 {
		t.Errorf("expected 6 default toolbar actions, got %d", len(cfg.Toolbar.Actions))
	}
	if !cfg.Toolbar.LinkDialog {
		t.Error("link dialog should default to on")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected default log level, got %q", cfg.Log.Level)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "markstorm.toml")
	data := []byte(`
[format]
italic_marker = "_"

[toolbar]
actions = ["bold", "link"]
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Format.ItalicMarker != "_" {
		t.Errorf("italic marker = %q, want \"_\"", cfg.Format.ItalicMarker)
	}
	// Unset fields keep their defaults.
	if cfg.Format.TitleLevel != 1 {
		t.Errorf("title level = %d, want default 1", cfg.Format.TitleLevel)
	}
	if len(cfg.Toolbar.Actions) != 2 || cfg.Toolbar.Actions[0] != "bold" {
		t.Errorf("unexpected toolbar actions %v", cfg.Toolbar.Actions)
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("[format\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", perr.Path, path)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{
			name:   "bad italic marker",
			mutate: func(c *Config) { c.Format.ItalicMarker = "~" },
			want:   ErrInvalidItalicMarker,
		},
		{
			name:   "title level too low",
			mutate: func(c *Config) { c.Format.TitleLevel = 0 },
			want:   ErrInvalidTitleLevel,
		},
		{
			name:   "title level too high",
			mutate: func(c *Config) { c.Format.TitleLevel = 7 },
			want:   ErrInvalidTitleLevel,
		},
		{
			name:   "bad log level",
			mutate: func(c *Config) { c.Log.Level = "verbose" },
			want:   ErrInvalidLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadInvalidValuesFallBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "markstorm.toml")
	if err := os.WriteFile(path, []byte("[format]\ntitle_level = 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if !errors.Is(err, ErrInvalidTitleLevel) {
		t.Fatalf("expected ErrInvalidTitleLevel, got %v", err)
	}
	if cfg.Format.TitleLevel != 1 {
		t.Errorf("returned config should be the defaults, got level %d", cfg.Format.TitleLevel)
	}
}

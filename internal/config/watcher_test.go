package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "markstorm.toml")
	writeConfig(t, path, "[format]\nitalic_marker = \"*\"\n")

	reloaded := make(chan Config, 1)
	w, err := NewWatcher(path, func(cfg Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	}, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	writeConfig(t, path, "[format]\nitalic_marker = \"_\"\n")

	select {
	case cfg := <-reloaded:
		if cfg.Format.ItalicMarker != "_" {
			t.Errorf("reloaded italic marker = %q, want \"_\"", cfg.Format.ItalicMarker)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherReportsReloadErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "markstorm.toml")
	writeConfig(t, path, "[format]\nitalic_marker = \"*\"\n")

	errs := make(chan error, 1)
	w, err := NewWatcher(path,
		func(Config) { t.Error("reload handler must not run for invalid config") },
		WithDebounce(20*time.Millisecond),
		WithErrorHandler(func(err error) {
			select {
			case errs <- err:
			default:
			}
		}),
	)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	writeConfig(t, path, "[format]\ntitle_level = 0\n")

	select {
	case err := <-errs:
		if !errors.Is(err, ErrInvalidTitleLevel) {
			t.Errorf("expected ErrInvalidTitleLevel, got %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for error")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "markstorm.toml")
	writeConfig(t, path, "")

	w, err := NewWatcher(path, func(Config) {
		t.Error("unrelated file must not trigger a reload")
	}, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	writeConfig(t, filepath.Join(dir, "other.toml"), "x = 1\n")
	time.Sleep(150 * time.Millisecond)
}

func TestWatcherCloseTwice(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "markstorm.toml")
	writeConfig(t, path, "")

	w, err := NewWatcher(path, func(Config) {})
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("first close failed: %v", err)
	}
	if err := w.Close(); !errors.Is(err, ErrWatcherClosed) {
		t.Errorf("second close = %v, want ErrWatcherClosed", err)
	}
}

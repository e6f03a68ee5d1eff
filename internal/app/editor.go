// Package app wires the markstorm components into a running editor.
// It owns the document buffer, the selection session, the toolbar, the
// plugin runtime and the configuration lifecycle.
package app

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dshills/markstorm/internal/config"
	"github.com/dshills/markstorm/internal/engine/buffer"
	"github.com/dshills/markstorm/internal/engine/selection"
	"github.com/dshills/markstorm/internal/event"
	"github.com/dshills/markstorm/internal/plugin"
	luart "github.com/dshills/markstorm/internal/plugin/lua"
	"github.com/dshills/markstorm/internal/toolbar"
)

// Options configures the editor.
type Options struct {
	// ConfigPath is the path to the configuration file. Empty disables
	// configuration loading and live reload.
	ConfigPath string

	// File is a markdown file to open on startup.
	File string

	// LogLevel overrides the configured logging verbosity when non-empty.
	LogLevel string

	// LogOutput overrides the log destination. Defaults to stderr.
	LogOutput io.Writer

	// DisablePlugins skips the Lua runtime even when configured on.
	DisablePlugins bool

	// Watch enables live configuration reload.
	Watch bool
}

// Editor is the central coordinator for all markstorm components.
type Editor struct {
	mu sync.Mutex

	cfg     config.Config
	logger  *Logger
	bus     *event.Bus
	buf     *buffer.Buffer
	session *selection.Session

	registry *plugin.Registry
	runtime  *luart.Runtime

	toolbar *toolbar.Toolbar
	watcher *config.Watcher

	closed bool
}

// New creates an editor with the given options.
func New(opts Options) (*Editor, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("loading configuration: %w", err)
		}
		cfg = loaded
	}

	logCfg := DefaultLoggerConfig()
	logCfg.Level = ParseLogLevel(cfg.Log.Level)
	if opts.LogLevel != "" {
		logCfg.Level = ParseLogLevel(opts.LogLevel)
	}
	if opts.LogOutput != nil {
		logCfg.Output = opts.LogOutput
	} else if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		logCfg.Output = f
	}
	logger := NewLogger(logCfg)

	ed := &Editor{
		cfg:      cfg,
		logger:   logger,
		bus:      event.NewBus(),
		session:  selection.NewSession(),
		registry: plugin.NewRegistry(),
	}

	if err := ed.openFile(opts.File); err != nil {
		return nil, err
	}

	if cfg.Plugins.Enabled && !opts.DisablePlugins {
		if err := ed.startPlugins(cfg.Plugins.Paths); err != nil {
			return nil, err
		}
	}

	ed.toolbar = toolbar.New(ed.buf, ed.session,
		toolbar.WithRegistry(ed.registry),
		toolbar.WithBus(ed.bus),
		toolbar.WithActions(cfg.Toolbar.Actions),
		toolbar.WithItalicMarker(cfg.Format.ItalicMarker),
		toolbar.WithTitleLevel(cfg.Format.TitleLevel),
		toolbar.WithLinkDialog(cfg.Toolbar.LinkDialog),
	)

	if opts.Watch && opts.ConfigPath != "" {
		if err := ed.startWatcher(opts.ConfigPath); err != nil {
			ed.Close()
			return nil, err
		}
	}

	logger.Info("editor ready (%d toolbar items, %d plugin actions)",
		len(ed.toolbar.Items()), ed.registry.Len())
	return ed, nil
}

// openFile loads the startup document, or an empty buffer when no file
// is given.
func (e *Editor) openFile(path string) error {
	if path == "" {
		e.buf = buffer.NewBuffer()
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	buf, err := buffer.NewBufferFromReader(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	e.buf = buf
	e.logger.Debug("opened %s (%d bytes)", path, buf.Len())
	return nil
}

// startPlugins boots the Lua runtime and loads the configured scripts.
func (e *Editor) startPlugins(paths []string) error {
	rt, err := luart.NewRuntime(e.registry)
	if err != nil {
		return fmt.Errorf("starting plugin runtime: %w", err)
	}
	if err := rt.LoadScripts(paths); err != nil {
		rt.Close()
		return err
	}
	e.runtime = rt
	return nil
}

// startWatcher begins live configuration reload.
func (e *Editor) startWatcher(path string) error {
	log := e.logger.WithComponent("config")

	w, err := config.NewWatcher(path, func(cfg config.Config) {
		e.applyConfig(cfg)
		log.Info("configuration reloaded")
		_ = e.bus.Publish(event.ConfigReloadedEvent{Path: path})
	}, config.WithErrorHandler(func(err error) {
		log.Warn("reload failed: %v", err)
	}))
	if err != nil {
		return fmt.Errorf("watching configuration: %w", err)
	}
	e.watcher = w
	return nil
}

// applyConfig pushes a new configuration into the live components.
func (e *Editor) applyConfig(cfg config.Config) {
	e.mu.Lock()
	e.cfg = cfg
	e.mu.Unlock()

	e.logger.SetLevel(ParseLogLevel(cfg.Log.Level))
	e.toolbar.Configure(
		cfg.Toolbar.Actions,
		cfg.Format.ItalicMarker,
		cfg.Format.TitleLevel,
		cfg.Toolbar.LinkDialog,
	)
}

// Config returns the active configuration.
func (e *Editor) Config() config.Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg
}

// Toolbar returns the action dispatcher.
func (e *Editor) Toolbar() *toolbar.Toolbar { return e.toolbar }

// Buffer returns the document buffer.
func (e *Editor) Buffer() *buffer.Buffer { return e.buf }

// Session returns the selection session.
func (e *Editor) Session() *selection.Session { return e.session }

// Bus returns the event bus.
func (e *Editor) Bus() *event.Bus { return e.bus }

// Logger returns the editor logger.
func (e *Editor) Logger() *Logger { return e.logger }

// SaveTo writes the current document to a file.
func (e *Editor) SaveTo(path string) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrEditorClosed
	}
	e.mu.Unlock()

	if err := os.WriteFile(path, []byte(e.buf.Text()), 0o644); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	e.logger.Debug("saved %s (%d bytes)", path, e.buf.Len())
	return nil
}

// Close releases the watcher and plugin runtime. Safe to call more
// than once.
func (e *Editor) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.mu.Unlock()

	if e.watcher != nil {
		_ = e.watcher.Close()
	}
	if e.runtime != nil {
		e.runtime.Close()
	}
}

package toolbar

import (
	"fmt"
	"sync"

	"github.com/dshills/markstorm/internal/engine/buffer"
	"github.com/dshills/markstorm/internal/engine/format"
	"github.com/dshills/markstorm/internal/engine/selection"
	"github.com/dshills/markstorm/internal/event"
	"github.com/dshills/markstorm/internal/plugin"
)

// DispatchResult reports the outcome of a completed action.
type DispatchResult struct {
	// Text is the full replacement document.
	Text string

	// Cursor is the final collapsed cursor offset in Text.
	Cursor int

	// Refocus reports that the host must return focus to the editing
	// surface so the user can keep typing.
	Refocus bool
}

// Toolbar dispatches named formatting actions against a buffer.
// Safe for concurrent use.
type Toolbar struct {
	mu sync.Mutex

	buf     *buffer.Buffer
	session *selection.Session

	registry *plugin.Registry
	bus      *event.Bus

	actions      []string
	italicMarker string
	titleLevel   int
	linkDialog   bool
}

// Option configures a Toolbar.
type Option func(*Toolbar)

// WithRegistry attaches a plugin action registry.
func WithRegistry(r *plugin.Registry) Option {
	return func(t *Toolbar) { t.registry = r }
}

// WithBus attaches an event bus for dispatch notifications.
func WithBus(b *event.Bus) Option {
	return func(t *Toolbar) { t.bus = b }
}

// WithActions sets the toolbar item names in display order.
func WithActions(names []string) Option {
	return func(t *Toolbar) { t.actions = names }
}

// WithItalicMarker sets the italic marker, "*" or "_".
func WithItalicMarker(marker string) Option {
	return func(t *Toolbar) { t.italicMarker = marker }
}

// WithTitleLevel sets the heading level used by the title action.
func WithTitleLevel(level int) Option {
	return func(t *Toolbar) { t.titleLevel = level }
}

// WithLinkDialog enables or disables the two-step link prompt.
func WithLinkDialog(enabled bool) Option {
	return func(t *Toolbar) { t.linkDialog = enabled }
}

// New creates a toolbar over a buffer and selection session.
func New(buf *buffer.Buffer, session *selection.Session, opts ...Option) *Toolbar {
	t := &Toolbar{
		buf:     buf,
		session: session,
		actions: []string{
			"bold", "italic", "strikethrough", "title", "link", "list",
		},
		italicMarker: format.ItalicMarkerStar,
		titleLevel:   1,
		linkDialog:   true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Items resolves the configured action names to toolbar items. Names
// with no builtin or plugin action behind them are skipped.
func (t *Toolbar) Items() []Item {
	t.mu.Lock()
	names := make([]string, len(t.actions))
	copy(names, t.actions)
	registry := t.registry
	t.mu.Unlock()

	items := make([]Item, 0, len(names))
	for _, name := range names {
		if action, ok := format.ActionFromString(name); ok {
			items = append(items, Item{Name: name, Action: action})
			continue
		}
		if registry != nil {
			if _, err := registry.Get(name); err == nil {
				items = append(items, Item{Name: name, Custom: true})
			}
		}
	}

	// Plugin actions not named in the configuration append after the
	// configured items.
	if registry != nil {
		for _, name := range registry.Names() {
			if !containsName(items, name) {
				items = append(items, Item{Name: name, Custom: true})
			}
		}
	}
	return items
}

func containsName(items []Item, name string) bool {
	for _, it := range items {
		if it.Name == name {
			return true
		}
	}
	return false
}

// Configure replaces the action list and formatting defaults. Used for
// live configuration reload.
func (t *Toolbar) Configure(actions []string, italicMarker string, titleLevel int, linkDialog bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.actions = actions
	t.italicMarker = italicMarker
	t.titleLevel = titleLevel
	t.linkDialog = linkDialog
}

// Dispatch runs the named action against the current selection.
// The link action must go through BeginLink while the prompt is enabled.
func (t *Toolbar) Dispatch(name string) (DispatchResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	text := t.buf.Text()
	start, end, _ := t.session.ResolveForAction(text)
	wasEmpty := start == end

	res, err := t.applyLocked(name, text, start, end)
	if err != nil {
		return DispatchResult{}, err
	}
	return t.commitLocked(name, res, wasEmpty), nil
}

// applyLocked resolves the action name and runs the engine.
func (t *Toolbar) applyLocked(name, text string, start, end int) (format.Result, error) {
	if action, ok := format.ActionFromString(name); ok {
		if action == format.ActionLink && t.linkDialog {
			return format.Result{}, ErrLinkNeedsPrompt
		}
		return format.Apply(action, text, start, end, t.paramsLocked())
	}

	if t.registry != nil {
		if custom, err := t.registry.Get(name); err == nil {
			return custom.Apply(text, start, end)
		}
	}
	return format.Result{}, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// commitLocked writes the result back to the buffer, settles the cursor
// and publishes dispatch events.
func (t *Toolbar) commitLocked(name string, res format.Result, wasEmpty bool) DispatchResult {
	t.buf.SetText(res.Text)
	out := t.session.AfterApply(res, wasEmpty)

	t.publish(event.TextChangedEvent{
		Text:     res.Text,
		Revision: uint64(t.buf.RevisionID()),
	})
	t.publish(event.SelectionChangedEvent{Start: out.Cursor, End: out.Cursor})
	t.publish(event.FormatAppliedEvent{
		Action:            name,
		Cursor:            out.Cursor,
		SelectionWasEmpty: wasEmpty,
	})

	return DispatchResult{Text: res.Text, Cursor: out.Cursor, Refocus: out.Refocus}
}

// paramsLocked builds engine parameters from the configured defaults.
func (t *Toolbar) paramsLocked() format.Params {
	return format.Params{
		TitleLevel:   t.titleLevel,
		ItalicMarker: t.italicMarker,
	}
}

func (t *Toolbar) publish(ev event.TopicProvider) {
	if t.bus != nil {
		_ = t.bus.Publish(ev)
	}
}

package toolbar

import (
	"errors"
	"testing"

	"github.com/dshills/markstorm/internal/engine/buffer"
	"github.com/dshills/markstorm/internal/engine/format"
	"github.com/dshills/markstorm/internal/engine/selection"
	"github.com/dshills/markstorm/internal/event"
	"github.com/dshills/markstorm/internal/plugin"
)

func newTestToolbar(t *testing.T, text string, opts ...Option) (*Toolbar, *buffer.Buffer, *selection.Session) {
	t.Helper()
	buf := buffer.NewBufferFromString(text)
	session := selection.NewSession()
	return New(buf, session, opts...), buf, session
}

func TestDispatchBoldSelection(t *testing.T) {
	tb, buf, session := newTestToolbar(t, "hello world")
	session.Observe(selection.New(0, 5))

	res, err := tb.Dispatch("bold")
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	if res.Text != "**hello** world" {
		t.Errorf("Text = %q, want %q", res.Text, "**hello** world")
	}
	if buf.Text() != res.Text {
		t.Error("buffer text must match dispatch result")
	}
	if res.Cursor != 9 {
		t.Errorf("Cursor = %d, want 9", res.Cursor)
	}
	if res.Refocus {
		t.Error("real selection must not request refocus")
	}
}

func TestDispatchBoldCollapsed(t *testing.T) {
	tb, _, session := newTestToolbar(t, "hello")
	session.Observe(selection.Cursor(5))

	res, err := tb.Dispatch("bold")
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	if res.Text != "hello****" {
		t.Errorf("Text = %q, want %q", res.Text, "hello****")
	}
	// Cursor sits between the inserted markers.
	if res.Cursor != 7 {
		t.Errorf("Cursor = %d, want 7", res.Cursor)
	}
	if !res.Refocus {
		t.Error("collapsed insertion must request refocus")
	}
}

func TestDispatchToggleRoundTrip(t *testing.T) {
	tb, buf, session := newTestToolbar(t, "hello world")
	session.Observe(selection.New(0, 5))

	if _, err := tb.Dispatch("bold"); err != nil {
		t.Fatalf("first dispatch failed: %v", err)
	}

	// Host re-selects the wrapped word in the new text.
	session.Observe(selection.New(2, 7))
	res, err := tb.Dispatch("bold")
	if err != nil {
		t.Fatalf("second dispatch failed: %v", err)
	}

	if res.Text != "hello world" {
		t.Errorf("toggle off Text = %q, want original", res.Text)
	}
	if buf.Text() != "hello world" {
		t.Error("buffer should hold the original text again")
	}
}

func TestDispatchItalicMarkerConfig(t *testing.T) {
	tb, _, session := newTestToolbar(t, "word", WithItalicMarker(format.ItalicMarkerUnder))
	session.Observe(selection.New(0, 4))

	res, err := tb.Dispatch("italic")
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if res.Text != "_word_" {
		t.Errorf("Text = %q, want %q", res.Text, "_word_")
	}
}

func TestDispatchTitleLevelConfig(t *testing.T) {
	tb, _, session := newTestToolbar(t, "chapter", WithTitleLevel(3))
	session.Observe(selection.New(0, 7))

	res, err := tb.Dispatch("title")
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if res.Text != "### chapter" {
		t.Errorf("Text = %q, want %q", res.Text, "### chapter")
	}
}

func TestDispatchListMultiline(t *testing.T) {
	tb, _, session := newTestToolbar(t, "a\nb\nc")
	session.Observe(selection.New(0, 5))

	res, err := tb.Dispatch("list")
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if res.Text != "- a\n- b\n- c" {
		t.Errorf("Text = %q, want %q", res.Text, "- a\n- b\n- c")
	}
}

func TestDispatchUnknownAction(t *testing.T) {
	tb, _, _ := newTestToolbar(t, "x")

	if _, err := tb.Dispatch("sparkle"); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction, got %v", err)
	}
}

func TestDispatchLinkRequiresPrompt(t *testing.T) {
	tb, _, session := newTestToolbar(t, "docs")
	session.Observe(selection.New(0, 4))

	if _, err := tb.Dispatch("link"); !errors.Is(err, ErrLinkNeedsPrompt) {
		t.Errorf("expected ErrLinkNeedsPrompt, got %v", err)
	}
}

func TestDispatchLinkWithoutDialog(t *testing.T) {
	tb, _, session := newTestToolbar(t, "docs", WithLinkDialog(false))
	session.Observe(selection.New(0, 4))

	res, err := tb.Dispatch("link")
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if res.Text != "[docs]()" {
		t.Errorf("Text = %q, want %q", res.Text, "[docs]()")
	}
}

func TestDispatchCustomAction(t *testing.T) {
	registry := plugin.NewRegistry()
	if err := registry.Register(plugin.CustomAction{
		Name: "highlight", Kind: plugin.KindWrap, Marker: "==",
	}); err != nil {
		t.Fatal(err)
	}

	tb, _, session := newTestToolbar(t, "note", WithRegistry(registry))
	session.Observe(selection.New(0, 4))

	res, err := tb.Dispatch("highlight")
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if res.Text != "==note==" {
		t.Errorf("Text = %q, want %q", res.Text, "==note==")
	}
}

func TestDispatchPublishesEvents(t *testing.T) {
	bus := event.NewBus()
	tb, _, session := newTestToolbar(t, "hello", WithBus(bus))
	session.Observe(selection.New(0, 5))

	var text *event.TextChangedEvent
	var applied *event.FormatAppliedEvent
	var sel *event.SelectionChangedEvent
	bus.SubscribeFunc(event.TopicAll, func(ev any) error {
		switch e := ev.(type) {
		case event.TextChangedEvent:
			text = &e
		case event.FormatAppliedEvent:
			applied = &e
		case event.SelectionChangedEvent:
			sel = &e
		}
		return nil
	})

	res, err := tb.Dispatch("bold")
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	if text == nil || text.Text != res.Text {
		t.Errorf("text event = %+v, want text %q", text, res.Text)
	}
	if applied == nil || applied.Action != "bold" || applied.Cursor != res.Cursor {
		t.Errorf("unexpected format event %+v", applied)
	}
	if sel == nil || sel.Start != res.Cursor || sel.End != res.Cursor {
		t.Errorf("unexpected selection event %+v", sel)
	}
}

func TestItems(t *testing.T) {
	registry := plugin.NewRegistry()
	registry.Register(plugin.CustomAction{Name: "quote", Kind: plugin.KindLinePrefix, Marker: "> "})

	tb, _, _ := newTestToolbar(t, "",
		WithRegistry(registry),
		WithActions([]string{"bold", "ghost", "italic"}),
	)

	items := tb.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d (%v)", len(items), items)
	}
	if items[0].Name != "bold" || items[0].Custom {
		t.Errorf("unexpected first item %+v", items[0])
	}
	if items[1].Name != "italic" {
		t.Errorf("unknown names must be skipped, got %+v", items[1])
	}
	if items[2].Name != "quote" || !items[2].Custom {
		t.Errorf("plugin action should append, got %+v", items[2])
	}
}

func TestConfigure(t *testing.T) {
	tb, _, session := newTestToolbar(t, "word")
	session.Observe(selection.New(0, 4))

	tb.Configure([]string{"bold"}, format.ItalicMarkerUnder, 2, false)

	res, err := tb.Dispatch("italic")
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if res.Text != "_word_" {
		t.Errorf("Text = %q, want %q", res.Text, "_word_")
	}

	items := tb.Items()
	if len(items) != 1 || items[0].Name != "bold" {
		t.Errorf("unexpected items %v", items)
	}
}

package toolbar

import (
	"errors"
	"testing"

	"github.com/dshills/markstorm/internal/engine/selection"
)

func TestLinkPromptConfirm(t *testing.T) {
	tb, buf, session := newTestToolbar(t, "see the docs here")
	session.Observe(selection.New(8, 12))

	p, err := tb.BeginLink()
	if err != nil {
		t.Fatalf("BeginLink failed: %v", err)
	}
	if p.Selected() != "docs" {
		t.Errorf("Selected() = %q, want %q", p.Selected(), "docs")
	}

	res, err := p.Confirm("docs", "https://example.com")
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	want := "see the [docs](https://example.com) here"
	if res.Text != want {
		t.Errorf("Text = %q, want %q", res.Text, want)
	}
	if buf.Text() != want {
		t.Error("buffer text must match confirm result")
	}
	// Cursor sits after the closing parenthesis.
	if res.Cursor != 35 {
		t.Errorf("Cursor = %d, want 35", res.Cursor)
	}
}

func TestLinkPromptLabelOverride(t *testing.T) {
	tb, _, session := newTestToolbar(t, "docs")
	session.Observe(selection.New(0, 4))

	p, err := tb.BeginLink()
	if err != nil {
		t.Fatalf("BeginLink failed: %v", err)
	}

	res, err := p.Confirm("the manual", "https://example.com")
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if res.Text != "[the manual](https://example.com)" {
		t.Errorf("Text = %q", res.Text)
	}
}

func TestLinkPromptEmptyLabel(t *testing.T) {
	tb, _, session := newTestToolbar(t, "docs")
	session.Observe(selection.New(0, 4))

	p, _ := tb.BeginLink()

	// Clearing the label field is honored, not treated as "keep selection".
	res, err := p.Confirm("", "https://example.com")
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if res.Text != "[](https://example.com)" {
		t.Errorf("Text = %q, want %q", res.Text, "[](https://example.com)")
	}
}

func TestLinkPromptCollapsedSelection(t *testing.T) {
	tb, _, session := newTestToolbar(t, "")
	session.Observe(selection.Cursor(0))

	p, _ := tb.BeginLink()
	res, err := p.Confirm("home", "https://example.com")
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if res.Text != "[home](https://example.com)" {
		t.Errorf("Text = %q", res.Text)
	}
	if !res.Refocus {
		t.Error("collapsed link insertion must request refocus")
	}
}

func TestLinkPromptStale(t *testing.T) {
	tb, buf, session := newTestToolbar(t, "docs")
	session.Observe(selection.New(0, 4))

	p, _ := tb.BeginLink()
	buf.SetText("something else")

	if _, err := p.Confirm("docs", "https://example.com"); !errors.Is(err, ErrPromptStale) {
		t.Errorf("expected ErrPromptStale, got %v", err)
	}
}

func TestLinkPromptCancel(t *testing.T) {
	tb, buf, session := newTestToolbar(t, "docs")
	session.Observe(selection.New(0, 4))

	p, _ := tb.BeginLink()
	if err := p.Cancel(); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if buf.Text() != "docs" {
		t.Error("cancel must not touch the buffer")
	}

	if _, err := p.Confirm("docs", "u"); !errors.Is(err, ErrPromptClosed) {
		t.Errorf("confirm after cancel = %v, want ErrPromptClosed", err)
	}
	if err := p.Cancel(); !errors.Is(err, ErrPromptClosed) {
		t.Errorf("second cancel = %v, want ErrPromptClosed", err)
	}
}

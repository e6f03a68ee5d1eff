package toolbar

import (
	"github.com/dshills/markstorm/internal/engine/buffer"
	"github.com/dshills/markstorm/internal/engine/format"
)

// LinkPrompt is an open link dialog. BeginLink captures the selection
// when the prompt opens; Confirm applies the link against that capture.
// A prompt resolves exactly once, through Confirm or Cancel.
type LinkPrompt struct {
	toolbar *Toolbar

	text     string
	start    int
	end      int
	selected string
	wasEmpty bool
	revision buffer.RevisionID

	closed bool
}

// BeginLink opens a link prompt over the current selection.
func (t *Toolbar) BeginLink() (*LinkPrompt, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	text := t.buf.Text()
	start, end, selected := t.session.ResolveForAction(text)

	return &LinkPrompt{
		toolbar:  t,
		text:     text,
		start:    start,
		end:      end,
		selected: selected,
		wasEmpty: start == end,
		revision: t.buf.RevisionID(),
	}, nil
}

// Selected returns the text captured under the selection, for
// pre-filling the label field.
func (p *LinkPrompt) Selected() string { return p.selected }

// Confirm applies the link with the entered label and URL. The label
// always overrides the captured selection, even when empty; the dialog
// pre-fills it with Selected so an untouched field round-trips.
func (p *LinkPrompt) Confirm(label, url string) (DispatchResult, error) {
	t := p.toolbar
	t.mu.Lock()
	defer t.mu.Unlock()

	if p.closed {
		return DispatchResult{}, ErrPromptClosed
	}
	p.closed = true

	if t.buf.RevisionID() != p.revision {
		return DispatchResult{}, ErrPromptStale
	}

	params := format.Params{
		URL:      url,
		Label:    label,
		LabelSet: true,
	}
	res, err := format.Apply(format.ActionLink, p.text, p.start, p.end, params)
	if err != nil {
		return DispatchResult{}, err
	}
	return t.commitLocked("link", res, p.wasEmpty), nil
}

// Cancel closes the prompt without applying anything.
func (p *LinkPrompt) Cancel() error {
	t := p.toolbar
	t.mu.Lock()
	defer t.mu.Unlock()

	if p.closed {
		return ErrPromptClosed
	}
	p.closed = true
	return nil
}

package selection

import (
	"sync"

	"github.com/dshills/markstorm/internal/engine/format"
)

// Session tracks the most recently observed non-degenerate selection for
// one editor instance.
//
// Hosts emit selection-change notifications where a -1 base offset means
// "no selection reported right now"; those events must not clobber the last
// real selection, or a toolbar action arriving just after focus churn would
// act on nothing.
type Session struct {
	mu   sync.Mutex
	last Selection
}

// NewSession creates a session with an initial collapsed selection at 0.
func NewSession() *Session {
	return &Session{}
}

// Observe records a selection change reported by the host. Degenerate
// reports (base offset -1) are ignored, keeping the previous selection.
func (s *Session) Observe(sel Selection) {
	if sel.IsDegenerate() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = sel
}

// Current returns the tracked selection.
func (s *Session) Current() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// ResolveForAction returns the effective (start, end) range a formatting
// action should act upon, and the substring it denotes in the live text.
// The tracked selection is normalized and clamped against the text, so a
// selection observed before an external edit cannot produce an
// out-of-bounds range.
func (s *Session) ResolveForAction(text string) (start, end int, selected string) {
	s.mu.Lock()
	sel := s.last
	s.mu.Unlock()

	sel = sel.Normalize().Clamp(len(text))
	return sel.Anchor, sel.Head, text[sel.Anchor:sel.Head]
}

// Outcome is the final cursor placement computed from an engine result.
type Outcome struct {
	// Cursor is the collapsed cursor offset in the new text.
	Cursor int

	// Refocus reports that the host must re-request input focus. After a
	// collapsed-selection insertion the user is expected to keep typing, so
	// focus has to return to the editable surface.
	Refocus bool
}

// AfterApply interprets an engine result against the live cursor state and
// updates the tracked selection to the final collapsed cursor.
func (s *Session) AfterApply(res format.Result, wasEmpty bool) Outcome {
	cursor := res.CursorOffset
	if wasEmpty && res.CollapseBackBy > 0 {
		cursor = res.CursorOffset - res.CollapseBackBy
	}

	s.mu.Lock()
	s.last = Cursor(cursor)
	s.mu.Unlock()

	return Outcome{Cursor: cursor, Refocus: wasEmpty}
}

// Reset returns the session to its initial state. Call when the editor
// surface detaches.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = Selection{}
}

package format

// Result describes the outcome of a formatting action.
// All three fields refer to the replacement text, never the input.
type Result struct {
	// Text is the full replacement document.
	Text string

	// CursorOffset is the absolute offset in Text marking the end of the
	// inserted or modified region. When a selection existed, the collapsed
	// cursor is placed here.
	CursorOffset int

	// CollapseBackBy is how many bytes the cursor must step back from
	// CursorOffset when the original selection was empty. Wrapping actions
	// use it to land the cursor between the inserted markers rather than
	// after the closing one. Zero for every other case.
	CollapseBackBy int
}

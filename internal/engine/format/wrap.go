package format

import "strings"

// Wrapped reports whether [start, end] is immediately flanked by marker on
// both sides. It looks only at the adjacent bytes; text containing stray
// marker characters elsewhere does not affect the answer.
func Wrapped(text string, start, end int, marker string) bool {
	n := len(marker)
	if n == 0 || start < n || end+n > len(text) {
		return false
	}
	return text[start-n:start] == marker && text[end:end+n] == marker
}

// applyWrap implements the wrapping transformation. Range is pre-validated.
func applyWrap(text string, start, end int, marker string) (Result, error) {
	n := len(marker)

	if start == end {
		// Collapsed selection: insert an empty pair and have the caller
		// step the cursor back between the markers.
		var b strings.Builder
		b.Grow(len(text) + 2*n)
		b.WriteString(text[:start])
		b.WriteString(marker)
		b.WriteString(marker)
		b.WriteString(text[start:])
		return Result{
			Text:           b.String(),
			CursorOffset:   start + 2*n,
			CollapseBackBy: n,
		}, nil
	}

	selected := text[start:end]

	if Wrapped(text, start, end, marker) {
		// Already wrapped: remove both markers.
		var b strings.Builder
		b.Grow(len(text) - 2*n)
		b.WriteString(text[:start-n])
		b.WriteString(selected)
		b.WriteString(text[end+n:])
		return Result{
			Text:         b.String(),
			CursorOffset: start - n + len(selected),
		}, nil
	}

	var b strings.Builder
	b.Grow(len(text) + 2*n)
	b.WriteString(text[:start])
	b.WriteString(marker)
	b.WriteString(selected)
	b.WriteString(marker)
	b.WriteString(text[end:])
	return Result{
		Text:         b.String(),
		CursorOffset: end + 2*n,
	}, nil
}

package format

import "strings"

// applyLink implements the link substitution. Range is pre-validated.
// Empty label or url are legal and produce a syntactically valid but
// semantically empty construct; URL well-formedness is not checked.
func applyLink(text string, start, end int, label, url string) (Result, error) {
	var b strings.Builder
	b.Grow(len(text) - (end - start) + len(label) + len(url) + 4)
	b.WriteString(text[:start])
	b.WriteString("[")
	b.WriteString(label)
	b.WriteString("](")
	b.WriteString(url)
	b.WriteString(")")
	replacedEnd := b.Len()
	b.WriteString(text[end:])

	// Cursor always lands after the closing ")", even for a collapsed
	// original selection. Unlike the wrapping actions there is nothing
	// useful to type inside the construct by default.
	return Result{
		Text:         b.String(),
		CursorOffset: replacedEnd,
	}, nil
}

package format

import "strings"

// lineSpan expands [start, end] to whole lines: the offset of the start of
// the line containing start, and the offset of the end of the line
// containing end (before its newline, or the end of text).
func lineSpan(text string, start, end int) (int, int) {
	spanStart := strings.LastIndexByte(text[:start], '\n') + 1
	spanEnd := len(text)
	if i := strings.IndexByte(text[end:], '\n'); i >= 0 {
		spanEnd = end + i
	}
	return spanStart, spanEnd
}

// applyLinePrefix implements the fixed-prefix line toggle (List and custom
// prefixes). Range is pre-validated, prefix is non-empty.
func applyLinePrefix(text string, start, end int, prefix string) (Result, error) {
	spanStart, spanEnd := lineSpan(text, start, end)

	lines := strings.Split(text[spanStart:spanEnd], "\n")
	firstStripped := false
	for i, line := range lines {
		if strings.HasPrefix(line, prefix) {
			lines[i] = line[len(prefix):]
			if i == 0 {
				firstStripped = true
			}
		} else {
			lines[i] = prefix + line
		}
	}
	newSpan := strings.Join(lines, "\n")

	return Result{
		Text:         text[:spanStart] + newSpan + text[spanEnd:],
		CursorOffset: lineCursor(start, end, spanStart, len(newSpan), len(prefix), firstStripped),
	}, nil
}

// applyHeading implements the heading toggle. Range is pre-validated,
// level is in [MinTitleLevel, MaxTitleLevel].
func applyHeading(text string, start, end, level int) (Result, error) {
	spanStart, spanEnd := lineSpan(text, start, end)
	prefix := strings.Repeat("#", level) + " "

	lines := strings.Split(text[spanStart:spanEnd], "\n")
	firstStripped := false
	for i, line := range lines {
		existing, rest, ok := splitHeading(line)
		switch {
		case ok && existing == level:
			// Same level already applied: toggle off.
			lines[i] = rest
			if i == 0 {
				firstStripped = true
			}
		case ok:
			// Different level: replace rather than stack.
			lines[i] = prefix + rest
		default:
			lines[i] = prefix + line
		}
	}
	newSpan := strings.Join(lines, "\n")

	return Result{
		Text:         text[:spanStart] + newSpan + text[spanEnd:],
		CursorOffset: lineCursor(start, end, spanStart, len(newSpan), len(prefix), firstStripped),
	}, nil
}

// splitHeading splits a "#"-run heading prefix off a line. ok is true only
// when the line starts with one or more '#' followed by a space; rest is the
// line content after that prefix.
func splitHeading(line string) (level int, rest string, ok bool) {
	i := 0
	for i < len(line) && line[i] == '#' {
		i++
	}
	if i > 0 && i < len(line) && line[i] == ' ' {
		return i, line[i+1:], true
	}
	return 0, line, false
}

// lineCursor places the cursor after a line-scoped action. With a real
// selection it lands at the end of the last affected line. A collapsed
// selection lands right after the new prefix on the current line, or at the
// line start when the prefix was toggled off.
func lineCursor(start, end, spanStart, newSpanLen, prefixLen int, firstStripped bool) int {
	if start != end {
		return spanStart + newSpanLen
	}
	if firstStripped {
		return spanStart
	}
	return spanStart + prefixLen
}

package format

import "fmt"

// Apply computes the result of a formatting action against text.
//
// start and end are byte offsets satisfying 0 <= start <= end <= len(text);
// violating this returns ErrRangeInvalid. start == end is a collapsed
// selection (a pure cursor position).
func Apply(action Action, text string, start, end int, p Params) (Result, error) {
	if err := checkRange(text, start, end); err != nil {
		return Result{}, err
	}

	switch action {
	case ActionBold:
		return applyWrap(text, start, end, BoldMarker)
	case ActionItalic:
		m := p.italicMarker()
		if m == "" {
			return Result{}, fmt.Errorf("%w: italic marker %q", ErrUnsupportedAction, p.ItalicMarker)
		}
		return applyWrap(text, start, end, m)
	case ActionStrikeThrough:
		return applyWrap(text, start, end, StrikeThroughMarker)
	case ActionTitle:
		return applyHeading(text, start, end, p.titleLevel())
	case ActionList:
		return applyLinePrefix(text, start, end, ListPrefix)
	case ActionLink:
		label := p.Label
		if !p.LabelSet {
			label = text[start:end]
		}
		return applyLink(text, start, end, label, p.URL)
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnsupportedAction, uint8(action))
	}
}

// ApplyWrap wraps, unwraps, or inserts the given marker pair around
// [start, end]. This is the primitive behind Bold, Italic, and
// StrikeThrough, exported for custom marker actions.
func ApplyWrap(text string, start, end int, marker string) (Result, error) {
	if err := checkRange(text, start, end); err != nil {
		return Result{}, err
	}
	if marker == "" {
		return Result{}, ErrEmptyMarker
	}
	return applyWrap(text, start, end, marker)
}

// ApplyLinePrefix toggles the given prefix on every line touched by
// [start, end]. This is the primitive behind List, exported for custom
// line-prefix actions (e.g. "> " quoting).
func ApplyLinePrefix(text string, start, end int, prefix string) (Result, error) {
	if err := checkRange(text, start, end); err != nil {
		return Result{}, err
	}
	if prefix == "" {
		return Result{}, ErrEmptyPrefix
	}
	return applyLinePrefix(text, start, end, prefix)
}

// ApplyHeading toggles a level-N heading prefix on every line touched by
// [start, end]. Conflicting heading levels are replaced, not stacked.
func ApplyHeading(text string, start, end, level int) (Result, error) {
	if err := checkRange(text, start, end); err != nil {
		return Result{}, err
	}
	if level < MinTitleLevel {
		level = MinTitleLevel
	}
	if level > MaxTitleLevel {
		level = MaxTitleLevel
	}
	return applyHeading(text, start, end, level)
}

// ApplyLink substitutes a [label](url) construct for [start, end].
func ApplyLink(text string, start, end int, label, url string) (Result, error) {
	if err := checkRange(text, start, end); err != nil {
		return Result{}, err
	}
	return applyLink(text, start, end, label, url)
}

// checkRange validates 0 <= start <= end <= len(text).
func checkRange(text string, start, end int) error {
	if start < 0 || start > end || end > len(text) {
		return fmt.Errorf("%w: [%d:%d) in text of length %d",
			ErrRangeInvalid, start, end, len(text))
	}
	return nil
}

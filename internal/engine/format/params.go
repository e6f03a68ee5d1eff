package format

// Params carries action-specific extras for Apply.
// The zero value is valid for every action.
type Params struct {
	// TitleLevel is the heading level for ActionTitle.
	// Values below 1 default to 1; values above 6 clamp to 6.
	TitleLevel int

	// URL is the link target for ActionLink. May be empty, producing
	// a link with an empty target.
	URL string

	// Label substitutes different label text than what is physically
	// selected, for ActionLink. Only honored when LabelSet is true, so an
	// explicitly empty label from a dialog is distinguishable from "no
	// override supplied".
	Label string

	// LabelSet marks Label as an explicit override.
	LabelSet bool

	// ItalicMarker selects the marker for ActionItalic: "*" or "_".
	// Empty defaults to "*". Other values are rejected by Apply.
	ItalicMarker string
}

// titleLevel returns the effective heading level.
func (p Params) titleLevel() int {
	if p.TitleLevel < MinTitleLevel {
		return MinTitleLevel
	}
	if p.TitleLevel > MaxTitleLevel {
		return MaxTitleLevel
	}
	return p.TitleLevel
}

// italicMarker returns the effective italic marker, or "" if the
// configured value is not a legal italic marker.
func (p Params) italicMarker() string {
	switch p.ItalicMarker {
	case "":
		return ItalicMarkerStar
	case ItalicMarkerStar, ItalicMarkerUnder:
		return p.ItalicMarker
	default:
		return ""
	}
}

package format

// Action identifies a markdown formatting action.
// The set is closed; Apply rejects values outside it.
type Action uint8

const (
	// ActionBold wraps the selection in ** markers.
	ActionBold Action = iota
	// ActionItalic wraps the selection in * (or _) markers.
	ActionItalic
	// ActionStrikeThrough wraps the selection in ~~ markers.
	ActionStrikeThrough
	// ActionTitle toggles a heading prefix on the selected lines.
	ActionTitle
	// ActionLink replaces the selection with a [label](url) construct.
	ActionLink
	// ActionList toggles a "- " list prefix on the selected lines.
	ActionList
)

// Markers and prefixes for the built-in actions.
const (
	BoldMarker          = "**"
	ItalicMarkerStar    = "*"
	ItalicMarkerUnder   = "_"
	StrikeThroughMarker = "~~"
	ListPrefix          = "- "
)

// Heading level bounds.
const (
	MinTitleLevel = 1
	MaxTitleLevel = 6
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionBold:
		return "bold"
	case ActionItalic:
		return "italic"
	case ActionStrikeThrough:
		return "strikethrough"
	case ActionTitle:
		return "title"
	case ActionLink:
		return "link"
	case ActionList:
		return "list"
	default:
		return "unknown"
	}
}

// ActionFromString converts a name to an Action.
// Returns false for unknown names.
func ActionFromString(s string) (Action, bool) {
	switch s {
	case "bold":
		return ActionBold, true
	case "italic":
		return ActionItalic, true
	case "strikethrough", "strike":
		return ActionStrikeThrough, true
	case "title", "heading":
		return ActionTitle, true
	case "link":
		return ActionLink, true
	case "list":
		return ActionList, true
	default:
		return 0, false
	}
}

// IsWrapping returns true for marker-pair actions.
func (a Action) IsWrapping() bool {
	return a == ActionBold || a == ActionItalic || a == ActionStrikeThrough
}

// IsLineScoped returns true for actions whose unit of effect is whole lines.
func (a Action) IsLineScoped() bool {
	return a == ActionTitle || a == ActionList
}

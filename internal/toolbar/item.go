package toolbar

import "github.com/dshills/markstorm/internal/engine/format"

// Item is a single toolbar entry.
type Item struct {
	// Name is the dispatch name shown to the host.
	Name string

	// Action is the builtin action. Only meaningful when Custom is false.
	Action format.Action

	// Custom marks a plugin-registered action resolved by name at
	// dispatch time.
	Custom bool
}

// Label returns a short display label for the item.
func (i Item) Label() string {
	switch {
	case i.Custom:
		return i.Name
	case i.Action == format.ActionBold:
		return "B"
	case i.Action == format.ActionItalic:
		return "I"
	case i.Action == format.ActionStrikeThrough:
		return "S"
	case i.Action == format.ActionTitle:
		return "H"
	case i.Action == format.ActionLink:
		return "L"
	case i.Action == format.ActionList:
		return "•"
	default:
		return i.Name
	}
}

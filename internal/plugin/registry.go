package plugin

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/markstorm/internal/engine/format"
)

// Kind distinguishes the two custom action shapes.
type Kind uint8

const (
	// KindWrap toggles a symmetric marker pair around the selection.
	KindWrap Kind = iota
	// KindLinePrefix toggles a prefix on every selected line.
	KindLinePrefix
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindWrap:
		return "wrap"
	case KindLinePrefix:
		return "line_prefix"
	default:
		return "unknown"
	}
}

// CustomAction is a user-registered formatting action.
type CustomAction struct {
	// Name identifies the action on the toolbar.
	Name string
	// Kind selects the toggle behavior.
	Kind Kind
	// Marker is the wrap marker or line prefix, depending on Kind.
	Marker string
}

// Apply runs the action against text in [start, end).
func (a CustomAction) Apply(text string, start, end int) (format.Result, error) {
	switch a.Kind {
	case KindWrap:
		return format.ApplyWrap(text, start, end, a.Marker)
	case KindLinePrefix:
		return format.ApplyLinePrefix(text, start, end, a.Marker)
	default:
		return format.Result{}, fmt.Errorf("%w: kind %d", ErrInvalidActionDef, a.Kind)
	}
}

// reservedNames are the built-in action names plugins may not shadow.
var reservedNames = map[string]bool{
	"bold":          true,
	"italic":        true,
	"strikethrough": true,
	"title":         true,
	"link":          true,
	"list":          true,
}

// Registry holds custom actions by name. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	actions map[string]CustomAction
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{actions: make(map[string]CustomAction)}
}

// Register adds a custom action. Built-in names are reserved and a name
// can only be registered once.
func (r *Registry) Register(a CustomAction) error {
	if a.Name == "" {
		return ErrEmptyName
	}
	if a.Marker == "" {
		return fmt.Errorf("%w: action %q", ErrEmptyMarker, a.Name)
	}
	if reservedNames[a.Name] {
		return fmt.Errorf("%w: %q", ErrReservedName, a.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actions[a.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateAction, a.Name)
	}
	r.actions[a.Name] = a
	return nil
}

// Get returns a registered action by name.
func (r *Registry) Get(name string) (CustomAction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.actions[name]
	if !ok {
		return CustomAction{}, fmt.Errorf("%w: %q", ErrActionNotFound, name)
	}
	return a, nil
}

// Names returns the registered action names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered actions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.actions)
}

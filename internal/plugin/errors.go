package plugin

import "errors"

// Errors returned by the action registry.
var (
	ErrEmptyName        = errors.New("plugin: action name is empty")
	ErrEmptyMarker      = errors.New("plugin: action marker is empty")
	ErrDuplicateAction  = errors.New("plugin: action already registered")
	ErrReservedName     = errors.New("plugin: action name is reserved")
	ErrActionNotFound   = errors.New("plugin: action not found")
	ErrInvalidActionDef = errors.New("plugin: invalid action definition")
)

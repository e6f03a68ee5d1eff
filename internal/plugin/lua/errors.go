package lua

import "errors"

// Errors returned by the runtime.
var (
	// ErrRuntimeClosed indicates use of a runtime after Close.
	ErrRuntimeClosed = errors.New("lua: runtime closed")

	// ErrNilRegistry indicates a runtime constructed without a registry.
	ErrNilRegistry = errors.New("lua: nil action registry")
)

package app

import "errors"

// Errors returned by editor lifecycle operations.
var (
	// ErrEditorClosed indicates use of an editor after Close.
	ErrEditorClosed = errors.New("app: editor closed")
)

package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrInvalidItalicMarker indicates an italic marker other than "*" or "_".
	ErrInvalidItalicMarker = errors.New("config: italic marker must be \"*\" or \"_\"")

	// ErrInvalidTitleLevel indicates a heading level outside 1..6.
	ErrInvalidTitleLevel = errors.New("config: title level must be between 1 and 6")

	// ErrUnknownAction indicates a toolbar action name with no registered action.
	ErrUnknownAction = errors.New("config: unknown toolbar action")

	// ErrInvalidLogLevel indicates an unrecognized log level name.
	ErrInvalidLogLevel = errors.New("config: invalid log level")

	// ErrWatcherClosed indicates use of a watcher after Close.
	ErrWatcherClosed = errors.New("config: watcher closed")
)

// ParseError reports a failure to parse a configuration file.
type ParseError struct {
	// Path is the file that failed to parse.
	Path string
	// Err is the underlying decode error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error { return e.Err }

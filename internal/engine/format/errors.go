package format

import "errors"

// Errors returned by the format engine. An invalid range or an unknown
// action indicates a caller bug in selection bookkeeping, not a recoverable
// condition; the engine never clamps silently.
var (
	ErrRangeInvalid      = errors.New("format: invalid selection range")
	ErrUnsupportedAction = errors.New("format: unsupported action")
	ErrEmptyMarker       = errors.New("format: empty marker")
	ErrEmptyPrefix       = errors.New("format: empty line prefix")
)

package toolbar

import "errors"

// Errors returned by toolbar operations.
var (
	// ErrUnknownAction indicates a dispatch for a name with no builtin or
	// plugin action behind it.
	ErrUnknownAction = errors.New("toolbar: unknown action")

	// ErrLinkNeedsPrompt indicates a direct dispatch of the link action
	// while the link dialog is enabled. Use BeginLink instead.
	ErrLinkNeedsPrompt = errors.New("toolbar: link action requires the prompt")

	// ErrPromptStale indicates the document changed between opening a link
	// prompt and confirming it.
	ErrPromptStale = errors.New("toolbar: document changed while prompt was open")

	// ErrPromptClosed indicates a confirm or cancel on an already
	// resolved prompt.
	ErrPromptClosed = errors.New("toolbar: prompt already closed")
)

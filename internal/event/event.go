package event

// TopicProvider is implemented by events that know their own topic.
// Only TopicProvider values can be published.
type TopicProvider interface {
	EventTopic() Topic
}

// TextChangedEvent is emitted after the document text has been replaced.
// Listeners interested only in resulting content subscribe to this.
type TextChangedEvent struct {
	// Text is the full new document.
	Text string
	// Revision identifies the buffer revision that produced Text.
	Revision uint64
}

// EventTopic implements TopicProvider.
func (TextChangedEvent) EventTopic() Topic { return TopicTextChanged }

// SelectionChangedEvent is emitted when the tracked selection changes.
type SelectionChangedEvent struct {
	Start int
	End   int
}

// EventTopic implements TopicProvider.
func (SelectionChangedEvent) EventTopic() Topic { return TopicSelectionChanged }

// FormatAppliedEvent reports a completed formatting action.
type FormatAppliedEvent struct {
	// Action is the action name (e.g. "bold", or a plugin action name).
	Action string
	// Cursor is the final collapsed cursor offset in the new text.
	Cursor int
	// SelectionWasEmpty records whether the action ran from a collapsed
	// cursor rather than a real selection.
	SelectionWasEmpty bool
}

// EventTopic implements TopicProvider.
func (FormatAppliedEvent) EventTopic() Topic { return TopicFormatApplied }

// ConfigReloadedEvent reports that the configuration file changed on disk
// and was reloaded.
type ConfigReloadedEvent struct {
	Path string
}

// EventTopic implements TopicProvider.
func (ConfigReloadedEvent) EventTopic() Topic { return TopicConfigReloaded }

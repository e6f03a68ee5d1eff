package event

// Topic identifies a category of events.
type Topic string

// Topics published by the formatting toolkit.
const (
	// TopicTextChanged carries the full replacement document after an edit.
	TopicTextChanged Topic = "buffer.text"
	// TopicSelectionChanged carries selection updates observed from the host.
	TopicSelectionChanged Topic = "buffer.selection"
	// TopicFormatApplied reports a completed formatting action.
	TopicFormatApplied Topic = "format.applied"
	// TopicConfigReloaded reports a live configuration reload.
	TopicConfigReloaded Topic = "config.reloaded"

	// TopicAll matches every topic.
	TopicAll Topic = "*"
)

// Matches reports whether a subscription pattern matches an event topic.
// Patterns are exact topics or the "*" wildcard.
func (t Topic) Matches(eventTopic Topic) bool {
	return t == TopicAll || t == eventTopic
}

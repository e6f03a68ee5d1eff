package event

import "errors"

// Errors returned by bus operations.
var (
	ErrNilHandler           = errors.New("event: nil handler")
	ErrInvalidTopic         = errors.New("event: invalid topic")
	ErrInvalidEvent         = errors.New("event: event does not provide a topic")
	ErrSubscriptionNotFound = errors.New("event: subscription not found")
)

package event

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Handler processes a delivered event.
type Handler interface {
	Handle(ev any) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ev any) error

// Handle implements Handler.
func (f HandlerFunc) Handle(ev any) error { return f(ev) }

// Subscription is an active registration on the bus.
type Subscription struct {
	id      string
	pattern Topic
	handler Handler
}

// ID returns the unique subscription identifier.
func (s *Subscription) ID() string { return s.id }

// Pattern returns the topic pattern this subscription matches.
func (s *Subscription) Pattern() Topic { return s.pattern }

// Stats holds bus delivery counters.
type Stats struct {
	EventsPublished   uint64
	EventsDelivered   uint64
	HandlerErrors     uint64
	HandlerPanics     uint64
	ActiveSubscribers int
}

// Bus is a synchronous publish/subscribe bus.
// All methods are safe for concurrent use.
type Bus struct {
	mu   sync.RWMutex
	subs []*Subscription // delivery order == subscription order

	eventsPublished atomic.Uint64
	eventsDelivered atomic.Uint64
	handlerErrors   atomic.Uint64
	handlerPanics   atomic.Uint64
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for every event whose topic matches the
// pattern (an exact topic or TopicAll).
func (b *Bus) Subscribe(pattern Topic, handler Handler) (*Subscription, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}
	if pattern == "" {
		return nil, ErrInvalidTopic
	}

	sub := &Subscription{
		id:      uuid.NewString(),
		pattern: pattern,
		handler: handler,
	}

	b.mu.Lock()
	b.subs = append(b.subs, sub)
	b.mu.Unlock()

	return sub, nil
}

// SubscribeFunc is a convenience wrapper for subscribing a function.
func (b *Bus) SubscribeFunc(pattern Topic, fn func(ev any) error) (*Subscription, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return b.Subscribe(pattern, HandlerFunc(fn))
}

// Unsubscribe removes a subscription.
func (b *Bus) Unsubscribe(sub *Subscription) error {
	if sub == nil {
		return ErrSubscriptionNotFound
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subs {
		if s.id == sub.id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return nil
		}
	}
	return ErrSubscriptionNotFound
}

// Publish delivers an event synchronously to every matching subscriber in
// subscription order. Handler errors and panics are counted but do not stop
// delivery to the remaining subscribers.
func (b *Bus) Publish(ev TopicProvider) error {
	if ev == nil {
		return ErrInvalidEvent
	}

	topic := ev.EventTopic()
	if topic == "" {
		return ErrInvalidEvent
	}

	b.mu.RLock()
	subs := make([]*Subscription, 0, len(b.subs))
	for _, s := range b.subs {
		if s.pattern.Matches(topic) {
			subs = append(subs, s)
		}
	}
	b.mu.RUnlock()

	b.eventsPublished.Add(1)

	for _, s := range subs {
		b.deliver(s, ev)
	}
	return nil
}

// deliver invokes one handler with panic recovery.
func (b *Bus) deliver(s *Subscription, ev TopicProvider) {
	defer func() {
		if r := recover(); r != nil {
			b.handlerPanics.Add(1)
		}
	}()

	if err := s.handler.Handle(ev); err != nil {
		b.handlerErrors.Add(1)
		return
	}
	b.eventsDelivered.Add(1)
}

// Stats returns current delivery counters.
func (b *Bus) Stats() Stats {
	b.mu.RLock()
	active := len(b.subs)
	b.mu.RUnlock()

	return Stats{
		EventsPublished:   b.eventsPublished.Load(),
		EventsDelivered:   b.eventsDelivered.Load(),
		HandlerErrors:     b.handlerErrors.Load(),
		HandlerPanics:     b.handlerPanics.Load(),
		ActiveSubscribers: active,
	}
}

// Package event provides a small synchronous publish/subscribe bus for
// editor notifications.
//
// Events are plain structs implementing TopicProvider. The bus delivers
// each published event, in subscription order, to every active subscriber
// whose topic pattern matches; handler panics are recovered and counted so
// one misbehaving listener cannot take down the edit path.
//
// Delivery is synchronous on the publisher's goroutine: the formatting flow
// is a single synchronous sequence per toolbar action, and listeners (UI
// refresh, content mirrors) want to see the new document before the next
// action can arrive.
//
// Basic usage:
//
//	bus := event.NewBus()
//	sub, _ := bus.SubscribeFunc(event.TopicTextChanged, func(ev any) error {
//	    text := ev.(event.TextChangedEvent).Text
//	    // Mirror text somewhere...
//	    return nil
//	})
//	defer bus.Unsubscribe(sub)
//
//	bus.Publish(event.TextChangedEvent{Text: "# hello"})
package event

// Package events provides a small publish/subscribe bus used to fan out
// dispatch activity (classified categories, decode failures) to observers
// such as the metrics recorder, without widening the handler contract.
package events

import (
	"sync"
)

// Topics published by the dispatcher. The payload is the event category;
// observers that need the typed event register a handler instead.
const (
	TopicEventDispatched = "event_dispatched"
	TopicDecodeError     = "decode_error"
)

// Bus defines the interface for event bus operations.
type Bus interface {
	// Publish sends an event to all subscribers of the topic. Non-blocking;
	// events are dropped for subscribers with a full buffer.
	Publish(topic string, event interface{})
	// Subscribe returns a channel receiving events for the topic.
	Subscribe(topic string) <-chan interface{}
	// Unsubscribe removes a subscriber channel from the topic.
	Unsubscribe(topic string, ch <-chan interface{})
}

// EventBus is a concurrent-safe in-process implementation of Bus.
type EventBus struct {
	subscribers map[string]map[chan interface{}]struct{}
	mu          sync.RWMutex
	bufferSize  int
}

// NewEventBus creates an EventBus with a default per-subscriber buffer.
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string]map[chan interface{}]struct{}),
		bufferSize:  100,
	}
}

func (b *EventBus) Publish(topic string, event interface{}) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.subscribers[topic] {
		select {
		case ch <- event:
		default:
			// Subscriber buffer full, drop the event for it.
		}
	}
}

func (b *EventBus) Subscribe(topic string) <-chan interface{} {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan interface{}, b.bufferSize)
	if b.subscribers[topic] == nil {
		b.subscribers[topic] = make(map[chan interface{}]struct{})
	}
	b.subscribers[topic][ch] = struct{}{}
	return ch
}

func (b *EventBus) Unsubscribe(topic string, ch <-chan interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subscribers, ok := b.subscribers[topic]
	if !ok {
		return
	}
	for subCh := range subscribers {
		if ch == subCh {
			delete(subscribers, subCh)
			close(subCh)
			break
		}
	}
	if len(subscribers) == 0 {
		delete(b.subscribers, topic)
	}
}

// Shutdown closes all subscriber channels and clears the bus.
func (b *EventBus) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for topic, subscribers := range b.subscribers {
		for ch := range subscribers {
			close(ch)
		}
		delete(b.subscribers, topic)
	}
}

// TopicSubscriberCount reports the number of subscribers for a topic.
func (b *EventBus) TopicSubscriberCount(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers[topic])
}

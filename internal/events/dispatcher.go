package events

import (
	"sync"

	"github.com/alexisbeaulieu97/selectbox/internal/logger"
)

// Handler consumes an event.
type Handler func(Event)

// Subscription represents a registered handler. Callers invoke Unsubscribe to
// stop receiving events.
type Subscription interface {
	Unsubscribe()
}

// Dispatcher delivers events synchronously: Publish returns after every
// handler has run, in subscription order.
type Dispatcher struct {
	logger *logger.Logger
	subs   map[Kind][]subscriptionEntry
	nextID int
	mu     sync.RWMutex
}

// NewDispatcher creates a dispatcher that logs each delivery at debug level.
func NewDispatcher(log *logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.Nop()
	}
	return &Dispatcher{
		logger: log,
		subs:   make(map[Kind][]subscriptionEntry),
	}
}

// Publish delivers the event to the handlers subscribed to its kind and
// reports whether any handler received it.
func (d *Dispatcher) Publish(event Event) bool {
	if d == nil || event == nil {
		return false
	}

	d.mu.RLock()
	handlers := append([]subscriptionEntry(nil), d.subs[event.Kind()]...)
	d.mu.RUnlock()

	d.logger.Debugf("event %s delivered to %d handler(s)", event.Kind(), len(handlers))

	for _, entry := range handlers {
		entry.handler(event)
	}
	return len(handlers) > 0
}

// Subscribe registers a handler for the provided kind.
func (d *Dispatcher) Subscribe(kind Kind, handler Handler) Subscription {
	if d == nil || handler == nil {
		return noopSubscription{}
	}
	d.mu.Lock()
	d.nextID++
	id := d.nextID
	d.subs[kind] = append(d.subs[kind], subscriptionEntry{id: id, handler: handler})
	d.mu.Unlock()

	return subscription{
		cancel: func() {
			d.mu.Lock()
			defer d.mu.Unlock()
			handlers := d.subs[kind]
			for i, entry := range handlers {
				if entry.id == id {
					d.subs[kind] = append(handlers[:i:i], handlers[i+1:]...)
					break
				}
			}
		},
	}
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	cancel func()
}

func (s subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

type subscriptionEntry struct {
	id      int
	handler Handler
}

package events

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Listener receives events it subscribed to.
type Listener func(Event)

// Subscription identifies a registered listener for Off.
type Subscription struct {
	typ Type
	id  uint64
}

type entry struct {
	id uint64
	fn Listener
}

// Bus dispatches events synchronously to listeners in registration order.
//
// A listener that panics is recovered and logged; the remaining listeners
// still run. The bus is not safe for concurrent use: the game has one
// logical thread of control.
type Bus struct {
	listeners map[Type][]entry
	nextID    uint64
	logger    *log.Logger
}

// NewBus creates a bus that reports listener failures to logger.
// A nil logger discards them.
func NewBus(logger *log.Logger) *Bus {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Bus{
		listeners: make(map[Type][]entry),
		logger:    logger,
	}
}

// On registers fn for events of type t.
func (b *Bus) On(t Type, fn Listener) Subscription {
	b.nextID++
	b.listeners[t] = append(b.listeners[t], entry{id: b.nextID, fn: fn})
	return Subscription{typ: t, id: b.nextID}
}

// Off removes a listener. Unknown subscriptions are ignored.
func (b *Bus) Off(s Subscription) {
	list := b.listeners[s.typ]
	for i, e := range list {
		if e.id == s.id {
			// Copy so an in-flight Emit keeps its own view
			next := make([]entry, 0, len(list)-1)
			next = append(next, list[:i]...)
			next = append(next, list[i+1:]...)
			b.listeners[s.typ] = next
			return
		}
	}
}

// Emit delivers an event to every listener of its type.
// Listeners added or removed during dispatch take effect on the next Emit.
func (b *Bus) Emit(t Type, payload any) {
	ev := Event{Type: t, Payload: payload}
	for _, e := range b.listeners[t] {
		b.call(e.fn, ev)
	}
}

func (b *Bus) call(fn Listener, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("listener failed", "event", ev.Type, "panic", fmt.Sprint(r))
		}
	}()
	fn(ev)
}

// Clear removes all listeners.
func (b *Bus) Clear() {
	b.listeners = make(map[Type][]entry)
}

// Count returns the number of listeners for t.
func (b *Bus) Count(t Type) int {
	return len(b.listeners[t])
}

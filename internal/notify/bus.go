package notify

import (
	"context"
	"sync"
)

// Event wraps either an alert or a navigation request.
type Event struct {
	Alert      *Alert
	Navigation *Navigation
}

// Bus is an in-process fan-out of events to subscribers, each backed by a
// buffered channel. Publishing never blocks: a subscriber whose buffer is
// full misses the event.
type Bus struct {
	mu     sync.RWMutex
	subs   map[int]chan Event
	nextID int
	buffer int
}

// NewBus creates a bus whose subscriber channels hold buffer events.
func NewBus(buffer int) *Bus {
	return &Bus{subs: make(map[int]chan Event), buffer: buffer}
}

// Subscribe returns a channel of events and a cancel func that closes it.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan Event, b.buffer)
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
			close(ch)
		})
	}
}

// Publish delivers evt to every subscriber with room and reports how many
// received it.
func (b *Bus) Publish(evt Event) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n := 0
	for _, ch := range b.subs {
		select {
		case ch <- evt:
			n++
		default:
		}
	}
	return n
}

func (b *Bus) Notify(_ context.Context, a Alert) {
	b.Publish(Event{Alert: &a})
}

func (b *Bus) Navigate(_ context.Context, n Navigation) {
	b.Publish(Event{Navigation: &n})
}

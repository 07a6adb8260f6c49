package storage

import "sync"

// Bus fans mutation notifications out between stores that share the same
// underlying state. One Bus shared by several stores stands in for the host
// environment telling every other open tab about a tab's write.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]subscriber
}

type subscriber struct {
	origin any
	fn     func(key string)
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]subscriber)}
}

// Subscribe registers fn for mutations published by any origin other than the
// given one. The returned function removes the subscription.
func (b *Bus) Subscribe(origin any, fn func(key string)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.subs[id] = subscriber{origin: origin, fn: fn}
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

// Publish notifies every subscriber registered through a different origin.
func (b *Bus) Publish(origin any, key string) {
	b.mu.Lock()
	fns := make([]func(string), 0, len(b.subs))
	for _, s := range b.subs {
		if s.origin == origin {
			continue
		}
		fns = append(fns, s.fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(key)
	}
}

// Package fence serialises acceptance of asynchronous results. Without it, a
// stale in-flight response landing after a newer one can overwrite fresher
// state; with it, each request takes a ticket and only the holder of the
// latest ticket may apply its result.
package fence

import "sync"

// Fence is a request-generation counter.
type Fence struct {
	mu  sync.Mutex
	gen uint64
}

// Ticket marks one request generation.
type Ticket struct {
	f   *Fence
	gen uint64
}

// Next supersedes every outstanding ticket and returns a fresh one.
func (f *Fence) Next() Ticket {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gen++
	return Ticket{f: f, gen: f.gen}
}

// Valid reports whether the ticket is still the latest. A result guarded by
// an invalid ticket must be dropped.
func (t Ticket) Valid() bool {
	if t.f == nil {
		return false
	}
	t.f.mu.Lock()
	defer t.f.mu.Unlock()
	return t.gen == t.f.gen
}

package storage

import "sync"

var _ Store = (*MemoryStore)(nil)

// MemoryStore is an in-process Store. Several MemoryStores sharing one Bus
// and one backing map behave like multiple tabs over the same browser
// storage, which is how the session tests exercise cross-tab sync.
type MemoryStore struct {
	bus  *Bus
	mu   *sync.RWMutex
	data map[string]string
}

// NewMemory creates a standalone in-memory store with its own state and bus.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		bus:  NewBus(),
		mu:   &sync.RWMutex{},
		data: make(map[string]string),
	}
}

// Tab returns a second handle over the same state and bus. Writes through one
// handle notify subscribers of the others, never the writer's own.
func (ms *MemoryStore) Tab() *MemoryStore {
	return &MemoryStore{bus: ms.bus, mu: ms.mu, data: ms.data}
}

func (ms *MemoryStore) Get(key string) (string, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	v, ok := ms.data[key]
	return v, ok
}

func (ms *MemoryStore) Set(key, value string) error {
	ms.mu.Lock()
	ms.data[key] = value
	ms.mu.Unlock()
	ms.bus.Publish(ms, key)
	return nil
}

func (ms *MemoryStore) Delete(key string) {
	ms.mu.Lock()
	_, existed := ms.data[key]
	delete(ms.data, key)
	ms.mu.Unlock()
	if existed {
		ms.bus.Publish(ms, key)
	}
}

func (ms *MemoryStore) Subscribe(fn func(key string)) func() {
	return ms.bus.Subscribe(ms, fn)
}

package assets

import (
	"sync"
	"sync/atomic"
)

// cache is a thread-safe keyed store with hit/miss counters. Entries live
// until removed; there is no eviction because registered buffers must stay
// retrievable for the whole session.
type cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]V

	hits   atomic.Uint64
	misses atomic.Uint64
}

func newCache[V any]() *cache[V] {
	return &cache[V]{entries: make(map[string]V)}
}

// Get retrieves a value by key.
func (c *cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	v, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

// Set stores a value, replacing any previous one.
func (c *cache[V]) Set(key string, v V) {
	c.mu.Lock()
	c.entries[key] = v
	c.mu.Unlock()
}

// GetOrCreate returns the cached value or stores the result of create.
// Errors are returned and nothing is cached. create runs without the lock
// held, so two callers may both create; the first stored value wins.
func (c *cache[V]) GetOrCreate(key string, create func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := create()
	if err != nil {
		return v, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[key]; ok {
		return existing, nil
	}
	c.entries[key] = v
	return v, nil
}

// Delete removes a key and reports whether it was present.
func (c *cache[V]) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	delete(c.entries, key)
	return ok
}

// Clear removes every entry.
func (c *cache[V]) Clear() {
	c.mu.Lock()
	clear(c.entries)
	c.mu.Unlock()
}

// Len returns the number of entries.
func (c *cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats describes cache usage.
type Stats struct {
	Entries int
	Hits    uint64
	Misses  uint64
}

func (c *cache[V]) stats() Stats {
	return Stats{Entries: c.Len(), Hits: c.hits.Load(), Misses: c.misses.Load()}
}

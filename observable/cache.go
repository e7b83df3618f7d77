package observable

import "sync"

// Cache memoizes per-configuration measurements of a chain, keyed by
// observable. The owner invalidates it whenever the chain changes length.
// Safe for concurrent use.
type Cache struct {
	mu     sync.RWMutex
	values map[Observable][][]float64
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{values: make(map[Observable][][]float64)}
}

// Get returns the memoized rows of o, if present.
func (c *Cache) Get(o Observable) ([][]float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rows, ok := c.values[o]
	return rows, ok
}

// Put memoizes rows for o, replacing any previous value.
func (c *Cache) Put(o Observable, rows [][]float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[o] = rows
}

// Invalidate drops every memoized value.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.values)
}

// Len reports how many observables are memoized.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.values)
}

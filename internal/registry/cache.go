package registry

import "sync"

// MemoryCache is the default process-wide cache: a mutex-guarded map. Hosts
// with a shared object cache can inject their own implementation instead.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]interface{}
}

// NewMemoryCache creates an empty cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]interface{})}
}

// Get returns the value stored under key.
func (c *MemoryCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// Set stores a value under key, replacing any previous entry.
func (c *MemoryCache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Clear removes the entry under key, if any.
func (c *MemoryCache) Clear(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len reports the number of cached entries.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

package hashing

import "sync"

type cacheKey struct {
	hash  uint64
	depth int
}

// PerftCache remembers perft counts by position hash and depth. It is
// safe for concurrent use.
type PerftCache struct {
	mu          sync.RWMutex
	entries     map[cacheKey]uint64
	maxCapacity int
	hits        uint64
}

// NewPerftCache creates a cache. maxCapacity of 0 means unlimited
// capacity; a full cache stops taking new entries.
func NewPerftCache(maxCapacity int) *PerftCache {
	return &PerftCache{
		entries:     make(map[cacheKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Get returns the stored count for the position and depth.
func (c *PerftCache) Get(hash uint64, depth int) (uint64, bool) {
	c.mu.RLock()
	nodes, ok := c.entries[cacheKey{hash, depth}]
	c.mu.RUnlock()
	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
	}
	return nodes, ok
}

// Put stores a count unless the cache is full.
func (c *PerftCache) Put(hash uint64, depth int, nodes uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.isFull() {
		return
	}
	c.entries[cacheKey{hash, depth}] = nodes
}

// Len returns the number of stored entries.
func (c *PerftCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Hits returns how many lookups found an entry.
func (c *PerftCache) Hits() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *PerftCache) IsFull() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isFull()
}

func (c *PerftCache) isFull() bool {
	return c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity
}

// Reset clears the cache.
func (c *PerftCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]uint64)
	c.hits = 0
}

package di

import (
	"context"
	"sync"
	"time"
)

type cacheEntry struct {
	val      interface{}
	deadline time.Time
}

// InMemoryCache is a TTL map for query results. A background sweep
// reclaims expired entries; reads never return them either way.
type InMemoryCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	done    chan struct{}
}

func NewInMemoryCache() *InMemoryCache {
	c := &InMemoryCache{
		entries: make(map[string]cacheEntry),
		done:    make(chan struct{}),
	}
	go c.sweepLoop()
	return c
}

// Get returns the live value for key, if any.
func (c *InMemoryCache) Get(ctx context.Context, key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || !time.Now().Before(e.deadline) {
		return nil, false
	}
	return e.val, true
}

// Set stores value under key for ttl seconds, replacing any previous
// entry. A non-positive ttl expires the entry immediately.
func (c *InMemoryCache) Set(ctx context.Context, key string, value interface{}, ttl int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		val:      value,
		deadline: time.Now().Add(time.Duration(ttl) * time.Second),
	}
	return nil
}

// Delete drops key from the cache.
func (c *InMemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	return nil
}

// Clear drops every entry.
func (c *InMemoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]cacheEntry)
	return nil
}

// Stop ends the background sweep.
func (c *InMemoryCache) Stop() {
	close(c.done)
}

func (c *InMemoryCache) sweepLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case now := <-ticker.C:
			c.sweep(now)
		}
	}
}

// sweep removes entries whose deadline has passed.
func (c *InMemoryCache) sweep(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, e := range c.entries {
		if now.After(e.deadline) {
			delete(c.entries, key)
		}
	}
}

package store

import (
	"context"
	"strings"
	"sync"
	"time"
)

type memoryEntry struct {
	body      []byte
	expiresAt time.Time
}

// memoryCache is a process-local [ResponseCache] guarded by a mutex.
type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryCache returns an empty in-memory [ResponseCache].
func NewMemoryCache() ResponseCache {
	return &memoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, ErrCacheMiss
	}
	if !c.now().Before(entry.expiresAt) {
		c.mu.Lock()
		// re-check: the entry may have been replaced meanwhile
		if current, still := c.entries[key]; still && !c.now().Before(current.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, ErrCacheMiss
	}

	return append([]byte(nil), entry.body...), nil
}

func (c *memoryCache) Set(_ context.Context, key string, body []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	c.mu.Lock()
	c.entries[key] = memoryEntry{body: append([]byte(nil), body...), expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()

	return nil
}

func (c *memoryCache) InvalidatePrefix(_ context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if matchesPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}

	return nil
}

func (c *memoryCache) Clear(_ context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]memoryEntry)
	c.mu.Unlock()

	return nil
}

// matchesPrefix reports whether key is the resource prefix itself, one of
// its sub-resources or one of its queries.
func matchesPrefix(key, prefix string) bool {
	if key == prefix {
		return true
	}
	rest, ok := strings.CutPrefix(key, prefix)
	return ok && (strings.HasPrefix(rest, "/") || strings.HasPrefix(rest, "?"))
}

package store

import (
	"context"
	"time"
)

// namespacedCache scopes a shared [ResponseCache] to one server, so
// responses cached from one address are never served for another.
type namespacedCache struct {
	inner     ResponseCache
	namespace string
}

// NewNamespacedCache prefixes every key passed to inner with namespace,
// usually the server base URL. Clear still empties the whole cache.
func NewNamespacedCache(inner ResponseCache, namespace string) ResponseCache {
	return &namespacedCache{inner: inner, namespace: namespace}
}

func (c *namespacedCache) Get(ctx context.Context, key string) ([]byte, error) {
	return c.inner.Get(ctx, c.namespace+key)
}

func (c *namespacedCache) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	return c.inner.Set(ctx, c.namespace+key, body, ttl)
}

func (c *namespacedCache) InvalidatePrefix(ctx context.Context, prefix string) error {
	return c.inner.InvalidatePrefix(ctx, c.namespace+prefix)
}

func (c *namespacedCache) Clear(ctx context.Context) error {
	return c.inner.Clear(ctx)
}

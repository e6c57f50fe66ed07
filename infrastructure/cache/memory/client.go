// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Provides process-lifetime caching with TTL support and lazy expiry

package memory

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ErrCacheMiss is returned when a key is absent or its entry has expired.
var ErrCacheMiss = errors.New("cache: key not found")

// MemoryCache implements the Cache interface using in-memory storage.
// go-cache handles expiry and is safe for concurrent use.
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache. defaultTTL applies when a
// Set is issued with ttl 0 handled as no expiry; cleanupInterval controls
// the background purge of expired entries.
func NewMemoryCache(defaultTTL, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a value from the cache. An expired entry behaves as a miss.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, ok := c.cache.Get(key)
	if !ok {
		return nil, ErrCacheMiss
	}

	data, ok := value.([]byte)
	if !ok {
		c.cache.Delete(key)
		return nil, ErrCacheMiss
	}

	// Copy so callers cannot mutate the stored entry
	result := make([]byte, len(data))
	copy(result, data)
	return result, nil
}

// Set stores a value in the cache with the given TTL. Last write wins for
// concurrent sets on the same key.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	if ttl == 0 {
		ttl = gocache.NoExpiration
	}
	c.cache.Set(key, stored, ttl)
	return nil
}

// Delete removes a key from the cache.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.cache.Delete(key)
	return nil
}

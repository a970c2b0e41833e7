package utils

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheItem pairs a cached value with its expiry.
type cacheItem[V any] struct {
	data      V
	expiresAt time.Time
}

// Cache is an LRU cache whose entries also expire after a TTL.
type Cache[V any] struct {
	lruCache *lru.Cache[string, cacheItem[V]]
	now      func() time.Time
}

// NewCache creates a cache holding at most size entries.
func NewCache[V any](size int) (*Cache[V], error) {
	l, err := lru.New[string, cacheItem[V]](size)
	if err != nil {
		return nil, err
	}
	return &Cache[V]{lruCache: l, now: time.Now}, nil
}

// Set stores data under key until ttl elapses.
func (c *Cache[V]) Set(key string, data V, ttl time.Duration) {
	c.lruCache.Add(key, cacheItem[V]{
		data:      data,
		expiresAt: c.now().Add(ttl),
	})
}

// Get returns the cached value, or ok=false when missing or expired.
func (c *Cache[V]) Get(key string) (data V, ok bool) {
	val, found := c.lruCache.Get(key)
	if !found {
		return data, false
	}

	// expired
	if c.now().After(val.expiresAt) {
		c.lruCache.Remove(key)
		return data, false
	}

	return val.data, true
}

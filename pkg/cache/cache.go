// Package cache provides a capacity-bounded, lazily expiring LRU cache.
package cache

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCapacity is used when Options.Capacity is not positive.
const DefaultCapacity = 1024

// Cache is safe for concurrent use.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Put(key K, value V)
	Invalidate(key K)
	Purge()
	Len() int
}

// Options configures a cache. A zero TTL means entries never expire.
type Options struct {
	Capacity int
	TTL      time.Duration
	Now      func() time.Time
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// mu makes the expiry check and its removal one step with respect to Put.
type lruCache[K comparable, V any] struct {
	mu    sync.Mutex
	inner *lru.Cache[K, entry[V]]
	ttl   time.Duration
	now   func() time.Time
}

// New creates a cache with the given options.
func New[K comparable, V any](opts Options) Cache[K, V] {
	if opts.Capacity <= 0 {
		opts.Capacity = DefaultCapacity
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	// lru.New only fails on a non-positive size.
	inner, _ := lru.New[K, entry[V]](opts.Capacity)
	return &lruCache[K, V]{inner: inner, ttl: opts.TTL, now: opts.Now}
}

func (c *lruCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.inner.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	if c.ttl > 0 && !c.now().Before(e.expiresAt) {
		c.inner.Remove(key)
		var zero V
		return zero, false
	}
	return e.value, true
}

func (c *lruCache[K, V]) Put(key K, value V) {
	e := entry[V]{value: value}
	if c.ttl > 0 {
		e.expiresAt = c.now().Add(c.ttl)
	}
	c.mu.Lock()
	c.inner.Add(key, e)
	c.mu.Unlock()
}

func (c *lruCache[K, V]) Invalidate(key K) {
	c.mu.Lock()
	c.inner.Remove(key)
	c.mu.Unlock()
}

func (c *lruCache[K, V]) Purge() {
	c.mu.Lock()
	c.inner.Purge()
	c.mu.Unlock()
}

// Len counts stored entries, including expired ones not yet observed by Get.
func (c *lruCache[K, V]) Len() int {
	return c.inner.Len()
}

package cache

import (
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func TestCacheTTL(t *testing.T) {
	clk := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := New[string, int](Options{TTL: time.Hour, Now: clk.Now})

	c.Put("a", 1)
	clk.Advance(59 * time.Minute)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("expected hit before ttl, got %v %v", v, ok)
	}

	clk.Advance(time.Minute)
	if _, ok := c.Get("a"); ok {
		t.Fatal("expected miss at ttl boundary")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry should be removed on Get, len=%d", c.Len())
	}
}

func TestCacheNoTTL(t *testing.T) {
	clk := &fakeClock{now: time.Now()}
	c := New[string, string](Options{Now: clk.Now})
	c.Put("k", "v")
	clk.Advance(24 * 365 * time.Hour)
	if _, ok := c.Get("k"); !ok {
		t.Fatal("zero ttl must never expire")
	}
}

func TestCacheCapacityEvictsLRU(t *testing.T) {
	c := New[int, int](Options{Capacity: 2})
	c.Put(1, 1)
	c.Put(2, 2)
	c.Get(1)
	c.Put(3, 3)

	if _, ok := c.Get(2); ok {
		t.Error("expected least recently used key to be evicted")
	}
	if _, ok := c.Get(1); !ok {
		t.Error("expected recently used key to survive")
	}
}

func TestCacheInvalidateAndPurge(t *testing.T) {
	c := New[string, int](Options{})
	c.Put("a", 1)
	c.Put("b", 2)
	c.Invalidate("a")
	c.Invalidate("missing")
	if _, ok := c.Get("a"); ok {
		t.Error("invalidated key still present")
	}
	c.Purge()
	if c.Len() != 0 {
		t.Errorf("expected empty cache after purge, len=%d", c.Len())
	}
}

func TestCacheExpiredGetKeepsConcurrentPut(t *testing.T) {
	clk := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	var (
		c     Cache[string, int]
		wg    sync.WaitGroup
		armed bool
	)
	now := func() time.Time {
		if armed {
			// Fires inside Get, between reading the expired entry and removing it.
			armed = false
			wg.Add(1)
			go func() {
				defer wg.Done()
				c.Put("a", 2)
			}()
		}
		return clk.Now()
	}
	c = New[string, int](Options{TTL: time.Minute, Now: now})

	c.Put("a", 1)
	clk.Advance(time.Minute)
	armed = true
	if _, ok := c.Get("a"); ok {
		t.Fatal("expected miss for expired entry")
	}
	wg.Wait()

	if v, ok := c.Get("a"); !ok || v != 2 {
		t.Errorf("fresh Put was lost, got %v %v", v, ok)
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	clk := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := New[int, int](Options{Capacity: 16, TTL: time.Second, Now: clk.Now})

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 200 {
				c.Put(j%32, i)
				c.Get(j % 32)
				if j%50 == 0 {
					clk.Advance(time.Second)
					c.Invalidate(j % 32)
				}
			}
		}()
	}
	wg.Wait()
	if c.Len() > 16 {
		t.Errorf("capacity exceeded: %d", c.Len())
	}
}

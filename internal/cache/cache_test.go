// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/moodreel/internal/metrics"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
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

func newTestCache(t *testing.T, ttl time.Duration, clock *fakeClock) *Cache {
	t.Helper()
	c := New(ttl, WithClock(clock.Now), WithCleanupInterval(0))
	t.Cleanup(c.Close)
	return c
}

func TestCacheBasicOperations(t *testing.T) {
	t.Parallel()

	c := newTestCache(t, time.Minute, newFakeClock())

	c.Set("key1", "value1")
	value, exists := c.Get("key1")
	if !exists {
		t.Fatal("Expected key1 to exist")
	}
	if value != "value1" {
		t.Errorf("Expected value1, got %v", value)
	}

	if _, exists = c.Get("key2"); exists {
		t.Error("Expected key2 to not exist")
	}

	c.Set("key1", "value2")
	if value, _ = c.Get("key1"); value != "value2" {
		t.Errorf("Expected overwrite to value2, got %v", value)
	}
}

func TestCacheTTLBoundary(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	c := newTestCache(t, time.Hour, clock)
	c.Set("films", []string{"Stalker"})

	clock.Advance(time.Hour - time.Nanosecond)
	if _, ok := c.Get("films"); !ok {
		t.Fatal("entry expired before TTL elapsed")
	}

	clock.Advance(time.Nanosecond)
	if _, ok := c.Get("films"); ok {
		t.Fatal("entry still fresh at exactly TTL")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after expiry, want 0", c.Len())
	}
}

func TestCacheMetrics(t *testing.T) {
	t.Parallel()

	const label = "test_cache_metrics"
	c := New(time.Minute, WithClock(newFakeClock().Now), WithCleanupInterval(0), WithMetrics(label))
	t.Cleanup(c.Close)

	c.Set("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("missing")

	if got := testutil.ToFloat64(metrics.CacheHits.WithLabelValues(label)); got != 2 {
		t.Errorf("hits = %v, want 2", got)
	}
	if got := testutil.ToFloat64(metrics.CacheMisses.WithLabelValues(label)); got != 1 {
		t.Errorf("misses = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.CacheSize.WithLabelValues(label)); got != 1 {
		t.Errorf("size = %v, want 1", got)
	}
}

func TestCacheCleanup(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	c := newTestCache(t, time.Minute, clock)
	c.Set("old", 1)
	clock.Advance(30 * time.Second)
	c.Set("new", 2)
	clock.Advance(45 * time.Second)

	c.cleanup()

	if c.Len() != 1 {
		t.Fatalf("Len() = %d after cleanup, want 1", c.Len())
	}
	if _, ok := c.Get("new"); !ok {
		t.Error("fresh entry swept")
	}
}

func TestCacheCloseIdempotent(t *testing.T) {
	t.Parallel()

	c := New(time.Minute, WithCleanupInterval(time.Millisecond))
	c.Close()
	c.Close()
}

func TestCacheConcurrentAccess(t *testing.T) {
	t.Parallel()

	c := newTestCache(t, time.Minute, newFakeClock())
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Set("k", i)
			c.Get("k")
		}(i)
	}
	wg.Wait()

	if _, ok := c.Get("k"); !ok {
		t.Error("expected key after concurrent writes")
	}
}

func TestGenerateKey(t *testing.T) {
	t.Parallel()

	type params struct {
		Language string
		Page     int
	}
	a := GenerateKey("tmdb:popular", params{"en-US", 1})
	b := GenerateKey("tmdb:popular", params{"en-US", 1})
	c := GenerateKey("tmdb:popular", params{"en-US", 2})

	if a != b {
		t.Errorf("same params produced %q and %q", a, b)
	}
	if a == c {
		t.Error("different params produced the same key")
	}
	if len(a) != len("tmdb:popular:")+32 {
		t.Errorf("unexpected key length %d: %q", len(a), a)
	}
}

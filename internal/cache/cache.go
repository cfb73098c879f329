// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/moodreel/internal/metrics"
)

// Entry represents a cached item with expiration.
type Entry struct {
	Data      interface{}
	StoredAt  time.Time
	ExpiresAt time.Time
}

// Cache is a thread-safe in-memory cache with TTL support.
//
// An entry stored at t is served while now-t < TTL and treated as absent
// from t+TTL onward.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Entry
	ttl     time.Duration

	now             func() time.Time
	metricsType     string
	cleanupInterval time.Duration
	stop            chan struct{}
	stopOnce        sync.Once
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock replaces time.Now, letting tests move time explicitly.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// WithMetrics reports hits, misses and size under the given cache_type label.
func WithMetrics(cacheType string) Option {
	return func(c *Cache) { c.metricsType = cacheType }
}

// WithCleanupInterval sets how often expired entries are swept. Zero disables
// the background sweep.
func WithCleanupInterval(d time.Duration) Option {
	return func(c *Cache) { c.cleanupInterval = d }
}

// New creates a cache whose entries live for ttl. A background sweep removes
// expired entries every five minutes until Close is called.
//
//	c := cache.New(time.Hour, cache.WithMetrics(metrics.CacheTMDbCatalog))
//	defer c.Close()
func New(ttl time.Duration, opts ...Option) *Cache {
	c := &Cache{
		entries:         make(map[string]Entry),
		ttl:             ttl,
		now:             time.Now,
		cleanupInterval: 5 * time.Minute,
		stop:            make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cleanupInterval > 0 {
		go c.cleanupLoop()
	}
	return c
}

// Get returns the value for key if present and not expired. Expired entries
// are removed and counted as misses.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		c.recordAccess(false)
		return nil, false
	}

	if c.expired(entry, c.now()) {
		c.mu.Lock()
		if current, ok := c.entries[key]; ok && current.ExpiresAt.Equal(entry.ExpiresAt) {
			delete(c.entries, key)
		}
		size := len(c.entries)
		c.mu.Unlock()
		c.reportSize(size)

		c.recordAccess(false)
		return nil, false
	}

	c.recordAccess(true)
	return entry.Data, true
}

// Set stores value for the cache TTL.
func (c *Cache) Set(key string, value interface{}) {
	now := c.now()

	c.mu.Lock()
	c.entries[key] = Entry{
		Data:      value,
		StoredAt:  now,
		ExpiresAt: now.Add(c.ttl),
	}
	size := len(c.entries)
	c.mu.Unlock()
	c.reportSize(size)
}

// Len returns the number of stored entries, including expired ones not yet
// swept.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Close stops the background sweep. It is safe to call more than once.
func (c *Cache) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *Cache) expired(entry Entry, now time.Time) bool {
	return !now.Before(entry.ExpiresAt)
}

func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

// cleanup removes all expired entries.
func (c *Cache) cleanup() {
	now := c.now()

	c.mu.Lock()
	for key, entry := range c.entries {
		if c.expired(entry, now) {
			delete(c.entries, key)
		}
	}
	size := len(c.entries)
	c.mu.Unlock()
	c.reportSize(size)
}

func (c *Cache) recordAccess(hit bool) {
	if c.metricsType != "" {
		metrics.RecordCacheAccess(c.metricsType, hit)
	}
}

func (c *Cache) reportSize(size int) {
	if c.metricsType != "" {
		metrics.CacheSize.WithLabelValues(c.metricsType).Set(float64(size))
	}
}

// GenerateKey creates a compact cache key from a prefix and parameters.
//
//	key := cache.GenerateKey("tmdb:popular", struct{ Language string; Page int }{"en-US", 1})
func GenerateKey(prefix string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", prefix, params)
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", prefix, hash[:16])
}

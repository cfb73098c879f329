// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package cache

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/moodreel/internal/metrics"
)

// Memo is an unbounded string-keyed cache whose entries never expire. It is
// meant for lookups against rate-limited services where a stored answer,
// including a negative one, stays valid for the life of the process.
//
// Concurrent misses for the same key share a single load.
type Memo[V any] struct {
	mu          sync.RWMutex
	entries     map[string]V
	group       singleflight.Group
	metricsType string
}

// NewMemo creates an empty Memo. A non-empty metricsType reports hits,
// misses and size under that cache_type label.
func NewMemo[V any](metricsType string) *Memo[V] {
	return &Memo[V]{
		entries:     make(map[string]V),
		metricsType: metricsType,
	}
}

// Get returns the stored value for key.
func (m *Memo[V]) Get(key string) (V, bool) {
	m.mu.RLock()
	v, ok := m.entries[key]
	m.mu.RUnlock()
	return v, ok
}

// Set stores value under key, replacing any previous value.
func (m *Memo[V]) Set(key string, value V) {
	m.mu.Lock()
	m.entries[key] = value
	size := len(m.entries)
	m.mu.Unlock()

	if m.metricsType != "" {
		metrics.CacheSize.WithLabelValues(m.metricsType).Set(float64(size))
	}
}

// Len returns the number of stored entries.
func (m *Memo[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// GetOrLoad returns the stored value for key, or calls load once to produce
// and store it. Callers that arrive while a load for the same key is running
// wait for it and share its result. The boolean reports a cache hit.
func (m *Memo[V]) GetOrLoad(key string, load func() V) (V, bool) {
	if v, ok := m.Get(key); ok {
		m.record(true)
		return v, true
	}
	m.record(false)

	result, _, _ := m.group.Do(key, func() (interface{}, error) {
		if v, ok := m.Get(key); ok {
			return v, nil
		}
		v := load()
		m.Set(key, v)
		return v, nil
	})
	return result.(V), false
}

func (m *Memo[V]) record(hit bool) {
	if m.metricsType != "" {
		metrics.RecordCacheAccess(m.metricsType, hit)
	}
}

// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package cache

// Cacher is the TTL cache contract consumed by the remote catalog fetcher.
type Cacher interface {
	// Get retrieves a value. Returns the value and true if found and not expired.
	Get(key string) (interface{}, bool)

	// Set stores a value with the cache's TTL.
	Set(key string, value interface{})
}

var _ Cacher = (*Cache)(nil)

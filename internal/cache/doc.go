// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

/*
Package cache provides the two in-process caches Moodreel relies on.

# TTL Cache

Cache stores values for a fixed time-to-live. The TMDb popular list is kept
here for one hour so that catalog traffic to TMDb stays at one call per hour
regardless of request volume. The clock is injectable:

	now := time.Unix(0, 0)
	c := cache.New(time.Hour, cache.WithClock(func() time.Time { return now }))

An entry stored at t is fresh while now-t < TTL.

# Memo

Memo never expires entries. Poster lookups are stored here, including the
placeholder produced when a lookup fails, so a title is looked up at most once
per process. Concurrent misses for the same key share a single load through
golang.org/x/sync/singleflight.

# Metrics

Both caches report cache_hits_total, cache_misses_total and cache_entries
under a cache_type label when constructed with one.
*/
package cache

// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

// Package metrics registers the Prometheus collectors exported on /metrics.
//
// Collectors are package-level and registered with promauto on import:
//
//   - api_*: request counts, latency and in-flight requests per endpoint
//   - cache_*: hit, miss and size per cache_type ("tmdb_catalog", "poster")
//   - remote_*: outbound calls to TMDb, OMDb and the text generator
//   - circuit_breaker_*: state and outcomes of each breaker
//   - recommendations_total, fallback_responses_total, descriptions_total
//
// Record helpers keep label values consistent across callers.
package metrics

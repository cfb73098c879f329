// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

// Package remote holds the plumbing shared by the TMDb, OMDb and
// text-generation clients: JSON GET and POST with a per-call timeout, an
// optional outbound rate limit, and a sony/gobreaker circuit breaker that
// reports to the circuit_breaker_* metrics.
//
// Callers treat every error from this package as a degraded remote service
// and recover locally; nothing here is surfaced to API clients.
package remote

// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

// Package logging provides the zerolog-based structured logging used across Moodreel.
//
// A single global logger is configured once at startup from the LOG_LEVEL,
// LOG_FORMAT and LOG_CALLER settings. Components derive child loggers with a
// "component" field and pass them by value.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("addr", addr).Msg("Server starting")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Poster lookup failed")
//
// # Request Context
//
// The API layer stores a request ID in each request context. Ctx(ctx) returns
// a logger that carries it, so every line written while serving a request can
// be correlated.
//
// # Secrets
//
// Remote catalog, poster and text-generation calls embed API keys in URLs or
// headers. Log those through RedactURL and SanitizeToken, never raw.
//
// # Suture Integration
//
// NewSlogLogger adapts the global zerolog logger to log/slog so the supervisor
// tree (sutureslog) writes through the same pipeline.
package logging

// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

// Package describe turns a mood vector into one sentence.
//
// Two modes exist. The templated mode classifies each axis as low, mid or
// high and joins a canned phrase per axis. The generated mode asks an
// Ollama-compatible /api/generate endpoint for a sentence and falls back to
// a fixed pool of sentences whenever the endpoint is unavailable. A Service
// picks the generated mode only when an API key is configured. Describe never
// fails and never returns an empty string.
package describe

// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package api

import "github.com/tomtom215/moodreel/internal/catalog"

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FilmsResponse is the body of POST /api/generate-films. Exactly one of
// Success and Fallback is set.
type FilmsResponse struct {
	Films    []catalog.Details `json:"films"`
	Success  bool              `json:"success,omitempty"`
	Fallback bool              `json:"fallback,omitempty"`
}

// DescriptionResponse is the body of POST /api/mood-description.
type DescriptionResponse struct {
	Description string `json:"description"`
	Success     bool   `json:"success,omitempty"`
	Fallback    bool   `json:"fallback,omitempty"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// newFilmsResponse never encodes a nil slice as null.
func newFilmsResponse(films []catalog.Details, fallback bool) FilmsResponse {
	if films == nil {
		films = []catalog.Details{}
	}
	return FilmsResponse{Films: films, Success: !fallback, Fallback: fallback}
}

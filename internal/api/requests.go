// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package api

import "github.com/tomtom215/moodreel/internal/mood"

// GenerateFilmsRequest is the body of POST /api/generate-films.
// HasImage reports whether the caller attached a mood image; it is accepted
// for compatibility and does not change the ranking.
type GenerateFilmsRequest struct {
	Mood     mood.Vector `json:"mood" validate:"required"`
	HasImage bool        `json:"hasImage"`
}

// MoodDescriptionRequest is the body of POST /api/mood-description.
type MoodDescriptionRequest struct {
	Mood mood.Vector `json:"mood" validate:"required"`
}

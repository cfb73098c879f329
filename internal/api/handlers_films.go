// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tomtom215/moodreel/internal/describe"
	"github.com/tomtom215/moodreel/internal/metrics"
	"github.com/tomtom215/moodreel/internal/mood"
)

// Endpoint labels for fallback metrics.
const (
	endpointGenerateFilms   = "generate-films"
	endpointMoodDescription = "mood-description"
)

// GenerateFilms handles POST /api/generate-films.
//
// Any failure after the mood is accepted is answered with the default
// film list and "fallback": true, never with an error status.
func (h *Handler) GenerateFilms(w http.ResponseWriter, r *http.Request) {
	var req GenerateFilmsRequest
	m, ok := h.readMood(w, r, &req, &req.Mood)
	if !ok {
		return
	}

	ctx := r.Context()
	result, err := h.films.Recommend(ctx, m)
	if err != nil {
		h.requestLogger(ctx).Error().Err(err).
			Str("profile", result.Profile).
			Bool("has_image", req.HasImage).
			Msg("Film generation failed, serving default films")
		metrics.FallbackResponsesTotal.WithLabelValues(endpointGenerateFilms).Inc()
		respondJSON(w, http.StatusOK, newFilmsResponse(h.films.Defaults(ctx), true))
		return
	}

	h.requestLogger(ctx).Debug().
		Str("profile", result.Profile).
		Int("films", len(result.Films)).
		Bool("has_image", req.HasImage).
		Msg("Films generated")
	respondJSON(w, http.StatusOK, newFilmsResponse(result.Films, false))
}

// MoodDescription handles POST /api/mood-description.
func (h *Handler) MoodDescription(w http.ResponseWriter, r *http.Request) {
	var req MoodDescriptionRequest
	m, ok := h.readMood(w, r, &req, &req.Mood)
	if !ok {
		return
	}

	ctx := r.Context()
	text, mode, err := h.describe(ctx, m)
	if err != nil {
		h.requestLogger(ctx).Error().Err(err).Msg("Mood description failed, serving fallback sentence")
		metrics.FallbackResponsesTotal.WithLabelValues(endpointMoodDescription).Inc()
		respondJSON(w, http.StatusOK, DescriptionResponse{Description: h.describer.Fallback(), Fallback: true})
		return
	}

	h.requestLogger(ctx).Debug().Str("mode", string(mode)).Msg("Mood described")
	respondJSON(w, http.StatusOK, DescriptionResponse{Description: text, Success: true})
}

// describe converts a panic in the describer into an error.
func (h *Handler) describe(ctx context.Context, m mood.Vector) (text string, mode describe.Mode, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("describe panicked: %v", rec)
		}
	}()
	text, mode = h.describer.Describe(ctx, m)
	return text, mode, nil
}

// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package api

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodreel/internal/catalog"
	"github.com/tomtom215/moodreel/internal/describe"
	"github.com/tomtom215/moodreel/internal/logging"
	"github.com/tomtom215/moodreel/internal/mood"
	"github.com/tomtom215/moodreel/internal/recommend"
)

// FilmRecommender ranks films for a mood. *recommend.Service implements it.
type FilmRecommender interface {
	Recommend(ctx context.Context, m mood.Vector) (recommend.Result, error)
	Defaults(ctx context.Context) []catalog.Details
}

// MoodDescriber writes a sentence for a mood. *describe.Service implements it.
type MoodDescriber interface {
	Describe(ctx context.Context, m mood.Vector) (string, describe.Mode)
	Fallback() string
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: JSON and mood decoding helpers
//   - handlers_films.go: film recommendation and mood description endpoints
//   - handlers_health.go: health endpoint
type Handler struct {
	films            FilmRecommender
	describer        MoodDescriber
	rejectOutOfRange bool
	now              func() time.Time
	logger           zerolog.Logger
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithStrictMood rejects out-of-range mood values with a 400 instead of
// clamping them.
func WithStrictMood(strict bool) HandlerOption {
	return func(h *Handler) { h.rejectOutOfRange = strict }
}

// WithClock overrides the clock used for health timestamps.
func WithClock(now func() time.Time) HandlerOption {
	return func(h *Handler) { h.now = now }
}

// NewHandler creates a new API handler.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHandler(films FilmRecommender, describer MoodDescriber, logger zerolog.Logger, opts ...HandlerOption) *Handler {
	h := &Handler{
		films:     films,
		describer: describer,
		now:       time.Now,
		logger:    logger.With().Str("component", "api").Logger(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// requestLogger returns the handler logger tagged with the request ID.
func (h *Handler) requestLogger(ctx context.Context) *zerolog.Logger {
	logCtx := h.logger.With()
	if id := logging.RequestIDFromContext(ctx); id != "" {
		logCtx = logCtx.Str("request_id", id)
	}
	logger := logCtx.Logger()
	return &logger
}

// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package describe

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodreel/internal/metrics"
	"github.com/tomtom215/moodreel/internal/mood"
)

// Mode records how a description was produced.
type Mode string

// Modes, also used as the mood_descriptions_total label.
const (
	ModeTemplated Mode = "templated"
	ModeGenerated Mode = "generated"
	ModePool      Mode = "pool"
)

// Service chooses between the templated and generated modes.
type Service struct {
	gen    *Generator
	rand   func() float64
	logger zerolog.Logger
}

// NewService creates a Service. A nil or disabled gen selects the templated
// mode; rnd picks pool sentences when generation fails.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewService(gen *Generator, rnd func() float64, logger zerolog.Logger) *Service {
	return &Service{
		gen:    gen,
		rand:   rnd,
		logger: logger.With().Str("component", "describe").Logger(),
	}
}

// Describe returns one sentence for m and the mode that produced it.
func (s *Service) Describe(ctx context.Context, m mood.Vector) (string, Mode) {
	axes := mood.StandardAxes
	if m.UsesExtendedAxes() {
		axes = mood.ExtendedAxes
	}

	text, mode := s.describe(ctx, m, axes)
	metrics.DescriptionsTotal.WithLabelValues(string(mode)).Inc()
	return text, mode
}

// Fallback returns a pool sentence for degraded responses.
func (s *Service) Fallback() string {
	return FallbackSentence(s.rand)
}

func (s *Service) describe(ctx context.Context, m mood.Vector, axes []mood.Axis) (string, Mode) {
	if s.gen == nil || !s.gen.Enabled() {
		return Templated(m, axes), ModeTemplated
	}

	text, err := s.gen.Generate(ctx, m, axes)
	if err != nil {
		s.logger.Warn().Err(err).Msg("mood description generation failed, using fallback sentence")
		return s.Fallback(), ModePool
	}
	return text, ModeGenerated
}

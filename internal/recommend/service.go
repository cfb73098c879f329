// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package recommend

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodreel/internal/catalog"
	"github.com/tomtom215/moodreel/internal/metrics"
	"github.com/tomtom215/moodreel/internal/mood"
)

// RemoteCatalog supplies extra tag-scored films. Implementations degrade to
// an empty slice instead of failing.
type RemoteCatalog interface {
	FetchRemoteCatalog(ctx context.Context) []catalog.Film
}

// PosterResolver fills in posters for films that lack one, preserving order.
type PosterResolver interface {
	ResolveAll(ctx context.Context, films []catalog.Details) []catalog.Details
}

// Result is the outcome of one recommendation run.
type Result struct {
	Profile string
	Films   []catalog.Details
}

// Service merges catalogs, picks the engine for a mood, ranks and resolves
// posters.
type Service struct {
	standard *Engine
	extended *Engine

	static []catalog.Film
	dense  []catalog.Film

	remote  RemoteCatalog
	posters PosterResolver
	rand    RandFunc
	logger  zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithRemoteCatalog merges a remote film list into the standard profile.
func WithRemoteCatalog(rc RemoteCatalog) Option {
	return func(s *Service) { s.remote = rc }
}

// WithPosterResolver resolves posters for ranked films.
func WithPosterResolver(pr PosterResolver) Option {
	return func(s *Service) { s.posters = pr }
}

// WithRand overrides the seeded random source for both engines.
func WithRand(r RandFunc) Option {
	return func(s *Service) { s.rand = r }
}

// WithCatalogs overrides the static and dense catalogs.
func WithCatalogs(static, dense []catalog.Film) Option {
	return func(s *Service) {
		s.static = static
		s.dense = dense
	}
}

// NewService builds a Service from cfg.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewService(cfg *Config, logger zerolog.Logger, opts ...Option) (*Service, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recommend config: %w", err)
	}

	s := &Service{
		static: catalog.Static(),
		dense:  catalog.Dense(),
		logger: logger.With().Str("component", "recommend").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rand == nil {
		s.rand = NewSeededRand(cfg.Seed)
	}

	var err error
	if s.standard, err = NewEngine(cfg.Standard, s.rand, logger); err != nil {
		return nil, err
	}
	if s.extended, err = NewEngine(cfg.Extended, s.rand, logger); err != nil {
		return nil, err
	}
	return s, nil
}

// EngineFor returns the engine that serves m.
func (s *Service) EngineFor(m mood.Vector) *Engine {
	if m.UsesExtendedAxes() {
		return s.extended
	}
	return s.standard
}

// Recommend ranks films for m and resolves their posters. A panic anywhere in
// the pipeline is returned as an error.
func (s *Service) Recommend(ctx context.Context, m mood.Vector) (result Result, err error) {
	engine := s.EngineFor(m)
	profile := engine.Profile().Name

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recommendation panicked: %v", r)
			result = Result{Profile: profile}
		}
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		metrics.RecommendationsTotal.WithLabelValues(profile, outcome).Inc()
	}()

	if m == nil {
		return Result{Profile: profile}, ErrMissingMood
	}

	candidates := s.candidates(ctx, profile)
	films, err := engine.RankFilms(m, candidates, engine.Profile().TopN)
	if err != nil {
		return Result{Profile: profile}, fmt.Errorf("rank films: %w", err)
	}

	if s.posters != nil {
		films = s.posters.ResolveAll(ctx, films)
	}

	s.logger.Debug().
		Str("profile", profile).
		Int("candidates", len(candidates)).
		Int("returned", len(films)).
		Msg("recommendation complete")

	return Result{Profile: profile, Films: films}, nil
}

// candidates returns the catalog for a profile. The remote list only joins
// the standard profile because its films are tag-scored.
func (s *Service) candidates(ctx context.Context, profile string) []catalog.Film {
	if profile == ProfileExtended {
		return s.dense
	}
	if s.remote == nil {
		return s.static
	}
	remote := s.remote.FetchRemoteCatalog(ctx)
	merged := make([]catalog.Film, 0, len(s.static)+len(remote))
	merged = append(merged, s.static...)
	merged = append(merged, remote...)
	return merged
}

// Defaults returns the fallback film list with posters resolved.
func (s *Service) Defaults(ctx context.Context) []catalog.Details {
	films := catalog.Defaults()
	if s.posters == nil {
		return films
	}
	return s.posters.ResolveAll(ctx, films)
}

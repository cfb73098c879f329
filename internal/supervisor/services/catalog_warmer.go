// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodreel/internal/catalog"
)

// refreshTimeout bounds one warm cycle, independent of the per-call HTTP
// timeout inside the fetcher.
const refreshTimeout = 30 * time.Second

// CatalogRefresher refetches the remote catalog and stores it in its cache.
// *tmdb.Fetcher implements it.
type CatalogRefresher interface {
	Refresh(ctx context.Context) ([]catalog.Film, error)
}

// CatalogWarmerService keeps the remote catalog cache warm so user requests
// rarely pay for the TMDb round trip. It refreshes once on start and then
// every interval. Refresh failures are logged and retried on the next tick;
// the cache keeps serving until its own TTL expires.
type CatalogWarmerService struct {
	refresher CatalogRefresher
	interval  time.Duration
	logger    zerolog.Logger
	name      string
}

// NewCatalogWarmerService creates a warmer. A non-positive interval only
// warms once on start.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogWarmerService(refresher CatalogRefresher, interval time.Duration, logger zerolog.Logger) *CatalogWarmerService {
	return &CatalogWarmerService{
		refresher: refresher,
		interval:  interval,
		logger:    logger.With().Str("service", "catalog-warmer").Logger(),
		name:      "catalog-warmer",
	}
}

// Serve implements the suture.Service interface.
func (s *CatalogWarmerService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("catalog warmer starting")

	s.refresh(ctx)

	if s.interval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("catalog warmer shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

// refresh runs one warm cycle.
func (s *CatalogWarmerService) refresh(ctx context.Context) {
	refreshCtx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	start := time.Now()
	films, err := s.refresher.Refresh(refreshCtx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("catalog refresh failed (will retry on schedule)")
		return
	}

	s.logger.Debug().
		Int("films", len(films)).
		Dur("duration", time.Since(start)).
		Msg("catalog refreshed")
}

// String returns the service name for logging.
func (s *CatalogWarmerService) String() string {
	return s.name
}

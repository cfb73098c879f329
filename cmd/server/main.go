// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/moodreel/internal/api"
	"github.com/tomtom215/moodreel/internal/config"
	"github.com/tomtom215/moodreel/internal/describe"
	"github.com/tomtom215/moodreel/internal/logging"
	"github.com/tomtom215/moodreel/internal/poster"
	"github.com/tomtom215/moodreel/internal/recommend"
	"github.com/tomtom215/moodreel/internal/supervisor"
	"github.com/tomtom215/moodreel/internal/supervisor/services"
	"github.com/tomtom215/moodreel/internal/tmdb"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().Msg("Starting Moodreel with supervisor tree")
	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("environment", cfg.Server.Environment).
		Bool("tmdb_enabled", cfg.TMDb.APIKey != "").
		Bool("omdb_enabled", cfg.OMDb.APIKey != "").
		Bool("textgen_enabled", cfg.TextGen.APIKey != "").
		Str("mood_mode", cfg.Recommend.MoodMode).
		Msg("Configuration loaded")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin (FRONTEND_URL=*) in production. Set explicit origins.")
	}

	fetcher := tmdb.NewFetcher(tmdbConfig(&cfg.TMDb), logging.Logger())
	defer fetcher.Close()

	resolver := poster.NewResolver(posterConfig(&cfg.OMDb), logging.Logger())

	generator := describe.NewGenerator(generatorConfig(&cfg.TextGen), logging.Logger())
	describer := describe.NewService(generator, recommend.NewSeededRand(cfg.Recommend.Seed), logging.Logger())
	if !generator.Enabled() {
		logging.Info().Msg("Text generation disabled (TEXTGEN_API_KEY unset), using templated descriptions")
	}

	recommender, err := recommend.NewService(recommendConfig(&cfg.Recommend), logging.Logger(),
		recommend.WithRemoteCatalog(fetcher),
		recommend.WithPosterResolver(resolver),
	)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize recommendation service")
	}

	handler := api.NewHandler(recommender, describer, logging.Logger(),
		api.WithStrictMood(cfg.Recommend.RejectsOutOfRange()),
	)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	// Create structured logger for supervisor using our slog adapter
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// === ADD SERVICES TO SUPERVISOR TREE ===

	if cfg.TMDb.APIKey != "" && cfg.TMDb.WarmInterval > 0 {
		tree.AddCacheService(services.NewCatalogWarmerService(fetcher, cfg.TMDb.WarmInterval, logging.Logger()))
		logging.Info().Dur("interval", cfg.TMDb.WarmInterval).Msg("Catalog warmer added to supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, services.DefaultShutdownTimeout).
		WithLogger(logging.Logger()))

	// === START SUPERVISOR TREE ===

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}

func tmdbConfig(c *config.TMDbConfig) tmdb.Config {
	out := tmdb.DefaultConfig()
	out.APIKey = c.APIKey
	out.BaseURL = c.BaseURL
	out.ImageBaseURL = c.ImageBaseURL
	out.Language = c.Language
	out.Timeout = c.Timeout
	out.CacheTTL = c.CacheTTL
	return out
}

func posterConfig(c *config.OMDbConfig) poster.Config {
	out := poster.DefaultConfig()
	out.APIKey = c.APIKey
	out.BaseURL = c.BaseURL
	out.Timeout = c.Timeout
	out.RateLimit = c.RateLimit
	out.Burst = c.Burst
	return out
}

func generatorConfig(c *config.TextGenConfig) describe.GeneratorConfig {
	out := describe.DefaultGeneratorConfig()
	out.APIKey = c.APIKey
	out.URL = c.URL
	out.Model = c.Model
	out.Timeout = c.Timeout
	return out
}

func recommendConfig(c *config.RecommendConfig) *recommend.Config {
	out := recommend.DefaultConfig()
	out.Standard.TopN = c.TopN
	out.Standard.Perturbation = recommend.Perturbation(c.StandardPerturbation)
	out.Extended.TopN = c.ExtendedTopN
	out.Extended.Perturbation = recommend.Perturbation(c.ExtendedPerturbation)
	out.Seed = c.Seed
	return out
}

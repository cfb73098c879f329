// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

/*
Package supervisor provides process supervision for Moodreel using suture v4.

The supervisor tree organizes the long-running services into two layers:

	RootSupervisor ("moodreel")
	├── CacheSupervisor ("cache-layer")
	│   └── CatalogWarmerService (if TMDB_WARM_INTERVAL > 0 and TMDB_API_KEY is set)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's failure decay and backoff. A
warmer stuck in backoff never takes the HTTP server down with it.

Supervisor events (service failures, backoff, restarts) are logged through
sutureslog, which writes to a *slog.Logger. The server passes
logging.NewSlogLogger() so those events reach the zerolog output.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddCacheService(services.NewCatalogWarmerService(fetcher, interval, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}
*/
package supervisor

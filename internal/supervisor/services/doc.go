// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

/*
Package services provides suture.Service wrappers for Moodreel's long-running
components.

  - HTTPServerService: runs an *http.Server and shuts it down gracefully when
    the supervisor context is canceled
  - CatalogWarmerService: refreshes the TMDb popular catalog on start and on
    every interval so requests find a warm cache

Each service implements Serve(ctx) error and String() string. Serve blocks
until the context is canceled and returns ctx.Err(); any other return value
is treated by suture as a failure and triggers a restart with backoff.

Usage:

	tree.AddCacheService(services.NewCatalogWarmerService(fetcher, 55*time.Minute, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second).WithLogger(logger))
*/
package services

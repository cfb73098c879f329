// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

/*
Package middleware provides HTTP middleware components for the application.

Both middlewares use the chi signature func(http.Handler) http.Handler and
are mounted by the api router:

  - RequestID: honors or generates X-Request-ID and stores it in the
    logging context, so logging.Ctx(ctx) tags every line of a request
  - PrometheusMetrics: records api_requests_total, api_request_duration_seconds
    and api_active_requests, labelled by chi route pattern

Usage Example:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)

Unmatched requests are recorded under the "unmatched" endpoint label so
random paths cannot grow the metric's cardinality.
*/
package middleware

// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

/*
Package api provides the HTTP JSON API for Moodreel.

Endpoints:

	POST /api/generate-films     {mood, hasImage} -> {films, success} or {films, fallback}
	POST /api/mood-description   {mood}           -> {description, success} or {description, fallback}
	GET  /api/health             -> {status: "ok", timestamp}
	GET  /metrics                Prometheus exposition

Both POST endpoints degrade instead of failing: when recommendation or
description breaks internally the response is still 200, carrying the
default film list (with resolved posters) or a canned mood sentence and
"fallback": true. A missing or null mood is the only client error they
report, as 400 {"error": "Mood data is required"}. When the server runs in
reject mood mode, out-of-range axis values are also rejected with a 400.

Unmatched routes and unsupported methods return 404 {"error": "Endpoint
not found"}. Panics are recovered, logged with a stack trace and answered
with 500 {"error": "Internal server error"}.

Middleware Stack:

Global, in order: request ID (with logging context), real IP, JSON
recoverer and CORS (go-chi/cors). The /api group adds per-IP rate limiting
(go-chi/httprate), security headers and Prometheus request metrics.

Usage Example:

	handler := api.NewHandler(recommender, describer, logger, api.WithStrictMood(cfg.Recommend.RejectsOutOfRange()))
	mw := api.NewChiMiddlewareFromConfig(&cfg.Security)
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: api.NewRouter(handler, mw).SetupChi()}
*/
package api

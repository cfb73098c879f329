// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

/*
Package main is the entry point for the Moodreel server application.

Moodreel recommends films for a mood. A caller sends slider values on six
(or eight) mood axes; the server ranks a curated catalog, merged with the
TMDb popular list when a key is configured, resolves posters through OMDb,
and writes a one-sentence description of the mood.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("moodreel")
	├── CacheSupervisor ("cache-layer")
	│   └── Catalog warmer (TMDb popular list, optional)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with .env files, config file and environment
 2. Logging: zerolog with JSON/console output modes
 3. Remote clients: TMDb fetcher, OMDb poster resolver, text generator
 4. Recommendation service: standard and extended engines
 5. HTTP Server: Chi router with middleware stack
 6. Supervisor Tree: Suture v4 process supervision

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority wins):

	Priority: Environment variables > .env.local > .env > Config file > Defaults

Core environment variables:

	# Server
	PORT=3001
	FRONTEND_URL=http://localhost:3000   # allowed CORS origins, comma-separated
	LOG_LEVEL=info                       # trace, debug, info, warn, error
	LOG_FORMAT=json                      # json or console

	# Remote services (all optional)
	TMDB_API_KEY=<key>                   # popular catalog
	OMDB_API_KEY=<key>                   # posters
	TEXTGEN_API_KEY=<key>                # generated descriptions
	TEXTGEN_URL=http://localhost:11434

	# Recommendations
	RECOMMEND_MOOD_MODE=clamp            # clamp or reject
	RECOMMEND_SEED=0                     # 0 seeds from the clock

Every missing key degrades gracefully: no remote catalog, placeholder posters
and templated descriptions respectively.

# Endpoints

	GET  /api/health             liveness check
	POST /api/generate-films     ranked films for a mood
	POST /api/mood-description   one-sentence mood description
	GET  /metrics                Prometheus metrics

# Signal Handling

SIGINT and SIGTERM cancel the root context. The supervisor stops the HTTP
server gracefully and waits for the catalog warmer before the process exits.

# Example Usage

Start with defaults:

	./moodreel

Start with a TMDb key and console logs:

	TMDB_API_KEY=xxxx LOG_FORMAT=console ./moodreel
*/
package main

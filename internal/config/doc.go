// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

/*
Package config provides centralized configuration management for Moodreel.

Configuration is layered with Koanf v2: built-in defaults, an optional YAML
file, .env files loaded with godotenv, then environment variables. Later
layers override earlier ones.

# Environment Variables

Server:
  - PORT: Listen port (default: 3001)
  - HOST: Bind address (default: 0.0.0.0)
  - SERVER_TIMEOUT: Read/write timeout (default: 30s)
  - ENVIRONMENT: development, staging or production (default: development)

Security:
  - FRONTEND_URL: Allowed CORS origins, comma-separated (default: http://localhost:3000)
  - RATE_LIMIT_REQUESTS: Requests per window per IP (default: 100)
  - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
  - DISABLE_RATE_LIMIT: Disable inbound rate limiting (default: false)

TMDb (remote catalog):
  - TMDB_API_KEY: API key; without it the remote catalog is empty
  - TMDB_BASE_URL: API base (default: https://api.themoviedb.org/3)
  - TMDB_CACHE_TTL: Catalog cache lifetime (default: 1h)
  - TMDB_WARM_INTERVAL: Background refresh interval, 0 disables (default: 55m)

OMDb (posters):
  - OMDB_API_KEY: API key; without it every poster is a placeholder
  - OMDB_BASE_URL: API base (default: https://www.omdbapi.com/)
  - OMDB_RATE_LIMIT: Outbound requests per second, 0 = unlimited (default: 10)

Text generation (mood descriptions):
  - TEXTGEN_API_KEY: Bearer key; without it descriptions are templated
  - TEXTGEN_URL: Ollama-compatible base URL (default: http://localhost:11434)
  - TEXTGEN_MODEL: Model name (default: llama3.2)

Recommendation:
  - RECOMMEND_TOP_N: Standard profile result count (default: 8)
  - RECOMMEND_EXTENDED_TOP_N: Extended profile result count (default: 6)
  - RECOMMEND_STANDARD_PERTURBATION, RECOMMEND_EXTENDED_PERTURBATION: flat or entropy
  - RECOMMEND_SEED: Perturbation seed, 0 seeds from the clock (default: 0)
  - RECOMMEND_MOOD_MODE: clamp or reject out-of-range mood values (default: clamp)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller file:line (default: false)

# Config File

CONFIG_PATH names a YAML file. Otherwise config.yaml, config.yml,
/etc/moodreel/config.yaml and /etc/moodreel/config.yml are tried in order.
Keys mirror the koanf struct tags:

	server:
	  port: 3001
	tmdb:
	  cache_ttl: 1h
	recommend:
	  mood_mode: reject

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
*/
package config

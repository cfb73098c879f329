// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	if err := defaultConfig().Validate(); err != nil {
		t.Fatalf("defaultConfig().Validate() = %v", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "PORT"},
		{"negative timeout", func(c *Config) { c.Server.Timeout = -time.Second }, "SERVER_TIMEOUT"},
		{"unknown environment", func(c *Config) { c.Server.Environment = "qa" }, "ENVIRONMENT"},
		{"no origins", func(c *Config) { c.Security.CORSOrigins = nil }, "FRONTEND_URL"},
		{"origin with path", func(c *Config) { c.Security.CORSOrigins = []string{"https://a.example/app"} }, "FRONTEND_URL"},
		{"rate limit too low", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate window too long", func(c *Config) { c.Security.RateLimitWindow = 2 * time.Hour }, "RATE_LIMIT_WINDOW"},
		{"omdb url with query", func(c *Config) { c.OMDb.BaseURL = "https://www.omdbapi.com/?apikey=x" }, "OMDB_BASE_URL"},
		{"textgen url without host", func(c *Config) { c.TextGen.URL = "http://" }, "TEXTGEN_URL"},
		{"zero cache ttl", func(c *Config) { c.TMDb.CacheTTL = 0 }, "TMDB_CACHE_TTL"},
		{"negative warm interval", func(c *Config) { c.TMDb.WarmInterval = -time.Minute }, "TMDB_WARM_INTERVAL"},
		{"negative omdb rate", func(c *Config) { c.OMDb.RateLimit = -1 }, "OMDB_RATE_LIMIT"},
		{"zero omdb timeout", func(c *Config) { c.OMDb.Timeout = 0 }, "OMDB_TIMEOUT"},
		{"top n too large", func(c *Config) { c.Recommend.TopN = 51 }, "RECOMMEND_TOP_N"},
		{"extended top n zero", func(c *Config) { c.Recommend.ExtendedTopN = 0 }, "RECOMMEND_EXTENDED_TOP_N"},
		{"bad perturbation", func(c *Config) { c.Recommend.StandardPerturbation = "gaussian" }, "RECOMMEND_STANDARD_PERTURBATION"},
		{"bad mood mode", func(c *Config) { c.Recommend.MoodMode = "strict" }, "RECOMMEND_MOOD_MODE"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAllowsDisabledFeatures(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.Security.RateLimitDisabled = true
	cfg.Security.RateLimitReqs = 0
	cfg.TMDb.WarmInterval = 0
	cfg.OMDb.RateLimit = 0
	cfg.Logging.Format = ""
	cfg.Security.CORSOrigins = []string{"*"}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestEnvironmentHelpers(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if !cfg.IsDevelopment() || cfg.IsProduction() {
		t.Error("default environment should be development")
	}

	cfg.Server.Environment = "Production"
	cfg.Security.CORSOrigins = []string{"*"}
	if !cfg.IsProduction() || !cfg.ShouldWarnAboutCORS() {
		t.Error("wildcard CORS in production should warn")
	}

	cfg.Security.CORSOrigins = []string{"https://moodreel.example"}
	if cfg.ShouldWarnAboutCORS() {
		t.Error("explicit origins should not warn")
	}
}

func TestServerAddr(t *testing.T) {
	t.Parallel()

	s := ServerConfig{Host: "127.0.0.1", Port: 3001}
	if got := s.Addr(); got != "127.0.0.1:3001" {
		t.Errorf("Addr() = %q", got)
	}
}

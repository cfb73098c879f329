// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file, .env files and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. .env files: .env.local then .env, never overriding the real environment
//  4. Environment Variables: Override any setting
//
// Every third-party API key is optional. A missing key degrades only the
// feature that needs it: no remote catalog, placeholder posters, or
// templated mood descriptions.
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	server := http.Server{Addr: cfg.Server.Addr()}
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	TMDb      TMDbConfig      `koanf:"tmdb"`
	OMDb      OMDbConfig      `koanf:"omdb"`
	TextGen   TextGenConfig   `koanf:"textgen"`
	Recommend RecommendConfig `koanf:"recommend"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, staging or production
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds cross-origin and inbound rate limit settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// TMDbConfig holds the remote popularity catalog settings.
type TMDbConfig struct {
	APIKey       string        `koanf:"api_key"`
	BaseURL      string        `koanf:"base_url"`
	ImageBaseURL string        `koanf:"image_base_url"`
	Language     string        `koanf:"language"`
	Timeout      time.Duration `koanf:"timeout"`
	CacheTTL     time.Duration `koanf:"cache_ttl"`

	// WarmInterval is how often the catalog warmer refreshes the list.
	// Zero disables the warmer.
	WarmInterval time.Duration `koanf:"warm_interval"`
}

// OMDbConfig holds the poster lookup settings.
type OMDbConfig struct {
	APIKey    string        `koanf:"api_key"`
	BaseURL   string        `koanf:"base_url"`
	Timeout   time.Duration `koanf:"timeout"`
	RateLimit float64       `koanf:"rate_limit"` // requests per second, 0 = unlimited
	Burst     int           `koanf:"burst"`
}

// TextGenConfig holds the mood description generator settings. The
// endpoint must speak the Ollama /api/generate protocol.
type TextGenConfig struct {
	APIKey  string        `koanf:"api_key"`
	URL     string        `koanf:"url"`
	Model   string        `koanf:"model"`
	Timeout time.Duration `koanf:"timeout"`
}

// Mood modes for RecommendConfig.MoodMode.
const (
	MoodModeClamp  = "clamp"
	MoodModeReject = "reject"
)

// RecommendConfig holds the scoring engine settings.
type RecommendConfig struct {
	TopN                 int    `koanf:"top_n"`
	ExtendedTopN         int    `koanf:"extended_top_n"`
	StandardPerturbation string `koanf:"standard_perturbation"`
	ExtendedPerturbation string `koanf:"extended_perturbation"`

	// Seed feeds the perturbation source. Zero seeds from the clock.
	Seed int64 `koanf:"seed"`

	// MoodMode is "clamp" (out-of-range values are clamped) or "reject"
	// (out-of-range values fail the request with 400).
	MoodMode string `koanf:"mood_mode"`
}

// RejectsOutOfRange reports whether out-of-range mood values are rejected.
func (r RecommendConfig) RejectsOutOfRange() bool {
	return r.MoodMode == MoodModeReject
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

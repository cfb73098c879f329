// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/moodreel/config.yaml",
	"/etc/moodreel/config.yml",
}

// DotEnvFiles are loaded into the process environment before the
// environment layer is read. Earlier files win, and variables that are
// already set are never overridden.
var DotEnvFiles = []string{".env.local", ".env"}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        3001,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"http://localhost:3000"},
			RateLimitReqs:     100,
			RateLimitWindow:   1 * time.Minute,
			RateLimitDisabled: false,
		},
		TMDb: TMDbConfig{
			APIKey:       "", // Optional: no remote catalog without it
			BaseURL:      "https://api.themoviedb.org/3",
			ImageBaseURL: "https://image.tmdb.org/t/p/",
			Language:     "en-US",
			Timeout:      5 * time.Second,
			CacheTTL:     1 * time.Hour,
			WarmInterval: 55 * time.Minute,
		},
		OMDb: OMDbConfig{
			APIKey:    "", // Optional: placeholder posters without it
			BaseURL:   "https://www.omdbapi.com/",
			Timeout:   5 * time.Second,
			RateLimit: 10,
			Burst:     10,
		},
		TextGen: TextGenConfig{
			APIKey:  "", // Optional: templated descriptions without it
			URL:     "http://localhost:11434",
			Model:   "llama3.2",
			Timeout: 5 * time.Second,
		},
		Recommend: RecommendConfig{
			TopN:                 8,
			ExtendedTopN:         6,
			StandardPerturbation: "flat",
			ExtendedPerturbation: "entropy",
			Seed:                 0,
			MoodMode:             MoodModeClamp,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. .env files: copied into the environment when present
//  4. Environment Variables: Override any setting
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: .env files feed the environment layer
	if err := loadDotEnv(DotEnvFiles...); err != nil {
		return nil, err
	}

	// Layer 4: Load environment variables (highest priority)
	// TMDB_API_KEY -> tmdb.api_key, FRONTEND_URL -> security.cors_origins
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Post-process slice fields from comma-separated strings
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadDotEnv loads each existing file with godotenv. Missing files are
// skipped; malformed files are an error.
func loadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// This is necessary because env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// If it's already a slice (from YAML file or defaults), skip
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		if strVal, ok := val.(string); ok {
			if strVal == "" {
				continue
			}
			parts := strings.Split(strVal, ",")
			trimmed := make([]string, 0, len(parts))
			for _, p := range parts {
				p = strings.TrimSpace(p)
				if p != "" {
					trimmed = append(trimmed, p)
				}
			}
			if len(trimmed) > 0 {
				if err := k.Set(path, trimmed); err != nil {
					return fmt.Errorf("failed to set %s: %w", path, err)
				}
			}
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Server mappings
	"port":           "server.port",
	"host":           "server.host",
	"server_timeout": "server.timeout",
	"environment":    "server.environment",

	// Security mappings
	"frontend_url":        "security.cors_origins",
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// TMDb mappings
	"tmdb_api_key":        "tmdb.api_key",
	"tmdb_base_url":       "tmdb.base_url",
	"tmdb_image_base_url": "tmdb.image_base_url",
	"tmdb_language":       "tmdb.language",
	"tmdb_timeout":        "tmdb.timeout",
	"tmdb_cache_ttl":      "tmdb.cache_ttl",
	"tmdb_warm_interval":  "tmdb.warm_interval",

	// OMDb mappings
	"omdb_api_key":    "omdb.api_key",
	"omdb_base_url":   "omdb.base_url",
	"omdb_timeout":    "omdb.timeout",
	"omdb_rate_limit": "omdb.rate_limit",
	"omdb_burst":      "omdb.burst",

	// Text generation mappings
	"textgen_api_key": "textgen.api_key",
	"textgen_url":     "textgen.url",
	"textgen_model":   "textgen.model",
	"textgen_timeout": "textgen.timeout",

	// Recommendation mappings
	"recommend_top_n":                 "recommend.top_n",
	"recommend_extended_top_n":        "recommend.extended_top_n",
	"recommend_standard_perturbation": "recommend.standard_perturbation",
	"recommend_extended_perturbation": "recommend.extended_perturbation",
	"recommend_seed":                  "recommend.seed",
	"recommend_mood_mode":             "recommend.mood_mode",

	// Logging mappings
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - PORT -> server.port
//   - FRONTEND_URL -> security.cors_origins
//   - TMDB_API_KEY -> tmdb.api_key
//   - RECOMMEND_MOOD_MODE -> recommend.mood_mode
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}

	// Unmapped variables are skipped so unrelated environment variables
	// never pollute the configuration.
	return ""
}

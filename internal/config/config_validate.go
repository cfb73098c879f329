// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that the configuration is internally consistent.
// Missing API keys are never an error.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	if err := c.validateRemotes(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validEnvironments defines the allowed deployment environments
var validEnvironments = map[string]bool{
	"":            true,
	"development": true,
	"dev":         true,
	"staging":     true,
	"production":  true,
	"prod":        true,
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("SERVER_TIMEOUT must be positive")
	}
	if !validEnvironments[strings.ToLower(c.Server.Environment)] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	return nil
}

// IsProduction returns true if the application is running in production mode.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "production" || env == "prod"
}

// IsDevelopment returns true if the application is running in development mode.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "" || env == "development" || env == "dev"
}

// validateSecurity validates CORS and rate limit configuration
func (c *Config) validateSecurity() error {
	if err := c.validateCORS(); err != nil {
		return err
	}
	return c.validateRateLimits()
}

// validateCORS validates the configured caller origins
func (c *Config) validateCORS() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("FRONTEND_URL must name at least one origin")
	}
	for _, origin := range c.Security.CORSOrigins {
		if err := validateOrigin(origin); err != nil {
			return fmt.Errorf("FRONTEND_URL is invalid: %w", err)
		}
	}
	return nil
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS returns true when a production deployment accepts any
// origin.
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.IsProduction() && c.hasWildcardCORS()
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = 1 * time.Second
	maxRateLimitWindow   = 1 * time.Hour
)

// validateRateLimits validates rate limiting configuration bounds
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validateRemotes validates the third-party service endpoints
func (c *Config) validateRemotes() error {
	urls := []struct {
		value, field string
	}{
		{c.TMDb.BaseURL, "TMDB_BASE_URL"},
		{c.TMDb.ImageBaseURL, "TMDB_IMAGE_BASE_URL"},
		{c.OMDb.BaseURL, "OMDB_BASE_URL"},
		{c.TextGen.URL, "TEXTGEN_URL"},
	}
	for _, u := range urls {
		if err := validateHTTPURL(u.value, u.field); err != nil {
			return err
		}
	}

	if c.TMDb.CacheTTL <= 0 {
		return fmt.Errorf("TMDB_CACHE_TTL must be positive")
	}
	if c.TMDb.WarmInterval < 0 {
		return fmt.Errorf("TMDB_WARM_INTERVAL must not be negative (0 disables the warmer)")
	}
	if c.OMDb.RateLimit < 0 {
		return fmt.Errorf("OMDB_RATE_LIMIT must not be negative (0 disables the limit)")
	}

	timeouts := map[string]time.Duration{
		"TMDB_TIMEOUT":    c.TMDb.Timeout,
		"OMDB_TIMEOUT":    c.OMDb.Timeout,
		"TEXTGEN_TIMEOUT": c.TextGen.Timeout,
	}
	for name, d := range timeouts {
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	return nil
}

// Recommendation bounds
const (
	minTopN = 1
	maxTopN = 50
)

// validPerturbations defines the allowed perturbation policies
var validPerturbations = map[string]bool{
	"flat":    true,
	"entropy": true,
}

// validMoodModes defines the allowed mood modes
var validMoodModes = map[string]bool{
	MoodModeClamp:  true,
	MoodModeReject: true,
}

// validateRecommend validates recommendation engine configuration
func (c *Config) validateRecommend() error {
	if c.Recommend.TopN < minTopN || c.Recommend.TopN > maxTopN {
		return fmt.Errorf("RECOMMEND_TOP_N must be between %d and %d", minTopN, maxTopN)
	}
	if c.Recommend.ExtendedTopN < minTopN || c.Recommend.ExtendedTopN > maxTopN {
		return fmt.Errorf("RECOMMEND_EXTENDED_TOP_N must be between %d and %d", minTopN, maxTopN)
	}
	if !validPerturbations[c.Recommend.StandardPerturbation] {
		return fmt.Errorf("RECOMMEND_STANDARD_PERTURBATION must be one of: flat, entropy")
	}
	if !validPerturbations[c.Recommend.ExtendedPerturbation] {
		return fmt.Errorf("RECOMMEND_EXTENDED_PERTURBATION must be one of: flat, entropy")
	}
	if !validMoodModes[c.Recommend.MoodMode] {
		return fmt.Errorf("RECOMMEND_MOOD_MODE must be one of: clamp, reject")
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format == "" {
		return nil
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

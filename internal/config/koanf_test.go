// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// isolateEnv unsets every mapped variable for the duration of the test and
// moves into an empty directory so no config.yaml or .env file is found.
func isolateEnv(t *testing.T) string {
	t.Helper()
	for key := range envMappings {
		unsetForTest(t, strings.ToUpper(key))
	}
	unsetForTest(t, ConfigPathEnvVar)

	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

// unsetForTest removes key and restores its previous value after the test.
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset %s: %v", key, err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadDefaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 3001 || cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server = %+v", cfg.Server)
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"http://localhost:3000"}) {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.TMDb.CacheTTL != time.Hour || cfg.TMDb.BaseURL != "https://api.themoviedb.org/3" {
		t.Errorf("tmdb = %+v", cfg.TMDb)
	}
	if cfg.OMDb.BaseURL != "https://www.omdbapi.com/" || cfg.OMDb.Timeout != 5*time.Second {
		t.Errorf("omdb = %+v", cfg.OMDb)
	}
	if cfg.Recommend.TopN != 8 || cfg.Recommend.ExtendedTopN != 6 || cfg.Recommend.MoodMode != MoodModeClamp {
		t.Errorf("recommend = %+v", cfg.Recommend)
	}
	if cfg.Recommend.StandardPerturbation != "flat" || cfg.Recommend.ExtendedPerturbation != "entropy" {
		t.Errorf("perturbations = %q, %q", cfg.Recommend.StandardPerturbation, cfg.Recommend.ExtendedPerturbation)
	}
	if cfg.TMDb.APIKey != "" || cfg.OMDb.APIKey != "" || cfg.TextGen.APIKey != "" {
		t.Error("API keys must default to empty")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	isolateEnv(t)

	t.Setenv("PORT", "8080")
	t.Setenv("FRONTEND_URL", "https://moodreel.example, http://localhost:5173")
	t.Setenv("TMDB_API_KEY", "tmdb-secret")
	t.Setenv("TMDB_CACHE_TTL", "30m")
	t.Setenv("OMDB_RATE_LIMIT", "2.5")
	t.Setenv("RECOMMEND_SEED", "42")
	t.Setenv("RECOMMEND_MOOD_MODE", "reject")
	t.Setenv("DISABLE_RATE_LIMIT", "true")
	t.Setenv("LOG_CALLER", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d", cfg.Server.Port)
	}
	want := []string{"https://moodreel.example", "http://localhost:5173"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if cfg.TMDb.APIKey != "tmdb-secret" || cfg.TMDb.CacheTTL != 30*time.Minute {
		t.Errorf("tmdb = %+v", cfg.TMDb)
	}
	if cfg.OMDb.RateLimit != 2.5 {
		t.Errorf("OMDb.RateLimit = %v", cfg.OMDb.RateLimit)
	}
	if cfg.Recommend.Seed != 42 || !cfg.Recommend.RejectsOutOfRange() {
		t.Errorf("recommend = %+v", cfg.Recommend)
	}
	if !cfg.Security.RateLimitDisabled || !cfg.Logging.Caller {
		t.Error("boolean overrides not applied")
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := isolateEnv(t)

	path := filepath.Join(dir, "moodreel.yaml")
	writeFile(t, path, `
server:
  port: 9000
  environment: staging
security:
  cors_origins:
    - https://a.example
    - https://b.example
tmdb:
  warm_interval: 10m
recommend:
  top_n: 5
`)
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("RECOMMEND_TOP_N", "4")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9000 || cfg.Server.Environment != "staging" {
		t.Errorf("server = %+v", cfg.Server)
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"https://a.example", "https://b.example"}) {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.TMDb.WarmInterval != 10*time.Minute {
		t.Errorf("WarmInterval = %v", cfg.TMDb.WarmInterval)
	}
	if cfg.Recommend.TopN != 4 {
		t.Errorf("TopN = %d, environment should override the file", cfg.Recommend.TopN)
	}
}

func TestLoadDotEnvFiles(t *testing.T) {
	dir := isolateEnv(t)

	writeFile(t, filepath.Join(dir, ".env"), "OMDB_API_KEY=from-env-file\nTMDB_API_KEY=from-env-file\nTEXTGEN_MODEL=from-env-file\n")
	writeFile(t, filepath.Join(dir, ".env.local"), "TMDB_API_KEY=from-local\n")
	t.Setenv("TEXTGEN_MODEL", "from-process")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.OMDb.APIKey != "from-env-file" {
		t.Errorf("OMDb.APIKey = %q", cfg.OMDb.APIKey)
	}
	if cfg.TMDb.APIKey != "from-local" {
		t.Errorf("TMDb.APIKey = %q, .env.local should win over .env", cfg.TMDb.APIKey)
	}
	if cfg.TextGen.Model != "from-process" {
		t.Errorf("TextGen.Model = %q, the process environment should win", cfg.TextGen.Model)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key, value, wantErr string
	}{
		{"RECOMMEND_MOOD_MODE", "strict", "RECOMMEND_MOOD_MODE"},
		{"PORT", "70000", "PORT"},
		{"LOG_LEVEL", "verbose", "LOG_LEVEL"},
		{"TMDB_BASE_URL", "ftp://tmdb", "TMDB_BASE_URL"},
		{"FRONTEND_URL", "localhost", "FRONTEND_URL"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			isolateEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		want string
	}{
		{"PORT", "server.port"},
		{"FRONTEND_URL", "security.cors_origins"},
		{"TMDB_API_KEY", "tmdb.api_key"},
		{"omdb_rate_limit", "omdb.rate_limit"},
		{"RECOMMEND_EXTENDED_TOP_N", "recommend.extended_top_n"},
		{"PATH", ""},
		{"HOME", ""},
	}
	for _, tt := range tests {
		if got := envTransformFunc(tt.key); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

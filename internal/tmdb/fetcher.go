// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package tmdb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/moodreel/internal/cache"
	"github.com/tomtom215/moodreel/internal/catalog"
	"github.com/tomtom215/moodreel/internal/metrics"
	"github.com/tomtom215/moodreel/internal/remote"
)

// BreakerName labels the TMDb circuit breaker in logs and metrics.
const BreakerName = "tmdb-api"

// DefaultDescription replaces an empty overview.
const DefaultDescription = "A compelling film from TMDb."

// DefaultDirector is used for every remote film; the popular list carries no
// credits.
const DefaultDirector = "Various"

// Config holds TMDb settings.
type Config struct {
	APIKey       string
	BaseURL      string
	ImageBaseURL string
	PosterSize   string
	Language     string
	Page         int
	MaxFilms     int
	Timeout      time.Duration
	CacheTTL     time.Duration
}

// DefaultConfig returns the public TMDb endpoints with a one-hour cache.
func DefaultConfig() Config {
	return Config{
		BaseURL:      "https://api.themoviedb.org/3",
		ImageBaseURL: "https://image.tmdb.org/t/p/",
		PosterSize:   "w300",
		Language:     "en-US",
		Page:         1,
		MaxFilms:     20,
		Timeout:      remote.DefaultTimeout,
		CacheTTL:     time.Hour,
	}
}

// Fetcher loads the popular list and caches the mapped films.
type Fetcher struct {
	cfg      Config
	client   *remote.Client
	cache    cache.Cacher
	owned    *cache.Cache
	cacheKey string
	group    singleflight.Group
	logger   zerolog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithClient replaces the default remote client.
func WithClient(c *remote.Client) Option {
	return func(f *Fetcher) { f.client = c }
}

// WithCache stores the list in c instead of a private cache. The caller
// owns c and its TTL.
func WithCache(c cache.Cacher) Option {
	return func(f *Fetcher) { f.cache = c }
}

// NewFetcher creates a Fetcher.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewFetcher(cfg Config, logger zerolog.Logger, opts ...Option) *Fetcher {
	f := &Fetcher{
		cfg:    cfg,
		logger: logger.With().Str("component", "tmdb").Logger(),
		cacheKey: cache.GenerateKey("tmdb:popular", struct {
			Language string `json:"language"`
			Page     int    `json:"page"`
		}{cfg.Language, cfg.Page}),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = remote.NewClient(metrics.ServiceTMDb,
			remote.WithTimeout(cfg.Timeout),
			remote.WithBreaker(remote.NewBreaker(BreakerName, remote.DefaultBreakerConfig())),
			remote.WithLogger(f.logger),
		)
	}
	if f.cache == nil {
		f.owned = cache.New(cfg.CacheTTL, cache.WithMetrics(metrics.CacheTMDbCatalog))
		f.cache = f.owned
	}
	return f
}

// Close releases the private cache, if any.
func (f *Fetcher) Close() {
	if f.owned != nil {
		f.owned.Close()
	}
}

// FetchRemoteCatalog returns the cached popular list, refreshing it when it
// has expired. Failures are logged and produce an empty slice.
func (f *Fetcher) FetchRemoteCatalog(ctx context.Context) []catalog.Film {
	if films, ok := f.cached(); ok {
		return films
	}

	result, err, shared := f.group.Do(f.cacheKey, func() (interface{}, error) {
		if films, ok := f.cached(); ok {
			return films, nil
		}
		// Shared by every waiter, so it must not end with the first caller.
		return f.Refresh(context.WithoutCancel(ctx))
	})
	if err != nil {
		f.logger.Warn().Err(err).Msg("TMDb catalog unavailable, continuing without remote films")
		return []catalog.Film{}
	}

	films := result.([]catalog.Film)
	f.logger.Debug().Int("films", len(films)).Bool("shared", shared).Msg("TMDb catalog loaded")
	return films
}

// Refresh fetches the list now and replaces the cached copy on success.
func (f *Fetcher) Refresh(ctx context.Context) ([]catalog.Film, error) {
	films, err := f.fetch(ctx)
	if err != nil {
		return nil, err
	}
	f.cache.Set(f.cacheKey, films)
	return films, nil
}

func (f *Fetcher) cached() ([]catalog.Film, bool) {
	v, ok := f.cache.Get(f.cacheKey)
	if !ok {
		return nil, false
	}
	films, ok := v.([]catalog.Film)
	return films, ok
}

func (f *Fetcher) fetch(ctx context.Context) ([]catalog.Film, error) {
	if f.cfg.APIKey == "" {
		metrics.RecordRemoteCall(metrics.ServiceTMDb, metrics.OutcomeSkipped, 0)
		return nil, fmt.Errorf("tmdb: %w", remote.ErrMissingCredential)
	}

	params := url.Values{}
	params.Set("api_key", f.cfg.APIKey)
	params.Set("language", f.cfg.Language)
	params.Set("page", strconv.Itoa(f.cfg.Page))
	reqURL := fmt.Sprintf("%s/movie/popular?%s", strings.TrimRight(f.cfg.BaseURL, "/"), params.Encode())

	var resp PopularResponse
	if err := f.client.GetJSON(ctx, reqURL, &resp); err != nil {
		return nil, fmt.Errorf("tmdb popular: %w", err)
	}

	return f.mapResults(resp.Results), nil
}

// mapResults keeps entries with a poster and a parseable release date, up to
// MaxFilms, in response order.
func (f *Fetcher) mapResults(results []MovieResult) []catalog.Film {
	films := make([]catalog.Film, 0, min(len(results), f.cfg.MaxFilms))
	for i := range results {
		if len(films) >= f.cfg.MaxFilms {
			break
		}
		r := &results[i]
		if r.PosterPath == "" || r.ReleaseDate == "" || strings.TrimSpace(r.Title) == "" {
			continue
		}
		year, ok := releaseYear(r.ReleaseDate)
		if !ok {
			f.logger.Debug().Str("title", r.Title).Str("release_date", r.ReleaseDate).Msg("skipping film with unparseable release date")
			continue
		}

		description := r.Overview
		if strings.TrimSpace(description) == "" {
			description = DefaultDescription
		}

		details := catalog.NewDetails(r.Title, description, year, DefaultDirector)
		details.Poster = f.cfg.ImageBaseURL + f.cfg.PosterSize + r.PosterPath
		details.Source = catalog.SourceTMDb
		details.TMDbID = r.ID

		films = append(films, catalog.TagScoredFilm{
			Details: details,
			Tags:    catalog.NewTagSet(TagForVote(r.VoteAverage)),
		})
	}
	return films
}

// TagForVote derives the single tag a remote film carries from its average
// vote.
func TagForVote(vote float64) catalog.Tag {
	switch {
	case vote > 7:
		return catalog.Challenge
	case vote > 6:
		return catalog.ComfortTag
	default:
		return catalog.Light
	}
}

func releaseYear(date string) (int, bool) {
	if t, err := time.Parse("2006-01-02", date); err == nil {
		return t.Year(), true
	}
	if len(date) >= 4 {
		if y, err := strconv.Atoi(date[:4]); err == nil {
			return y, true
		}
	}
	return 0, false
}

// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package poster

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/moodreel/internal/cache"
	"github.com/tomtom215/moodreel/internal/catalog"
	"github.com/tomtom215/moodreel/internal/metrics"
	"github.com/tomtom215/moodreel/internal/remote"
)

// BreakerName labels the OMDb circuit breaker in logs and metrics.
const BreakerName = "omdb-api"

// errNoPoster marks an OMDb answer without a usable poster.
var errNoPoster = errors.New("no poster available")

// Config holds OMDb settings.
type Config struct {
	APIKey          string
	BaseURL         string
	PlaceholderBase string
	Timeout         time.Duration

	// RateLimit caps outbound requests per second. Zero disables the limit.
	RateLimit float64
	Burst     int

	// Concurrency bounds the ResolveAll fan-out.
	Concurrency int
}

// DefaultConfig returns the public OMDb endpoint with a polite outbound rate.
func DefaultConfig() Config {
	return Config{
		BaseURL:         "https://www.omdbapi.com/",
		PlaceholderBase: "https://via.placeholder.com/300x450?text=",
		Timeout:         remote.DefaultTimeout,
		RateLimit:       10,
		Burst:           10,
		Concurrency:     8,
	}
}

// Resolver looks up posters and memoizes every answer.
type Resolver struct {
	cfg    Config
	client *remote.Client
	memo   *cache.Memo[string]
	logger zerolog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithClient replaces the default remote client.
func WithClient(c *remote.Client) Option {
	return func(r *Resolver) { r.client = c }
}

// NewResolver creates a Resolver with an empty memo.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewResolver(cfg Config, logger zerolog.Logger, opts ...Option) *Resolver {
	r := &Resolver{
		cfg:    cfg,
		memo:   cache.NewMemo[string](metrics.CachePoster),
		logger: logger.With().Str("component", "poster").Logger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.client == nil {
		r.client = remote.NewClient(metrics.ServiceOMDb,
			remote.WithTimeout(cfg.Timeout),
			remote.WithRateLimit(cfg.RateLimit, cfg.Burst),
			remote.WithBreaker(remote.NewBreaker(BreakerName, remote.DefaultBreakerConfig())),
			remote.WithLogger(r.logger),
		)
	}
	if r.cfg.Concurrency < 1 {
		r.cfg.Concurrency = 1
	}
	return r
}

// Key returns the memo key for a film.
func Key(title string, year int) string {
	return title + "|" + strconv.Itoa(year)
}

// componentEscaper turns url.QueryEscape output into encodeURIComponent
// output: spaces as %20 and !'()* left literal.
var componentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// Placeholder returns the deterministic fallback image URL for title.
func Placeholder(base, title string) string {
	return base + componentEscaper.Replace(url.QueryEscape(title))
}

// Len returns the number of memoized answers.
func (r *Resolver) Len() int {
	return r.memo.Len()
}

// Resolve returns the poster URL for title and year. The first caller for a
// key performs the lookup; the answer, including a placeholder, is reused
// for the life of the Resolver.
func (r *Resolver) Resolve(ctx context.Context, title string, year int) string {
	poster, _ := r.memo.GetOrLoad(Key(title, year), func() string {
		// Detached from the caller so a dropped request cannot cache a placeholder.
		return r.lookup(context.WithoutCancel(ctx), title, year)
	})
	return poster
}

// ResolveAll fills in Poster for every film that lacks an inline one. The
// result has the same length and order as films; the input is not modified.
func (r *Resolver) ResolveAll(ctx context.Context, films []catalog.Details) []catalog.Details {
	out := make([]catalog.Details, len(films))
	copy(out, films)

	var g errgroup.Group
	g.SetLimit(r.cfg.Concurrency)
	for i := range out {
		if out[i].HasInlinePoster() {
			continue
		}
		g.Go(func() error {
			out[i].Poster = r.Resolve(ctx, out[i].Title, out[i].Year)
			return nil
		})
	}
	_ = g.Wait()

	return out
}

func (r *Resolver) lookup(ctx context.Context, title string, year int) string {
	poster, err := r.fetch(ctx, title, year)
	if err != nil {
		event := r.logger.Warn()
		if errors.Is(err, errNoPoster) {
			event = r.logger.Debug()
		}
		event.Err(err).Str("title", title).Int("year", year).Msg("using placeholder poster")
		return Placeholder(r.cfg.PlaceholderBase, title)
	}
	return poster
}

func (r *Resolver) fetch(ctx context.Context, title string, year int) (string, error) {
	if r.cfg.APIKey == "" {
		metrics.RecordRemoteCall(metrics.ServiceOMDb, metrics.OutcomeSkipped, 0)
		return "", fmt.Errorf("omdb: %w", remote.ErrMissingCredential)
	}

	params := url.Values{}
	params.Set("apikey", r.cfg.APIKey)
	params.Set("t", title)
	params.Set("y", strconv.Itoa(year))
	params.Set("type", "movie")
	reqURL := r.cfg.BaseURL + "?" + params.Encode()

	var resp TitleResponse
	if err := r.client.GetJSON(ctx, reqURL, &resp); err != nil {
		return "", fmt.Errorf("omdb lookup: %w", err)
	}
	if !resp.UsablePoster() {
		if resp.Error != "" {
			return "", fmt.Errorf("%w: %s", errNoPoster, resp.Error)
		}
		return "", errNoPoster
	}
	return resp.Poster, nil
}

// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/moodreel/internal/logging"
	"github.com/tomtom215/moodreel/internal/metrics"
)

// ErrMissingCredential is returned when a service is called without its API key.
var ErrMissingCredential = errors.New("api credential not configured")

// DefaultTimeout bounds every outbound call.
const DefaultTimeout = 5 * time.Second

// maxErrorBodySize limits how much of a failed response body is kept.
const maxErrorBodySize = 64 * 1024

// StatusError reports a non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Body)
}

// Client performs JSON calls to one third-party service with a per-call
// timeout, an optional outbound rate limit and a circuit breaker.
type Client struct {
	service string
	http    *http.Client
	timeout time.Duration
	breaker *Breaker
	limiter *rate.Limiter
	logger  zerolog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-call timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithBreaker routes calls through b.
func WithBreaker(b *Breaker) ClientOption {
	return func(c *Client) { c.breaker = b }
}

// WithRateLimit allows rps calls per second with the given burst. A
// non-positive rps leaves calls unlimited.
func WithRateLimit(rps float64, burst int) ClientOption {
	return func(c *Client) {
		if rps <= 0 {
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithLogger sets the client logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func WithLogger(l zerolog.Logger) ClientOption {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a client for service, which labels metrics and logs.
func NewClient(service string, opts ...ClientOption) *Client {
	c := &Client{
		service: service,
		timeout: DefaultTimeout,
		logger:  logging.WithComponent(service),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: c.timeout}
	}
	return c
}

// GetJSON issues a GET to reqURL and decodes the JSON response into out.
func (c *Client) GetJSON(ctx context.Context, reqURL string, out interface{}) error {
	return c.do(ctx, http.MethodGet, reqURL, nil, nil, out)
}

// PostJSON encodes body as JSON, POSTs it to reqURL with extra headers and
// decodes the JSON response into out.
func (c *Client) PostJSON(ctx context.Context, reqURL string, headers map[string]string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	return c.do(ctx, http.MethodPost, reqURL, headers, payload, out)
}

func (c *Client) do(ctx context.Context, method, reqURL string, headers map[string]string, payload []byte, out interface{}) error {
	start := time.Now()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			metrics.RecordRemoteCall(c.service, metrics.OutcomeRejected, time.Since(start))
			return fmt.Errorf("rate limit wait: %w", err)
		}
	}

	call := func() (struct{}, error) {
		return struct{}{}, c.roundTrip(ctx, method, reqURL, headers, payload, out)
	}

	var err error
	if c.breaker != nil {
		_, err = Do(c.breaker, call)
	} else {
		_, err = call()
	}

	outcome := metrics.OutcomeSuccess
	switch {
	case err == nil:
	case IsRejected(err):
		outcome = metrics.OutcomeRejected
	default:
		outcome = metrics.OutcomeFailure
	}
	metrics.RecordRemoteCall(c.service, outcome, time.Since(start))

	if err != nil {
		c.logger.Debug().
			Str("method", method).
			Str("url", logging.RedactURL(reqURL)).
			Err(err).
			Msg("remote call failed")
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, reqURL string, headers map[string]string, payload []byte, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader = http.NoBody
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("create request failed: %w", redactURLError(err))
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", redactURLError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body := redactSecrets(string(readBodyForError(resp.Body)), reqURL)
		return &StatusError{StatusCode: resp.StatusCode, Body: body}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// redactURLError masks credential query parameters in the URL carried by a
// *url.Error. Transport errors embed the full request URL in Error().
func redactURLError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		ue.URL = logging.RedactURL(ue.URL)
	}
	return err
}

// redactSecrets replaces every credential value sent in reqURL's query with
// "***" wherever it appears in text. Some APIs echo the request back in
// their error bodies.
func redactSecrets(text, reqURL string) string {
	u, err := url.Parse(reqURL)
	if err != nil {
		return text
	}
	for name, values := range u.Query() {
		if !logging.IsSensitiveParam(name) {
			continue
		}
		for _, v := range values {
			if v != "" {
				text = strings.ReplaceAll(text, v, "***")
			}
		}
	}
	return text
}

// readBodyForError reads at most maxErrorBodySize bytes and marks truncation.
func readBodyForError(r io.Reader) []byte {
	limited := io.LimitReader(r, maxErrorBodySize+1)
	body, err := io.ReadAll(limited)
	if err != nil && len(body) == 0 {
		return []byte("(unable to read response body)")
	}
	if len(body) > maxErrorBodySize {
		return append(body[:maxErrorBodySize], []byte("\n... (truncated)")...)
	}
	return body
}

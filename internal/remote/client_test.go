// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package remote

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

func TestClientGetJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("Accept = %q", r.Header.Get("Accept"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":"Stalker","year":1979}`))
	}))
	defer server.Close()

	c := NewClient("test", WithLogger(zerolog.Nop()))
	var out struct {
		Title string `json:"title"`
		Year  int    `json:"year"`
	}
	if err := c.GetJSON(context.Background(), server.URL, &out); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if out.Title != "Stalker" || out.Year != 1979 {
		t.Errorf("decoded %+v", out)
	}
}

func TestClientStatusError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status_message":"Invalid API key"}`))
	}))
	defer server.Close()

	c := NewClient("test", WithLogger(zerolog.Nop()))
	err := c.GetJSON(context.Background(), server.URL, &struct{}{})

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d", statusErr.StatusCode)
	}
	if !strings.Contains(statusErr.Body, "Invalid API key") {
		t.Errorf("Body = %q", statusErr.Body)
	}
}

func TestClientMalformedPayload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	c := NewClient("test", WithLogger(zerolog.Nop()))
	err := c.GetJSON(context.Background(), server.URL, &struct{}{})
	if err == nil || !strings.Contains(err.Error(), "decode") {
		t.Errorf("err = %v, want decode error", err)
	}
}

func TestClientTimeout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	c := NewClient("test", WithTimeout(50*time.Millisecond), WithLogger(zerolog.Nop()))
	start := time.Now()
	if err := c.GetJSON(context.Background(), server.URL, nil); err == nil {
		t.Fatal("expected timeout error")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("call took %v, timeout not applied", elapsed)
	}
}

func TestClientPostJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer k" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}
		var in map[string]string
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["prompt"]})
	}))
	defer server.Close()

	c := NewClient("test", WithLogger(zerolog.Nop()))
	var out map[string]string
	err := c.PostJSON(context.Background(), server.URL,
		map[string]string{"Authorization": "Bearer k"},
		map[string]string{"prompt": "hello"}, &out)
	if err != nil {
		t.Fatalf("PostJSON: %v", err)
	}
	if out["echo"] != "hello" {
		t.Errorf("echo = %q", out["echo"])
	}
}

func TestClientRateLimitHonorsContext(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := NewClient("test", WithRateLimit(0.001, 1), WithLogger(zerolog.Nop()))
	if err := c.GetJSON(context.Background(), server.URL, nil); err != nil {
		t.Fatalf("first call: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := c.GetJSON(ctx, server.URL, nil); err == nil {
		t.Fatal("second call should fail waiting for the limiter")
	}
	if hits.Load() != 1 {
		t.Errorf("server hits = %d, want 1", hits.Load())
	}
}

func TestClientBreakerOpens(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := DefaultBreakerConfig()
	cfg.MinRequests = 3
	breaker := NewBreaker("test-open", cfg)
	c := NewClient("test", WithBreaker(breaker), WithLogger(zerolog.Nop()))

	for i := 0; i < 3; i++ {
		_ = c.GetJSON(context.Background(), server.URL, nil)
	}
	if breaker.State() != "open" {
		t.Fatalf("breaker state = %s, want open", breaker.State())
	}

	err := c.GetJSON(context.Background(), server.URL, nil)
	if !IsRejected(err) {
		t.Errorf("err = %v, want rejection", err)
	}
	if hits.Load() != 3 {
		t.Errorf("server hits = %d, want 3", hits.Load())
	}
}

func TestReadBodyForError(t *testing.T) {
	t.Parallel()

	small := readBodyForError(strings.NewReader("oops"))
	if string(small) != "oops" {
		t.Errorf("small body = %q", small)
	}

	exact := readBodyForError(strings.NewReader(strings.Repeat("x", maxErrorBodySize)))
	if len(exact) != maxErrorBodySize {
		t.Errorf("exact body length = %d", len(exact))
	}

	large := readBodyForError(strings.NewReader(strings.Repeat("x", maxErrorBodySize*2)))
	if len(large) != maxErrorBodySize+len("\n... (truncated)") {
		t.Errorf("large body length = %d", len(large))
	}
	if !strings.HasSuffix(string(large), "(truncated)") {
		t.Error("large body missing truncation marker")
	}
}

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("dial tcp: connection refused")
}

func TestClientErrorsRedactCredentials(t *testing.T) {
	t.Parallel()

	const secret = "SUPERSECRETKEY123456"

	closed := httptest.NewServer(http.NotFoundHandler())
	closedURL := closed.URL
	closed.Close()

	echo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid key ` + r.URL.Query().Get("apikey") + `"}`))
	}))
	defer echo.Close()

	tests := []struct {
		name    string
		baseURL string
		opts    []ClientOption
	}{
		{"closed port", closedURL, nil},
		{"transport failure", "http://tmdb.invalid", []ClientOption{WithHTTPClient(&http.Client{Transport: failingTransport{}})}},
		{"status body echoes key", echo.URL, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var logs syncBuffer
			opts := append([]ClientOption{WithLogger(zerolog.New(&logs).Level(zerolog.DebugLevel))}, tt.opts...)
			c := NewClient("test", opts...)

			reqURL := tt.baseURL + "/movie/popular?api_key=" + secret + "&apikey=" + secret + "&page=1"
			err := c.GetJSON(context.Background(), reqURL, &struct{}{})
			if err == nil {
				t.Fatal("expected error")
			}
			if strings.Contains(err.Error(), secret) {
				t.Errorf("error leaks credential: %v", err)
			}
			if strings.Contains(logs.String(), secret) {
				t.Errorf("log leaks credential: %s", logs.String())
			}
			if tt.name != "status body echoes key" && !strings.Contains(err.Error(), "api_key=%2A%2A%2A") {
				t.Errorf("error lost the redacted URL: %v", err)
			}
		})
	}
}

// syncBuffer is a bytes.Buffer safe for concurrent writers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

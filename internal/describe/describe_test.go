// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package describe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/tomtom215/moodreel/internal/metrics"
	"github.com/tomtom215/moodreel/internal/mood"
	"github.com/tomtom215/moodreel/internal/remote"
)

func TestTemplated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    mood.Vector
		axes []mood.Axis
		want string
	}{
		{
			name: "heavy classic solitude",
			m:    mood.Vector{mood.Weight: 90, mood.Pace: 10, mood.Comfort: 5, mood.Reality: 80, mood.Era: 10, mood.Social: 20},
			axes: mood.StandardAxes,
			want: "Tonight calls for something emotionally heavy, slow and contemplative, challenging, rooted in reality, classic, and intimate and solitary.",
		},
		{
			name: "neutral",
			m:    mood.Vector{},
			axes: []mood.Axis{mood.Weight, mood.Era},
			want: "Tonight calls for something moderately weighty and timeless.",
		},
		{
			name: "single axis",
			m:    mood.Vector{mood.Tone: 95},
			axes: []mood.Axis{mood.Tone},
			want: "Tonight calls for something uplifting.",
		},
		{
			name: "thresholds are mid",
			m:    mood.Vector{mood.Pace: 40, mood.Comfort: 60},
			axes: []mood.Axis{mood.Pace, mood.Comfort},
			want: "Tonight calls for something evenly paced and gently engaging.",
		},
		{
			name: "no known axes",
			m:    mood.Vector{},
			axes: []mood.Axis{"unknown"},
			want: "Tonight calls for something unexpected.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Templated(tt.m, tt.axes); got != tt.want {
				t.Errorf("Templated() =\n  %q\nwant\n  %q", got, tt.want)
			}
		})
	}
}

func TestFallbackSentence(t *testing.T) {
	t.Parallel()

	if got := FallbackSentence(nil); got != pool[0] {
		t.Errorf("nil rand = %q", got)
	}
	if got := FallbackSentence(func() float64 { return 0.999 }); got != pool[len(pool)-1] {
		t.Errorf("high rand = %q", got)
	}
	if got := FallbackSentence(func() float64 { return 1.5 }); got != pool[0] {
		t.Errorf("out-of-range rand = %q", got)
	}
	for _, s := range Pool() {
		if strings.TrimSpace(s) == "" {
			t.Error("pool holds an empty sentence")
		}
	}
}

func TestPromptEmbedsAxes(t *testing.T) {
	t.Parallel()

	p := Prompt(mood.Vector{mood.Weight: 90, mood.Dialogue: 12.5}, mood.ExtendedAxes)
	for _, want := range []string{"weight (light to heavy): 90", "dialogue (visual to talkative): 12.5", "pace (slow to fast): 50"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q:\n%s", want, p)
		}
	}
}

func newTextGenServer(t *testing.T, status int, response string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path != "/api/generate" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer gen-key" {
			t.Errorf("Authorization = %q", got)
		}
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		if req.Stream || req.Model != "test-model" || !strings.Contains(req.Prompt, "weight") {
			t.Errorf("unexpected request %+v", req)
		}
		w.WriteHeader(status)
		if status == http.StatusOK {
			_ = json.NewEncoder(w).Encode(generateResponse{Response: response, Done: true})
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func newTestGenerator(url, key string) *Generator {
	cfg := DefaultGeneratorConfig()
	cfg.URL = url + "/"
	cfg.APIKey = key
	cfg.Model = "test-model"
	return NewGenerator(cfg, zerolog.Nop(),
		WithGeneratorClient(remote.NewClient("textgen-test", remote.WithLogger(zerolog.Nop()))))
}

func TestServiceDescribe(t *testing.T) {
	t.Parallel()

	heavy := mood.Vector{mood.Weight: 90}
	tests := []struct {
		name     string
		status   int
		response string
		key      string
		noGen    bool
		want     string
		wantMode Mode
		wantHits int32
	}{
		{"generated", http.StatusOK, "  \"A heavy heart seeks weighty cinema.\"\n", "gen-key", false, "A heavy heart seeks weighty cinema.", ModeGenerated, 1},
		{"remote failure", http.StatusBadGateway, "", "gen-key", false, pool[2], ModePool, 1},
		{"empty response", http.StatusOK, "   ", "gen-key", false, pool[2], ModePool, 1},
		{"no key", http.StatusOK, "unused", "", false, Templated(heavy, mood.StandardAxes), ModeTemplated, 0},
		{"no generator", http.StatusOK, "unused", "", true, Templated(heavy, mood.StandardAxes), ModeTemplated, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, hits := newTextGenServer(t, tt.status, tt.response)
			var gen *Generator
			if !tt.noGen {
				gen = newTestGenerator(srv.URL, tt.key)
			}
			svc := NewService(gen, func() float64 { return 0.5 }, zerolog.Nop())

			got, mode := svc.Describe(context.Background(), heavy)
			if got != tt.want || mode != tt.wantMode {
				t.Errorf("Describe() = %q (%s), want %q (%s)", got, mode, tt.want, tt.wantMode)
			}
			if hits.Load() != tt.wantHits {
				t.Errorf("remote calls = %d, want %d", hits.Load(), tt.wantHits)
			}
		})
	}
}

func TestServiceDescribeExtendedAxes(t *testing.T) {
	t.Parallel()

	svc := NewService(nil, nil, zerolog.Nop())
	got, _ := svc.Describe(context.Background(), mood.Vector{mood.Tone: 10})
	if !strings.Contains(got, "dark") || !strings.Contains(got, "balanced between image and word") {
		t.Errorf("extended description = %q", got)
	}
}

func TestServiceDescribeMetrics(t *testing.T) {
	t.Parallel()

	counter := metrics.DescriptionsTotal.WithLabelValues(string(ModeTemplated))
	before := testutil.ToFloat64(counter)

	svc := NewService(nil, nil, zerolog.Nop())
	svc.Describe(context.Background(), mood.Vector{})

	if got := testutil.ToFloat64(counter) - before; got < 1 {
		t.Errorf("templated counter grew by %v, want at least 1", got)
	}
}

// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/generate-films", "200"))

	RecordAPIRequest("POST", "/api/generate-films", "200", 25*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/generate-films", "200"))
	if after != before+1 {
		t.Errorf("api_requests_total = %v, want %v", after, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("after inc = %v, want %v", got, before+1)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after dec = %v, want %v", got, before)
	}
}

func TestRecordCacheAccess(t *testing.T) {
	hits := testutil.ToFloat64(CacheHits.WithLabelValues(CachePoster))
	misses := testutil.ToFloat64(CacheMisses.WithLabelValues(CachePoster))

	RecordCacheAccess(CachePoster, true)
	RecordCacheAccess(CachePoster, false)
	RecordCacheAccess(CachePoster, false)

	if got := testutil.ToFloat64(CacheHits.WithLabelValues(CachePoster)); got != hits+1 {
		t.Errorf("hits = %v, want %v", got, hits+1)
	}
	if got := testutil.ToFloat64(CacheMisses.WithLabelValues(CachePoster)); got != misses+2 {
		t.Errorf("misses = %v, want %v", got, misses+2)
	}
}

func TestRecordRemoteCall(t *testing.T) {
	tests := []struct {
		name    string
		service string
		outcome string
	}{
		{"tmdb success", ServiceTMDb, OutcomeSuccess},
		{"omdb failure", ServiceOMDb, OutcomeFailure},
		{"textgen skipped", ServiceTextGen, OutcomeSkipped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := RemoteRequestsTotal.WithLabelValues(tt.service, tt.outcome)
			before := testutil.ToFloat64(counter)

			RecordRemoteCall(tt.service, tt.outcome, 10*time.Millisecond)

			if got := testutil.ToFloat64(counter); got != before+1 {
				t.Errorf("remote_requests_total = %v, want %v", got, before+1)
			}
		})
	}
}

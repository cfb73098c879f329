// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/moodreel/internal/logging"
	"github.com/tomtom215/moodreel/internal/mood"
	"github.com/tomtom215/moodreel/internal/validation"
)

// maxBodyBytes bounds request bodies. A mood vector is a handful of numbers.
const maxBodyBytes = 64 << 10

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + MsgInternalError + `"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// decodeJSON decodes a bounded request body into dst. An empty body yields
// errEmptyBody.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errEmptyBody
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return err
	}
	return nil
}

// readMood decodes a request, checks the mood field and applies the mood
// mode. It writes the 400 response itself and reports false when the
// handler should stop.
func (h *Handler) readMood(w http.ResponseWriter, r *http.Request, req interface{}, field *mood.Vector) (mood.Vector, bool) {
	if err := decodeJSON(w, r, req); err != nil && !errors.Is(err, errEmptyBody) {
		h.requestLogger(r.Context()).Debug().
			Str("error", sanitizeLogValue(err.Error())).
			Msg("Rejected undecodable request body")
		respondError(w, http.StatusBadRequest, MsgInvalidBody)
		return nil, false
	}

	if verr := validation.ValidateStruct(req); verr != nil {
		if verr.Failed("mood", "required") {
			respondError(w, http.StatusBadRequest, MsgMoodRequired)
			return nil, false
		}
		respondError(w, http.StatusBadRequest, verr.Error())
		return nil, false
	}

	m := *field
	if h.rejectOutOfRange {
		if verr := validation.ValidateVar(m, validation.MoodRangeTag, "mood"); verr != nil {
			respondError(w, http.StatusBadRequest, verr.Error())
			return nil, false
		}
		return m, true
	}
	return m.Clamp(), true
}

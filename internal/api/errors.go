// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package api

import "errors"

// Client-facing error messages.
const (
	MsgMoodRequired   = "Mood data is required"
	MsgInvalidBody    = "Invalid request body"
	MsgNotFound       = "Endpoint not found"
	MsgInternalError  = "Internal server error"
	MsgTooManyRequest = "Too many requests"
)

// errEmptyBody marks a request without a body. It is treated as an empty
// JSON object, so the handler reports the missing mood rather than a
// decode failure.
var errEmptyBody = errors.New("empty request body")

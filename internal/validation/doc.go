// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

// Package validation provides request validation using go-playground/validator v10.
//
// It holds a thread-safe singleton validator that reports fields by their
// JSON names and knows one custom tag, moodaxis, which accepts the eight
// mood axis names. MoodRangeTag combines it with a [0, 100] range check for
// the strict mood mode.
//
//	type GenerateFilmsRequest struct {
//	    Mood     mood.Vector `json:"mood" validate:"required"`
//	    HasImage bool        `json:"hasImage"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    if verr.Failed("mood", "required") {
//	        // 400 Mood data is required
//	    }
//	}
//
//	if verr := validation.ValidateVar(req.Mood, validation.MoodRangeTag, "mood"); verr != nil {
//	    // 400 with verr.Error(), e.g. "mood[weight] must be less than or equal to 100"
//	}
package validation

// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package describe

import (
	"strings"

	"github.com/tomtom215/moodreel/internal/mood"
)

// phrases holds the low, mid and high wording for each axis.
var phrases = map[mood.Axis][3]string{
	mood.Weight:   {"light-hearted", "moderately weighty", "emotionally heavy"},
	mood.Pace:     {"slow and contemplative", "evenly paced", "fast-moving"},
	mood.Comfort:  {"challenging", "gently engaging", "comforting"},
	mood.Reality:  {"dreamlike", "half-grounded", "rooted in reality"},
	mood.Era:      {"classic", "timeless", "contemporary"},
	mood.Social:   {"intimate and solitary", "quietly connected", "warm and social"},
	mood.Tone:     {"dark", "bittersweet", "uplifting"},
	mood.Dialogue: {"visual", "balanced between image and word", "dialogue-driven"},
}

const templatedLead = "Tonight calls for something "

// Phrase returns the wording for axis at value v, or "" for an unknown axis.
func Phrase(axis mood.Axis, v float64) string {
	p, ok := phrases[axis]
	if !ok {
		return ""
	}
	return p[mood.Classify(v)]
}

// Templated describes m over axes in a single sentence. Axes missing from m
// read as neutral.
func Templated(m mood.Vector, axes []mood.Axis) string {
	parts := make([]string, 0, len(axes))
	for _, axis := range axes {
		if p := Phrase(axis, m.Get(axis)); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return templatedLead + "unexpected."
	}
	return templatedLead + joinList(parts) + "."
}

// joinList joins items as an English list with a serial comma.
func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

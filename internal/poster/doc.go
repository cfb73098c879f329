// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

// Package poster resolves film poster URLs through the OMDb API.
//
// Every answer is memoized for the life of the process under the key
// "title|year", including the placeholder returned when OMDb has no poster,
// the key is missing or the call fails. Concurrent misses for the same key
// share one request. Resolution never fails and never returns an empty URL.
package poster

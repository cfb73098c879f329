// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package poster

// omdbNotAvailable is OMDb's marker for a missing field.
const omdbNotAvailable = "N/A"

// TitleResponse is the subset of an OMDb title lookup the resolver reads.
type TitleResponse struct {
	Title    string `json:"Title"`
	Year     string `json:"Year"`
	Poster   string `json:"Poster"`
	IMDbID   string `json:"imdbID"`
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

// Found reports whether OMDb matched the title.
func (r *TitleResponse) Found() bool {
	return r.Response != "False"
}

// UsablePoster reports whether the response carries a poster URL.
func (r *TitleResponse) UsablePoster() bool {
	return r.Found() && r.Poster != "" && r.Poster != omdbNotAvailable
}

// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package catalog

import (
	"sort"
	"strconv"

	"github.com/gosimple/slug"

	"github.com/tomtom215/moodreel/internal/mood"
)

// Source values for Details.Source.
const (
	SourceStatic = ""
	SourceTMDb   = "tmdb"
)

// Details is the public part of a film, the shape returned to API callers.
type Details struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Year        int    `json:"year"`
	Director    string `json:"director"`
	Poster      string `json:"poster,omitempty"`
	Source      string `json:"source,omitempty"`
	TMDbID      int    `json:"tmdbId,omitempty"`
	Slug        string `json:"slug"`
}

// NewDetails builds Details and derives the slug from title and year.
func NewDetails(title, description string, year int, director string) Details {
	return Details{
		Title:       title,
		Description: description,
		Year:        year,
		Director:    director,
		Slug:        slug.Make(title + " " + strconv.Itoa(year)),
	}
}

// HasInlinePoster reports whether the film already carries a poster from its
// source and so skips poster resolution.
func (d Details) HasInlinePoster() bool {
	return d.Poster != "" && d.Source == SourceTMDb
}

// Film is a catalog entry. It is implemented only by TagScoredFilm and
// DimensionScoredFilm; scorers switch on the concrete type.
type Film interface {
	Info() Details
	sealed()
}

// TagScoredFilm is scored by bipolar tag thresholds.
type TagScoredFilm struct {
	Details
	Tags TagSet
}

// Info returns the film's public details.
func (f TagScoredFilm) Info() Details { return f.Details }
func (TagScoredFilm) sealed()         {}

// DimensionScoredFilm is scored by distance to its own mood position.
type DimensionScoredFilm struct {
	Details
	Position mood.Vector
}

// Info returns the film's public details.
func (f DimensionScoredFilm) Info() Details { return f.Details }
func (DimensionScoredFilm) sealed()         {}

// Tag is a categorical label attached to a tag-scored film.
type Tag string

// Pole vocabulary. Free-form labels such as "romantic" are also allowed and
// are carried but never scored.
const (
	Light        Tag = "light"
	Heavy        Tag = "heavy"
	Slow         Tag = "slow"
	Fast         Tag = "fast"
	Challenge    Tag = "challenge"
	ComfortTag   Tag = "comfort"
	Dreamlike    Tag = "dreamlike"
	Real         Tag = "real"
	Classic      Tag = "classic"
	Contemporary Tag = "contemporary"
	Solo         Tag = "solo"
	SocialTag    Tag = "social"
	Dark         Tag = "dark"
	Uplifting    Tag = "uplifting"
	Visual       Tag = "visual"
	Talkative    Tag = "talkative"
)

// TagSet is an immutable set of tags.
type TagSet struct {
	tags map[Tag]struct{}
}

// NewTagSet builds a set from labels. Duplicates collapse.
func NewTagSet(labels ...Tag) TagSet {
	set := TagSet{tags: make(map[Tag]struct{}, len(labels))}
	for _, label := range labels {
		set.tags[label] = struct{}{}
	}
	return set
}

// Has reports whether the set contains tag.
func (s TagSet) Has(tag Tag) bool {
	_, ok := s.tags[tag]
	return ok
}

// Len returns the number of distinct tags.
func (s TagSet) Len() int { return len(s.tags) }

// Sorted returns the tags in lexical order.
func (s TagSet) Sorted() []Tag {
	out := make([]Tag, 0, len(s.tags))
	for tag := range s.tags {
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

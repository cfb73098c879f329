// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

// Package mood defines the mood vector: a set of named axes, each scored
// from 0 to 100, that the UI sliders produce and the scoring engine consumes.
package mood

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Axis names one bipolar mood dimension.
type Axis string

// Canonical axes.
const (
	Weight  Axis = "weight"  // light (0) to heavy (100)
	Pace    Axis = "pace"    // slow to fast
	Comfort Axis = "comfort" // challenging to comforting
	Reality Axis = "reality" // dreamlike to real
	Era     Axis = "era"     // classic to contemporary
	Social  Axis = "social"  // solo to social
)

// Extended axes.
const (
	Tone     Axis = "tone"     // dark to uplifting
	Dialogue Axis = "dialogue" // visual to talkative
)

// Value bounds. An axis missing from a vector reads as Neutral.
const (
	Min     = 0.0
	Max     = 100.0
	Neutral = 50.0
)

// Dead-zone bounds. Values strictly below LowThreshold lean to the low pole,
// values strictly above HighThreshold to the high pole.
const (
	LowThreshold  = 40.0
	HighThreshold = 60.0
)

// Level is the coarse reading of one axis value.
type Level int

// Levels.
const (
	Low Level = iota
	Mid
	High
)

func (l Level) String() string {
	switch l {
	case Low:
		return "low"
	case High:
		return "high"
	default:
		return "mid"
	}
}

// Classify buckets v by the dead-zone thresholds.
func Classify(v float64) Level {
	switch {
	case v < LowThreshold:
		return Low
	case v > HighThreshold:
		return High
	default:
		return Mid
	}
}

// StandardAxes is the six-axis set used by the standard profile.
var StandardAxes = []Axis{Weight, Pace, Comfort, Reality, Era, Social}

// ExtendedAxes is the eight-axis set used by the extended profile.
var ExtendedAxes = []Axis{Weight, Pace, Comfort, Reality, Era, Social, Tone, Dialogue}

// Vector maps axes to scores in [Min, Max].
type Vector map[Axis]float64

// Get returns the value for axis, or Neutral when it is absent.
func (v Vector) Get(axis Axis) float64 {
	if value, ok := v[axis]; ok {
		return value
	}
	return Neutral
}

// Has reports whether the vector carries an explicit value for axis.
func (v Vector) Has(axis Axis) bool {
	_, ok := v[axis]
	return ok
}

// UsesExtendedAxes reports whether the vector names tone or dialogue.
func (v Vector) UsesExtendedAxes() bool {
	return v.Has(Tone) || v.Has(Dialogue)
}

// Clamp returns a copy with every value forced into [Min, Max].
func (v Vector) Clamp() Vector {
	out := make(Vector, len(v))
	for axis, value := range v {
		out[axis] = math.Min(Max, math.Max(Min, value))
	}
	return out
}

// RangeError lists the axes whose values fall outside [Min, Max].
type RangeError struct {
	Axes []Axis
}

func (e *RangeError) Error() string {
	names := make([]string, len(e.Axes))
	for i, axis := range e.Axes {
		names[i] = string(axis)
	}
	return fmt.Sprintf("mood values out of range [%g,%g]: %s", Min, Max, strings.Join(names, ", "))
}

// Validate returns a *RangeError when any value is outside [Min, Max].
func (v Vector) Validate() error {
	var bad []Axis
	for axis, value := range v {
		if math.IsNaN(value) || value < Min || value > Max {
			bad = append(bad, axis)
		}
	}
	if len(bad) == 0 {
		return nil
	}
	sort.Slice(bad, func(i, j int) bool { return bad[i] < bad[j] })
	return &RangeError{Axes: bad}
}

// Entropy is the mean distance from Neutral across axes. Decisive moods score
// high, ambivalent moods score near zero.
func (v Vector) Entropy(axes []Axis) float64 {
	if len(axes) == 0 {
		return 0
	}
	var total float64
	for _, axis := range axes {
		total += math.Abs(v.Get(axis) - Neutral)
	}
	return total / float64(len(axes))
}

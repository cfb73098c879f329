// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package recommend

import (
	"math"

	"github.com/tomtom215/moodreel/internal/catalog"
	"github.com/tomtom215/moodreel/internal/mood"
)

// poleScale makes an extreme worth 2.0.
const (
	poleScale       = 20.0
	denseMultiplier = 1.5
)

// poles maps each axis to the tag earning its low and high contribution.
var poles = map[mood.Axis]struct{ low, high catalog.Tag }{
	mood.Weight:   {catalog.Light, catalog.Heavy},
	mood.Pace:     {catalog.Slow, catalog.Fast},
	mood.Comfort:  {catalog.Challenge, catalog.Light},
	mood.Reality:  {catalog.Dreamlike, catalog.Real},
	mood.Era:      {catalog.Classic, catalog.Contemporary},
	mood.Social:   {catalog.Solo, catalog.SocialTag},
	mood.Tone:     {catalog.Dark, catalog.Uplifting},
	mood.Dialogue: {catalog.Visual, catalog.SocialTag},
}

// lowPole is the contribution of a low-pole tag at mood value v.
func lowPole(v float64) float64 {
	return math.Max(0, mood.LowThreshold-v) / poleScale
}

// highPole is the contribution of a high-pole tag at mood value v.
func highPole(v float64) float64 {
	return math.Max(0, v-mood.HighThreshold) / poleScale
}

// TagScore sums pole contributions of tags over axes.
func TagScore(m mood.Vector, tags catalog.TagSet, axes []mood.Axis) float64 {
	var score float64
	for _, axis := range axes {
		p, ok := poles[axis]
		if !ok {
			continue
		}
		v := m.Get(axis)
		if tags.Has(p.low) {
			score += lowPole(v)
		}
		if tags.Has(p.high) {
			score += highPole(v)
		}
	}
	return score
}

// DimensionScore rewards closeness between the mood and a film position.
func DimensionScore(m, position mood.Vector, axes []mood.Axis) float64 {
	if len(axes) == 0 {
		return 0
	}
	n := float64(len(axes))
	var sum float64
	for _, axis := range axes {
		sum += (100 - math.Abs(m.Get(axis)-position.Get(axis))) / n
	}
	return sum * denseMultiplier
}

// perturbation returns the non-negative noise for one film.
func perturbation(policy Perturbation, r float64, m mood.Vector, axes []mood.Axis) float64 {
	var amount float64
	switch policy {
	case PerturbationEntropy:
		amount = r * (100 - m.Entropy(axes)) * 0.08
	default:
		amount = r * 0.5
	}
	return math.Max(0, amount)
}

// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

// Package recommend ranks films against a mood vector.
//
// # Scoring
//
// Films come in two shapes and each has its own scorer:
//
//   - Tag-scored films: every bipolar axis has a low-pole and a high-pole tag.
//     A low-pole tag earns max(0, 40-v)/20 and a high-pole tag earns
//     max(0, v-60)/20, so moods inside [40,60] leave the axis neutral and the
//     extremes earn 2.0.
//   - Dimension-scored films: each axis earns (100-|v-f|)/numAxes and the sum
//     is multiplied by 1.5, so a perfect match scores 150.
//
// The comfort axis reuses "light" as its high pole and the dialogue axis
// reuses "social" as its high pole.
//
// # Perturbation
//
// A non-negative random amount is added to every score so repeated identical
// moods do not always yield identical lists. Each Engine applies exactly one
// policy:
//
//   - flat:    rand() * 0.5
//   - entropy: rand() * (100 - entropy) * 0.08, where entropy is the mean
//     distance of the mood from 50. Decisive moods get less noise.
//
// Randomness is injected as a func() float64. Tests pass a function that
// always returns 0 to make rankings fully deterministic.
//
// # Profiles
//
// Service runs two engines. The standard profile uses the six canonical axes,
// the tag catalog merged with the TMDb popular list, flat perturbation and a
// top 8. The extended profile uses all eight axes, the dense catalog, entropy
// perturbation and a top 6. Moods naming tone or dialogue go to the extended
// profile.
//
// # Degradation
//
// Service.Recommend turns panics into errors so the API layer can fall back
// to the default list. Remote catalog and poster failures never reach it;
// those collaborators degrade on their own.
package recommend

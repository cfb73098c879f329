// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package describe

// pool is served when the generator is unavailable.
var pool = []string{
	"A mood suspended between light and shadow, waiting for the right story.",
	"Tonight feels like a quiet theater with one seat saved just for you.",
	"Something restless and tender stirs, ready to be met by the screen.",
	"Your mood drifts like late light through a projector's beam.",
	"A feeling that wants to be understood more than explained.",
}

// Pool returns a copy of the fallback sentences.
func Pool() []string {
	out := make([]string, len(pool))
	copy(out, pool)
	return out
}

// FallbackSentence picks a pool sentence with rnd, which must return values
// in [0, 1). A nil rnd picks the first sentence.
func FallbackSentence(rnd func() float64) string {
	if rnd == nil {
		return pool[0]
	}
	i := int(rnd() * float64(len(pool)))
	if i < 0 || i >= len(pool) {
		i = 0
	}
	return pool[i]
}

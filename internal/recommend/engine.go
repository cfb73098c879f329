// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package recommend

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodreel/internal/catalog"
	"github.com/tomtom215/moodreel/internal/mood"
)

// ErrMissingMood is returned when ranking is asked for without a mood vector.
var ErrMissingMood = errors.New("mood data is required")

// RandFunc returns a value in [0, 1).
type RandFunc func() float64

// Zero is a RandFunc that disables perturbation.
func Zero() float64 { return 0 }

// NewSeededRand returns a RandFunc safe for concurrent use. A zero seed
// seeds from the clock.
func NewSeededRand(seed int64) RandFunc {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	var mu sync.Mutex
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // math/rand is fine for ranking noise
	return func() float64 {
		mu.Lock()
		defer mu.Unlock()
		return rng.Float64()
	}
}

// Engine scores and ranks films for one profile. It is safe for concurrent
// use when its RandFunc is.
type Engine struct {
	profile Profile
	rand    RandFunc
	logger  zerolog.Logger
}

// NewEngine creates an engine for profile. A nil rnd disables perturbation.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(profile Profile, rnd RandFunc, logger zerolog.Logger) (*Engine, error) {
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	if rnd == nil {
		rnd = Zero
	}
	return &Engine{
		profile: profile,
		rand:    rnd,
		logger:  logger.With().Str("component", "recommend").Str("profile", profile.Name).Logger(),
	}, nil
}

// Profile returns the engine's profile.
func (e *Engine) Profile() Profile {
	return e.profile
}

// Score returns the deterministic score of film for m, before perturbation.
func (e *Engine) Score(m mood.Vector, film catalog.Film) float64 {
	switch f := film.(type) {
	case catalog.TagScoredFilm:
		return TagScore(m, f.Tags, e.profile.Axes)
	case catalog.DimensionScoredFilm:
		return DimensionScore(m, f.Position, e.profile.Axes)
	default:
		return 0
	}
}

type scoredFilm struct {
	details catalog.Details
	score   float64
}

// RankFilms scores every film, sorts by descending score and returns the
// first topN. Equal scores keep catalog order. A topN below 1 uses the
// profile's TopN.
func (e *Engine) RankFilms(m mood.Vector, films []catalog.Film, topN int) ([]catalog.Details, error) {
	if m == nil {
		return nil, ErrMissingMood
	}
	if topN < 1 {
		topN = e.profile.TopN
	}

	scored := make([]scoredFilm, 0, len(films))
	for _, film := range films {
		if film == nil {
			continue
		}
		score := e.Score(m, film) + perturbation(e.profile.Perturbation, e.rand(), m, e.profile.Axes)
		scored = append(scored, scoredFilm{details: film.Info(), score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > topN {
		scored = scored[:topN]
	}

	out := make([]catalog.Details, len(scored))
	for i, s := range scored {
		out[i] = s.details
	}

	if len(scored) > 0 {
		e.logger.Debug().
			Int("candidates", len(films)).
			Int("returned", len(out)).
			Str("top", scored[0].details.Title).
			Float64("top_score", scored[0].score).
			Msg("ranked films")
	}

	return out, nil
}

// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package recommend

import (
	"fmt"

	"github.com/tomtom215/moodreel/internal/mood"
)

// Perturbation selects how random noise is added to scores.
type Perturbation string

const (
	// PerturbationFlat adds rand()*0.5.
	PerturbationFlat Perturbation = "flat"

	// PerturbationEntropy adds rand()*(100-entropy)*0.08.
	PerturbationEntropy Perturbation = "entropy"
)

// Profile names.
const (
	ProfileStandard = "standard"
	ProfileExtended = "extended"
)

// Profile is the fixed configuration of one Engine.
type Profile struct {
	Name         string
	Axes         []mood.Axis
	Perturbation Perturbation
	TopN         int
}

// Validate checks that the profile can drive an Engine.
func (p Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile name is required")
	}
	if len(p.Axes) == 0 {
		return fmt.Errorf("profile %s: at least one axis is required", p.Name)
	}
	if p.TopN < 1 {
		return fmt.Errorf("profile %s: top_n must be at least 1, got %d", p.Name, p.TopN)
	}
	switch p.Perturbation {
	case PerturbationFlat, PerturbationEntropy:
	default:
		return fmt.Errorf("profile %s: unknown perturbation %q (must be flat or entropy)", p.Name, p.Perturbation)
	}
	return nil
}

// Config configures the recommendation Service.
type Config struct {
	Standard Profile
	Extended Profile

	// Seed seeds the random sources. Zero seeds from the clock.
	Seed int64
}

// DefaultConfig returns the standard six-axis and extended eight-axis profiles.
func DefaultConfig() *Config {
	return &Config{
		Standard: Profile{
			Name:         ProfileStandard,
			Axes:         mood.StandardAxes,
			Perturbation: PerturbationFlat,
			TopN:         8,
		},
		Extended: Profile{
			Name:         ProfileExtended,
			Axes:         mood.ExtendedAxes,
			Perturbation: PerturbationEntropy,
			TopN:         6,
		},
	}
}

// Validate checks both profiles.
func (c *Config) Validate() error {
	if err := c.Standard.Validate(); err != nil {
		return err
	}
	return c.Extended.Validate()
}

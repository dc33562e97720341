// SPDX-License-Identifier: MIT

package obstacle

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Sentinel errors for obstacle generation.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to Generate.
	ErrNilGrid = errors.New("obstacle: grid is nil")

	// ErrEndpointsPlaced indicates Start or End was marked before generation.
	ErrEndpointsPlaced = errors.New("obstacle: generation must precede Start/End placement")

	// ErrUnknownDensity indicates an unrecognized density tier.
	ErrUnknownDensity = errors.New("obstacle: unknown density")
)

// Placement budget for the cluster phase.
const (
	Placements = 5
	Retries    = 10
)

// Density selects a Tier.
type Density int

const (
	// Low produces small clusters and sparse sprinkling.
	Low Density = iota
	// Medium is the default tier.
	Medium
	// High produces large clusters and dense sprinkling.
	High
)

// Tier holds the parameters for one density level.
type Tier struct {
	MinSide int     // smallest rectangle extent
	MaxSide int     // largest rectangle extent (inclusive)
	Chance  float64 // per-cell sprinkling probability
}

var tiers = map[Density]Tier{
	Low:    {MinSide: 3, MaxSide: 5, Chance: 0.05},
	Medium: {MinSide: 4, MaxSide: 7, Chance: 0.10},
	High:   {MinSide: 5, MaxSide: 9, Chance: 0.18},
}

// Tier returns the parameters for d. Unknown values fall back to Medium.
func (d Density) Tier() Tier {
	if t, ok := tiers[d]; ok {
		return t
	}
	return tiers[Medium]
}

// String returns the lower-case tier name.
func (d Density) String() string {
	switch d {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	default:
		return fmt.Sprintf("density(%d)", int(d))
	}
}

// ParseDensity maps "low", "medium" or "high" (any case) to a Density.
func ParseDensity(s string) (Density, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return Low, nil
	case "medium", "med":
		return Medium, nil
	case "high":
		return High, nil
	}
	return Medium, fmt.Errorf("%w: %q", ErrUnknownDensity, s)
}

// Stats reports what a Generate call did.
type Stats struct {
	Placed    int // rectangles accepted
	Attempts  int // rectangle draws, never more than Placements*Retries
	Clustered int // cells converted by rectangle interiors
	Sprinkled int // cells converted by the sprinkling sweep
}

// Total returns the number of cells converted to Obstacle.
func (s Stats) Total() int { return s.Clustered + s.Sprinkled }

// Option customizes Generate.
type Option func(*config)

type config struct {
	rng  *rand.Rand
	tier *Tier
}

// WithSeed uses a deterministic source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r as the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("obstacle: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithTier overrides the density tier with custom parameters.
// Panics if MinSide < 1, MaxSide < MinSide, or Chance is outside [0,1].
func WithTier(t Tier) Option {
	if t.MinSide < 1 || t.MaxSide < t.MinSide || t.Chance < 0 || t.Chance > 1 {
		panic(fmt.Sprintf("obstacle: WithTier(%+v) invalid", t))
	}
	return func(c *config) {
		c.tier = &t
	}
}

func defaultConfig() config {
	return config{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

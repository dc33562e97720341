// SPDX-License-Identifier: MIT

package obstacle

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gridpath/grid"
)

// Generate converts cells of g to Obstacle according to the density tier.
// See the package documentation for the two phases.
//
// Contract:
//   - g must be non-nil (ErrNilGrid).
//   - Neither Start nor End may be placed yet (ErrEndpointsPlaced).
//   - Any cell the grid refuses to convert is returned as an error.
//   - Never panics; always terminates after at most Placements*Retries
//     rectangle draws and one grid sweep.
//
// Complexity: O(W×H) time, O(1) extra space.
func Generate(g *grid.Grid, d Density, opts ...Option) (Stats, error) {
	if g == nil {
		return Stats{}, ErrNilGrid
	}
	if _, ok := g.Start(); ok {
		return Stats{}, ErrEndpointsPlaced
	}
	if _, ok := g.End(); ok {
		return Stats{}, ErrEndpointsPlaced
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	tier := d.Tier()
	if cfg.tier != nil {
		tier = *cfg.tier
	}

	var st Stats
	for i := 0; i < Placements; i++ {
		for try := 0; try < Retries; try++ {
			st.Attempts++
			x1 := cfg.rng.Intn(g.Width())
			y1 := cfg.rng.Intn(g.Height())
			x2 := x1 + side(cfg.rng, tier)
			y2 := y1 + side(cfg.rng, tier)
			if x2 >= g.Width() || y2 >= g.Height() {
				continue
			}
			n, err := fillInterior(g, x1, y1, x2, y2)
			st.Clustered += n
			if err != nil {
				return st, err
			}
			st.Placed++
			break
		}
	}

	for idx := 0; idx < g.Len(); idx++ {
		if g.At(idx) == grid.Obstacle {
			continue
		}
		if cfg.rng.Float64() < tier.Chance {
			if err := g.Set(g.Coordinate(idx), grid.Obstacle); err != nil {
				return st, fmt.Errorf("obstacle: sprinkle: %w", err)
			}
			st.Sprinkled++
		}
	}

	return st, nil
}

// side draws a rectangle extent uniformly from [MinSide, MaxSide].
func side(r *rand.Rand, t Tier) int {
	if t.MaxSide <= t.MinSide {
		return t.MinSide
	}
	return t.MinSide + r.Intn(t.MaxSide-t.MinSide+1)
}

// fillInterior marks the strict interior of (x1,y1)..(x2,y2) as Obstacle,
// skipping cells that already are, and returns how many cells changed.
// It stops at the first cell the grid refuses.
func fillInterior(g *grid.Grid, x1, y1, x2, y2 int) (int, error) {
	n := 0
	for y := y1 + 1; y < y2; y++ {
		for x := x1 + 1; x < x2; x++ {
			c := grid.Coord{X: x, Y: y}
			if b, _ := g.Get(c); b == grid.Obstacle {
				continue
			}
			if err := g.Set(c, grid.Obstacle); err != nil {
				return n, fmt.Errorf("obstacle: cluster: %w", err)
			}
			n++
		}
	}
	return n, nil
}

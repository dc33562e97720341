package pathfinder

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/obstacle"
	"github.com/katalvlaran/gridpath/route"
	"github.com/katalvlaran/gridpath/search"
)

// Run builds the grid for cfg, searches it and paints the route.
func Run(ctx context.Context, cfg config.Config, opts ...Option) (*Outcome, error) {
	o := newOptions(opts)
	out, err := build(cfg, o)
	if err != nil {
		return nil, err
	}
	start, _ := out.Grid.Start()
	end, _ := out.Grid.End()

	sopts := append([]search.Option{search.WithContext(ctx)}, o.search...)
	res, err := search.Run(out.Grid, cfg.Algorithm, start, end, sopts...)
	if err != nil {
		return nil, err
	}
	out.Result = res
	if res.Found {
		if err = route.Paint(out.Grid, res.Path); err != nil {
			return nil, fmt.Errorf("pathfinder: %w", err)
		}
	}

	return out, nil
}

// Build prepares the grid for cfg without searching it.
func Build(cfg config.Config, opts ...Option) (*Outcome, error) {
	return build(cfg, newOptions(opts))
}

func build(cfg config.Config, o options) (*Outcome, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	out := &Outcome{Seed: seed}

	var err error
	if cfg.Map != "" {
		if out.Grid, err = load(o, cfg.Map); err != nil {
			return nil, err
		}
	} else {
		if out.Grid, err = grid.New(cfg.Width, cfg.Height); err != nil {
			return nil, err
		}
		if cfg.Obstacles {
			out.Obstacles, err = obstacle.Generate(out.Grid, cfg.Density, obstacle.WithRand(rng))
			if err != nil {
				return nil, err
			}
		}
	}

	if err = placeEndpoints(out.Grid, cfg, rng); err != nil {
		return nil, err
	}

	return out, nil
}

// load parses a layout file. Path cells drawn in the file are cleared:
// only a search may put a route on the grid.
func load(o options, name string) (*grid.Grid, error) {
	f, err := o.fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("pathfinder: open map: %w", err)
	}
	defer f.Close()

	g, err := grid.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("pathfinder: map %s: %w", name, err)
	}
	g.ClearPath()

	return g, nil
}

// placeEndpoints marks configured endpoints, keeps those already on the
// grid, and fills the rest from random Empty cells.
func placeEndpoints(g *grid.Grid, cfg config.Config, rng *rand.Rand) error {
	if cfg.Start != nil {
		if err := g.MarkStart(*cfg.Start); err != nil {
			return fmt.Errorf("pathfinder: start: %w", err)
		}
	}
	if cfg.End != nil {
		if err := g.MarkEnd(*cfg.End); err != nil {
			return fmt.Errorf("pathfinder: end: %w", err)
		}
	}

	if _, ok := g.Start(); !ok {
		c, err := randomEmpty(g, rng)
		if err != nil {
			return err
		}
		if err = g.MarkStart(c); err != nil {
			return err
		}
	}
	if _, ok := g.End(); !ok {
		c, err := randomEmpty(g, rng)
		if err != nil {
			return err
		}
		if err = g.MarkEnd(c); err != nil {
			return err
		}
	}

	return nil
}

// randomEmpty picks a uniformly random Empty cell.
func randomEmpty(g *grid.Grid, rng *rand.Rand) (grid.Coord, error) {
	var free []int
	for i := 0; i < g.Len(); i++ {
		if g.At(i) == grid.Empty {
			free = append(free, i)
		}
	}
	if len(free) == 0 {
		return grid.Coord{}, fmt.Errorf("%w: grid %dx%d has no empty cell", ErrNoRoom, g.Width(), g.Height())
	}

	return g.Coordinate(free[rng.Intn(len(free))]), nil
}

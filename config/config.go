package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/obstacle"
	"github.com/katalvlaran/gridpath/search"
)

// NewViper returns a viper instance carrying Default() for every key and
// reading GRIDPATH_* environment variables.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// SetDefaults registers Default() on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyWidth, d.Width)
	v.SetDefault(KeyHeight, d.Height)
	v.SetDefault(KeyAlgorithm, d.Algorithm.String())
	v.SetDefault(KeyDensity, d.Density.String())
	v.SetDefault(KeyObstacles, d.Obstacles)
	v.SetDefault(KeyStart, "")
	v.SetDefault(KeyEnd, "")
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeyMap, "")
	v.SetDefault(KeyTUI, d.TUI)
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var r raw
	if err := v.Unmarshal(&r); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	cfg := Config{
		Width:     r.Width,
		Height:    r.Height,
		Obstacles: r.Obstacles,
		Seed:      r.Seed,
		Map:       strings.TrimSpace(r.Map),
		TUI:       r.TUI,
	}
	var err error
	if cfg.Algorithm, err = search.ParseAlgorithm(r.Algorithm); err != nil {
		return Config{}, err
	}
	if cfg.Density, err = obstacle.ParseDensity(r.Density); err != nil {
		return Config{}, err
	}
	if cfg.Start, err = optionalCoord(KeyStart, r.Start); err != nil {
		return Config{}, err
	}
	if cfg.End, err = optionalCoord(KeyEnd, r.End); err != nil {
		return Config{}, err
	}

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func optionalCoord(key, s string) (*grid.Coord, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	c, err := ParseCoord(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &c, nil
}

// ParseCoord parses "x,y" into a non-negative Coord.
func ParseCoord(s string) (grid.Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Coord{}, fmt.Errorf("%w: %q is not x,y", ErrCoord, s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return grid.Coord{}, fmt.Errorf("%w: %q is not x,y", ErrCoord, s)
	}
	if x < 0 || y < 0 {
		return grid.Coord{}, fmt.Errorf("%w: %q is negative", ErrCoord, s)
	}

	return grid.Coord{X: x, Y: y}, nil
}

// Validate checks dimensions and endpoints.
// With a map file the dimensions come from the file, so only the
// endpoints' relation to each other is checked here.
func (c Config) Validate() error {
	if c.Map == "" {
		if c.Width < grid.MinSide || c.Width > grid.MaxSide || c.Height < grid.MinSide || c.Height > grid.MaxSide {
			return fmt.Errorf("%w: %dx%d not within [%d,%d]", ErrDimensions, c.Width, c.Height, grid.MinSide, grid.MaxSide)
		}
		for _, p := range []*grid.Coord{c.Start, c.End} {
			if p != nil && (p.X >= c.Width || p.Y >= c.Height) {
				return fmt.Errorf("%w: %s outside %dx%d", ErrCoord, *p, c.Width, c.Height)
			}
		}
	}
	if c.Start != nil && c.End != nil && *c.Start == *c.End {
		return fmt.Errorf("%w: start and end are both %s", ErrCoord, *c.Start)
	}

	return nil
}

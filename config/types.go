package config

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/obstacle"
	"github.com/katalvlaran/gridpath/search"
)

// Sentinel errors for configuration.
var (
	// ErrDimensions indicates a width or height outside [grid.MinSide, grid.MaxSide].
	ErrDimensions = errors.New("config: dimensions out of range")

	// ErrCoord indicates a malformed, negative or out-of-grid "x,y" endpoint.
	ErrCoord = errors.New("config: invalid coordinate")
)

// Configuration keys, shared by flags, env and config files.
const (
	KeyWidth     = "width"
	KeyHeight    = "height"
	KeyAlgorithm = "algorithm"
	KeyDensity   = "density"
	KeyObstacles = "obstacles"
	KeyStart     = "start"
	KeyEnd       = "end"
	KeySeed      = "seed"
	KeyMap       = "map"
	KeyTUI       = "tui"
)

// EnvPrefix is prepended to upper-cased keys for environment lookup.
const EnvPrefix = "GRIDPATH"

// Config is a fully parsed run description.
type Config struct {
	Width, Height int
	Algorithm     search.Algorithm
	Density       obstacle.Density
	Obstacles     bool

	// Start and End are nil when they should be placed at random.
	Start, End *grid.Coord

	Seed int64
	Map  string
	TUI  bool
}

// raw mirrors the viper keys before parsing.
type raw struct {
	Width     int    `mapstructure:"width"`
	Height    int    `mapstructure:"height"`
	Algorithm string `mapstructure:"algorithm"`
	Density   string `mapstructure:"density"`
	Obstacles bool   `mapstructure:"obstacles"`
	Start     string `mapstructure:"start"`
	End       string `mapstructure:"end"`
	Seed      int64  `mapstructure:"seed"`
	Map       string `mapstructure:"map"`
	TUI       bool   `mapstructure:"tui"`
}

// Default returns a 20×20 A* run with Medium obstacles and random endpoints.
func Default() Config {
	return Config{
		Width:     20,
		Height:    20,
		Algorithm: search.AStar,
		Density:   obstacle.Medium,
		Obstacles: true,
	}
}

package pathfinder

import (
	"errors"

	"github.com/spf13/afero"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/obstacle"
	"github.com/katalvlaran/gridpath/search"
)

// ErrNoRoom is returned when there are not enough Empty cells left to place
// Start and End.
var ErrNoRoom = errors.New("pathfinder: no room for endpoints")

// Outcome is everything a run produced.
type Outcome struct {
	Grid      *grid.Grid
	Result    search.Result
	Obstacles obstacle.Stats
	Seed      int64
}

// Option customizes Build and Run.
type Option func(*options)

type options struct {
	fs     afero.Fs
	search []search.Option
}

// WithFs reads map files from fs instead of the OS filesystem. Panics on nil.
func WithFs(fs afero.Fs) Option {
	if fs == nil {
		panic("pathfinder: WithFs(nil)")
	}
	return func(o *options) {
		o.fs = fs
	}
}

// WithSearchOptions forwards opts to search.Run.
func WithSearchOptions(opts ...search.Option) Option {
	return func(o *options) {
		o.search = append(o.search, opts...)
	}
}

func newOptions(opts []Option) options {
	o := options{fs: afero.NewOsFs()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

package route

import (
	"errors"
	"fmt"
)

// Sentinel errors for reconstruction and painting.
var (
	// ErrReconstruction is the umbrella for every broken predecessor chain.
	ErrReconstruction = errors.New("route: reconstruction failed")

	// ErrMissingPredecessor indicates the chain ended before reaching Start.
	ErrMissingPredecessor = fmt.Errorf("%w: missing predecessor", ErrReconstruction)

	// ErrCycle indicates a cell was visited twice while walking the chain.
	ErrCycle = fmt.Errorf("%w: predecessor cycle", ErrReconstruction)

	// ErrInvalidPath indicates a route that cannot be painted.
	ErrInvalidPath = errors.New("route: invalid path")
)

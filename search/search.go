package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/route"
)

// inf marks an unreached distance.
const inf = int(^uint(0) >> 1)

// Func is the uniform signature shared by every algorithm.
type Func func(g *grid.Grid, start, end grid.Coord, opts ...Option) (Result, error)

// Run dispatches to the algorithm selected by algo.
// Returns ErrUnknownAlgorithm for a tag outside the closed set, otherwise
// whatever the selected algorithm returns.
func Run(g *grid.Grid, algo Algorithm, start, end grid.Coord, opts ...Option) (Result, error) {
	var fn Func
	switch algo {
	case BFS:
		fn = BreadthFirstSearch
	case DFS:
		fn = DepthFirstSearch
	case Dijkstra:
		fn = DijkstraSearch
	case AStar:
		fn = AStarSearch
	case GreedyBestFirst:
		fn = GreedyBestFirstSearch
	case BellmanFord:
		fn = BellmanFordSearch
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}

	return fn(g, start, end, opts...)
}

// state is the per-run exploration state shared by all algorithms.
// All tables are indexed by the row-major cell index.
type state struct {
	g          *grid.Grid
	opts       Options
	start, end int
	prev       []int
	visited    []bool
	expanded   int
	nbuf       []int
}

// prepare validates inputs, applies options and allocates fresh state.
func prepare(g *grid.Grid, start, end grid.Coord, opts []Option) (*state, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	for _, c := range []grid.Coord{start, end} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("search: endpoint %s: %w", c, grid.ErrOutOfBounds)
		}
		if !g.Passable(c) {
			return nil, fmt.Errorf("%w: %s", ErrBlockedEndpoint, c)
		}
	}
	if start == end {
		return nil, fmt.Errorf("%w: %s", ErrSameEndpoints, start)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Len()
	s := &state{
		g:       g,
		opts:    o,
		start:   g.Index(start),
		end:     g.Index(end),
		prev:    make([]int, n),
		visited: make([]bool, n),
		nbuf:    make([]int, 0, 4),
	}
	for i := range s.prev {
		s.prev[i] = -1
	}

	return s, nil
}

// expand records the expansion of cell u, honoring cancellation and the
// OnExpand hook.
func (s *state) expand(u int) error {
	select {
	case <-s.opts.Ctx.Done():
		return s.opts.Ctx.Err()
	default:
	}
	s.expanded++
	s.opts.OnExpand(s.g.Coordinate(u))

	return nil
}

// passable returns the non-Obstacle neighbors of u in N, E, S, W order.
// The returned slice is reused by the next call.
func (s *state) passable(u int) []int {
	all := s.g.AppendNeighbors(s.nbuf[:0], u)
	out := all[:0]
	for _, v := range all {
		if s.g.At(v) != grid.Obstacle {
			out = append(out, v)
		}
	}
	s.nbuf = all

	return out
}

// heuristic evaluates the configured heuristic from cell u to End.
func (s *state) heuristic(u int) int {
	return s.opts.Heuristic(s.g.Coordinate(u), s.g.Coordinate(s.end))
}

// result builds the Result; on success it reconstructs the route from prev.
func (s *state) result(algo Algorithm, found bool) (Result, error) {
	res := Result{Algorithm: algo, Expanded: s.expanded}
	if !found {
		return res, nil
	}
	path, err := route.Reconstruct(s.prev, s.g.Width(), s.g.Coordinate(s.start), s.g.Coordinate(s.end))
	if err != nil {
		return res, fmt.Errorf("search: %s: %w", algo, err)
	}
	res.Found = true
	res.Path = path
	res.Cost = route.Length(path)

	return res, nil
}

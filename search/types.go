// Package search provides tunable options, result types and error
// definitions for the grid search algorithms.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrBlockedEndpoint is returned when Start or End lies on an Obstacle.
	ErrBlockedEndpoint = errors.New("search: endpoint is an obstacle")

	// ErrSameEndpoints is returned when Start equals End.
	ErrSameEndpoints = errors.New("search: start and end coincide")

	// ErrUnknownAlgorithm is returned for a tag outside the closed set.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrCorruptFrontier signals an internal frontier inconsistency.
	ErrCorruptFrontier = errors.New("search: corrupted frontier state")
)

// Algorithm selects one of the six searches.
type Algorithm int

const (
	// BFS is breadth-first search.
	BFS Algorithm = iota
	// DFS is depth-first search.
	DFS
	// Dijkstra is Dijkstra's shortest-path search.
	Dijkstra
	// AStar is A* with an admissible heuristic.
	AStar
	// GreedyBestFirst orders the frontier by heuristic only.
	GreedyBestFirst
	// BellmanFord relaxes every edge until distances settle.
	BellmanFord
)

// Algorithms returns every tag in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, Dijkstra, AStar, GreedyBestFirst, BellmanFord}
}

// String returns the short tag name.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case Dijkstra:
		return "Dijkstra"
	case AStar:
		return "AStar"
	case GreedyBestFirst:
		return "GreedyBestFirst"
	case BellmanFord:
		return "BellmanFord"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Name returns the human-readable algorithm name.
func (a Algorithm) Name() string {
	switch a {
	case BFS:
		return "Breadth First Search"
	case DFS:
		return "Depth First Search"
	case Dijkstra:
		return "Dijkstra"
	case AStar:
		return "A Star"
	case GreedyBestFirst:
		return "Greedy Best First Search"
	case BellmanFord:
		return "Bellman Ford"
	default:
		return a.String()
	}
}

// Optimal reports whether the algorithm always returns a shortest path
// (for AStar, under an admissible heuristic).
func (a Algorithm) Optimal() bool {
	switch a {
	case BFS, Dijkstra, AStar, BellmanFord:
		return true
	default:
		return false
	}
}

var algorithmAliases = map[string]Algorithm{
	"bfs": BFS, "breadthfirst": BFS, "breadthfirstsearch": BFS,
	"dfs": DFS, "depthfirst": DFS, "depthfirstsearch": DFS,
	"dijkstra": Dijkstra,
	"astar":    AStar,
	"greedy":   GreedyBestFirst, "gbfs": GreedyBestFirst,
	"greedybestfirst": GreedyBestFirst, "greedybestfirstsearch": GreedyBestFirst,
	"bellmanford": BellmanFord, "bf": BellmanFord,
}

// ParseAlgorithm maps a tag or human name to an Algorithm.
// Matching ignores case, spaces, '-' and '_'; "A*" is accepted for AStar.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "", "-", "", "_", "", "*", "star").Replace(key)
	if a, ok := algorithmAliases[key]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Heuristic estimates the remaining cost from a cell to the goal.
type Heuristic func(from, to grid.Coord) int

// Manhattan is the admissible heuristic |dx|+|dy| for unit-cost
// 4-connected movement.
func Manhattan(from, to grid.Coord) int {
	return abs(from.X-to.X) + abs(from.Y-to.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation; checked once per expanded cell.
	Ctx context.Context

	// OnExpand is called each time a cell is expanded.
	OnExpand func(c grid.Coord)

	// Heuristic guides AStar and GreedyBestFirst.
	Heuristic Heuristic
}

// DefaultOptions returns Options with a background context, a no-op hook
// and the Manhattan heuristic.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnExpand:  func(grid.Coord) {},
		Heuristic: Manhattan,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a callback invoked for every expanded cell.
func WithOnExpand(fn func(c grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithHeuristic replaces the Manhattan heuristic for AStar and
// GreedyBestFirst. AStar is only optimal if h never overestimates.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// Result holds the outcome of a search.
//   - Found:    whether End was reached.
//   - Path:     Start→End cells inclusive; nil when not found.
//   - Cost:     number of steps along Path (len(Path)-1).
//   - Expanded: cells expanded; for BellmanFord, cells whose outgoing
//     edges were scanned, summed over all passes.
type Result struct {
	Algorithm Algorithm
	Found     bool
	Path      []grid.Coord
	Cost      int
	Expanded  int
}

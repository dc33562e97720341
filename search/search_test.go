package search_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/obstacle"
	"github.com/katalvlaran/gridpath/route"
	"github.com/katalvlaran/gridpath/search"
)

// referenceDistance is an independent BFS over Neighbors returning the hop
// count from start to end, or -1 when end is unreachable.
func referenceDistance(g *grid.Grid, start, end grid.Coord) int {
	dist := map[grid.Coord]int{start: 0}
	q := queue.New[grid.Coord]()
	q.Enqueue(start)
	for !q.Empty() {
		c := q.Dequeue()
		if c == end {
			return dist[c]
		}
		ns, _ := g.Neighbors(c)
		for _, n := range ns {
			if n.Block == grid.Obstacle {
				continue
			}
			if _, seen := dist[n.Coord]; seen {
				continue
			}
			dist[n.Coord] = dist[c] + 1
			q.Enqueue(n.Coord)
		}
	}
	return -1
}

func emptyGrid(t *testing.T, w, h int) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, h)
	require.NoError(t, err)
	return g
}

//----------------------------------------------------------------------------//
// Scenario Tests
//----------------------------------------------------------------------------//

// TestOpenGrid runs every algorithm across an empty 5×5 grid from corner to
// corner; the optimal ones must report exactly 8 steps.
func TestOpenGrid(t *testing.T) {
	g := emptyGrid(t, 5, 5)
	start, end := grid.Coord{X: 0, Y: 0}, grid.Coord{X: 4, Y: 4}
	require.NoError(t, g.MarkStart(start))
	require.NoError(t, g.MarkEnd(end))

	for _, algo := range search.Algorithms() {
		t.Run(algo.String(), func(t *testing.T) {
			res, err := search.Run(g, algo, start, end)
			require.NoError(t, err)
			require.True(t, res.Found)
			assert.Equal(t, algo, res.Algorithm)
			assert.NoError(t, route.Validate(g, res.Path))
			assert.Equal(t, len(res.Path)-1, res.Cost)
			assert.Positive(t, res.Expanded)
			if algo.Optimal() {
				assert.Equal(t, 8, res.Cost)
			}
		})
	}
}

// TestWalledOff places a full obstacle row between Start and End; every
// algorithm must report no path without an error.
func TestWalledOff(t *testing.T) {
	g := emptyGrid(t, 5, 5)
	for x := 0; x < 5; x++ {
		require.NoError(t, g.Set(grid.Coord{X: x, Y: 2}, grid.Obstacle))
	}
	start, end := grid.Coord{X: 0, Y: 0}, grid.Coord{X: 4, Y: 4}

	for _, algo := range search.Algorithms() {
		t.Run(algo.String(), func(t *testing.T) {
			res, err := search.Run(g, algo, start, end)
			require.NoError(t, err)
			assert.False(t, res.Found)
			assert.Nil(t, res.Path)
			assert.Zero(t, res.Cost)
			assert.Positive(t, res.Expanded)
		})
	}
}

// TestGreedy_OpenGridOrder pins the tie-breaking of the heuristic frontier:
// equal scores pop in insertion order and neighbors are seen N, E, S, W, so
// greedy runs along the top row and then down the right column.
func TestGreedy_OpenGridOrder(t *testing.T) {
	g := emptyGrid(t, 5, 5)
	var order []grid.Coord
	res, err := search.GreedyBestFirstSearch(g, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 4, Y: 4},
		search.WithOnExpand(func(c grid.Coord) { order = append(order, c) }))
	require.NoError(t, err)

	want := []grid.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 1}, {X: 4, Y: 2}, {X: 4, Y: 3}, {X: 4, Y: 4}}
	assert.Equal(t, want, order)
	assert.Equal(t, want, res.Path)
	assert.Equal(t, 9, res.Expanded)
}

// TestUniqueCorridor checks that on a single-corridor layout every algorithm
// returns the same route.
func TestUniqueCorridor(t *testing.T) {
	g := emptyGrid(t, 5, 5)
	for _, c := range []grid.Coord{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3}, {X: 4, Y: 3}} {
		require.NoError(t, g.Set(c, grid.Obstacle))
	}
	start, end := grid.Coord{X: 0, Y: 0}, grid.Coord{X: 4, Y: 4}

	var first []grid.Coord
	for _, algo := range search.Algorithms() {
		res, err := search.Run(g, algo, start, end)
		require.NoError(t, err, algo)
		require.True(t, res.Found, algo)
		assert.Equal(t, 16, res.Cost, algo)
		if first == nil {
			first = res.Path
			continue
		}
		assert.Equal(t, first, res.Path, algo)
	}
}

//----------------------------------------------------------------------------//
// Precondition Tests
//----------------------------------------------------------------------------//

func TestPreconditions(t *testing.T) {
	g := emptyGrid(t, 5, 5)
	require.NoError(t, g.Set(grid.Coord{X: 2, Y: 2}, grid.Obstacle))
	ok := grid.Coord{X: 0, Y: 0}

	cases := []struct {
		name       string
		g          *grid.Grid
		start, end grid.Coord
		err        error
	}{
		{"NilGrid", nil, ok, grid.Coord{X: 1, Y: 1}, search.ErrNilGrid},
		{"StartOutside", g, grid.Coord{X: -1, Y: 0}, ok, grid.ErrOutOfBounds},
		{"EndOutside", g, ok, grid.Coord{X: 5, Y: 5}, grid.ErrOutOfBounds},
		{"StartBlocked", g, grid.Coord{X: 2, Y: 2}, ok, search.ErrBlockedEndpoint},
		{"EndBlocked", g, ok, grid.Coord{X: 2, Y: 2}, search.ErrBlockedEndpoint},
		{"Same", g, ok, ok, search.ErrSameEndpoints},
	}
	for _, tc := range cases {
		for _, algo := range search.Algorithms() {
			t.Run(tc.name+"/"+algo.String(), func(t *testing.T) {
				_, err := search.Run(tc.g, algo, tc.start, tc.end)
				if !errors.Is(err, tc.err) {
					t.Errorf("error = %v; want %v", err, tc.err)
				}
			})
		}
	}
}

func TestRun_UnknownAlgorithm(t *testing.T) {
	g := emptyGrid(t, 5, 5)
	_, err := search.Run(g, search.Algorithm(42), grid.Coord{X: 0, Y: 0}, grid.Coord{X: 1, Y: 0})
	require.ErrorIs(t, err, search.ErrUnknownAlgorithm)
	assert.Equal(t, "Algorithm(42)", search.Algorithm(42).String())
}

//----------------------------------------------------------------------------//
// Options Tests
//----------------------------------------------------------------------------//

// TestCancellation checks a context cancelled up front, and one cancelled
// from inside the expansion hook, both abort with context.Canceled.
func TestCancellation(t *testing.T) {
	g := emptyGrid(t, 10, 10)
	start, end := grid.Coord{X: 0, Y: 0}, grid.Coord{X: 9, Y: 9}

	for _, algo := range search.Algorithms() {
		t.Run(algo.String(), func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := search.Run(g, algo, start, end, search.WithContext(ctx))
			require.ErrorIs(t, err, context.Canceled)

			ctx, cancel = context.WithCancel(context.Background())
			defer cancel()
			n := 0
			_, err = search.Run(g, algo, start, end,
				search.WithContext(ctx),
				search.WithOnExpand(func(grid.Coord) {
					if n++; n == 3 {
						cancel()
					}
				}))
			require.ErrorIs(t, err, context.Canceled)
			assert.Equal(t, 3, n)
		})
	}
}

// TestOnExpandMatchesExpanded checks the hook fires once per counted expansion.
func TestOnExpandMatchesExpanded(t *testing.T) {
	g := emptyGrid(t, 8, 6)
	require.NoError(t, g.Set(grid.Coord{X: 3, Y: 3}, grid.Obstacle))
	for _, algo := range search.Algorithms() {
		calls := 0
		res, err := search.Run(g, algo, grid.Coord{X: 0, Y: 5}, grid.Coord{X: 7, Y: 0},
			search.WithOnExpand(func(grid.Coord) { calls++ }))
		require.NoError(t, err, algo)
		assert.Equal(t, res.Expanded, calls, algo)
	}
}

// TestZeroHeuristic checks A* stays optimal with h ≡ 0, and that nil
// options leave the defaults in place.
func TestZeroHeuristic(t *testing.T) {
	g := emptyGrid(t, 7, 7)
	for y := 0; y < 6; y++ {
		require.NoError(t, g.Set(grid.Coord{X: 3, Y: y}, grid.Obstacle))
	}
	start, end := grid.Coord{X: 0, Y: 0}, grid.Coord{X: 6, Y: 0}

	res, err := search.AStarSearch(g, start, end,
		search.WithHeuristic(func(grid.Coord, grid.Coord) int { return 0 }))
	require.NoError(t, err)
	assert.Equal(t, referenceDistance(g, start, end), res.Cost)

	res, err = search.AStarSearch(g, start, end,
		search.WithHeuristic(nil), search.WithOnExpand(nil))
	require.NoError(t, err)
	assert.Equal(t, 18, res.Cost)
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, search.Manhattan(grid.Coord{X: 2, Y: 2}, grid.Coord{X: 2, Y: 2}))
	assert.Equal(t, 7, search.Manhattan(grid.Coord{X: 5, Y: 0}, grid.Coord{X: 1, Y: 3}))
	assert.Equal(t, 7, search.Manhattan(grid.Coord{X: 1, Y: 3}, grid.Coord{X: 5, Y: 0}))
}

//----------------------------------------------------------------------------//
// Algorithm Tag Tests
//----------------------------------------------------------------------------//

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]search.Algorithm{
		"bfs":                      search.BFS,
		"Breadth First Search":     search.BFS,
		"depth-first":              search.DFS,
		"DIJKSTRA":                 search.Dijkstra,
		"A*":                       search.AStar,
		"a star":                   search.AStar,
		"greedy":                   search.GreedyBestFirst,
		"Greedy Best First Search": search.GreedyBestFirst,
		"bellman_ford":             search.BellmanFord,
	}
	for in, want := range cases {
		got, err := search.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, a := range search.Algorithms() {
		got, err := search.ParseAlgorithm(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
		got, err = search.ParseAlgorithm(a.Name())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	_, err := search.ParseAlgorithm("teleport")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestOptimal(t *testing.T) {
	assert.True(t, search.BFS.Optimal())
	assert.True(t, search.AStar.Optimal())
	assert.True(t, search.BellmanFord.Optimal())
	assert.False(t, search.DFS.Optimal())
	assert.False(t, search.GreedyBestFirst.Optimal())
}

//----------------------------------------------------------------------------//
// Randomized Agreement Suite
//----------------------------------------------------------------------------//

// AgreementSuite runs all algorithms over randomly generated obstacle grids
// and compares them with an independent reference BFS.
type AgreementSuite struct {
	suite.Suite
}

func TestAgreementSuite(t *testing.T) {
	suite.Run(t, new(AgreementSuite))
}

// endpoints returns the first and last passable cells in row-major order.
func endpoints(g *grid.Grid) (grid.Coord, grid.Coord, bool) {
	first, last := -1, -1
	for i := 0; i < g.Len(); i++ {
		if g.At(i) == grid.Obstacle {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	if first < 0 || first == last {
		return grid.Coord{}, grid.Coord{}, false
	}
	return g.Coordinate(first), g.Coordinate(last), true
}

func (s *AgreementSuite) TestRandomGrids() {
	t := s.T()
	sizes := [][2]int{{5, 5}, {12, 9}, {20, 20}}
	densities := []obstacle.Density{obstacle.Low, obstacle.Medium, obstacle.High}
	reachable, unreachable := 0, 0

	for _, sz := range sizes {
		for _, d := range densities {
			for seed := int64(1); seed <= 15; seed++ {
				g, err := grid.New(sz[0], sz[1])
				require.NoError(t, err)
				_, err = obstacle.Generate(g, d, obstacle.WithSeed(seed))
				require.NoError(t, err)
				start, end, ok := endpoints(g)
				if !ok {
					continue
				}
				require.NoError(t, g.MarkStart(start))
				require.NoError(t, g.MarkEnd(end))
				before := g.Clone()

				ref := referenceDistance(g, start, end)
				if ref < 0 {
					unreachable++
				} else {
					reachable++
				}

				for _, algo := range search.Algorithms() {
					res, err := search.Run(g, algo, start, end)
					require.NoError(t, err)
					require.Equal(t, ref >= 0, res.Found, "%s %v %s seed %d", algo, sz, d, seed)
					require.Equal(t, before, g, "%s mutated the grid", algo)
					if !res.Found {
						require.Nil(t, res.Path)
						continue
					}
					require.NoError(t, route.Validate(g, res.Path), algo)
					require.Equal(t, route.Length(res.Path), res.Cost)
					if algo.Optimal() {
						require.Equal(t, ref, res.Cost, "%s %v %s seed %d", algo, sz, d, seed)
					} else {
						require.GreaterOrEqual(t, res.Cost, ref)
					}
				}
			}
		}
	}
	require.Positive(t, reachable)
	s.T().Logf("reachable=%d unreachable=%d", reachable, unreachable)
}

package search

import "github.com/katalvlaran/gridpath/grid"

// BellmanFordSearch computes shortest distances from Start by repeatedly
// relaxing every edge of the grid graph.
//
// Each pass scans all cells in row-major order; a cell with a finite
// distance relaxes its passable neighbors. At most N−1 passes are run and
// the loop stops early after a pass that changes nothing. End is reached
// iff its distance is finite once the loop ends. Expanded counts cells
// whose outgoing edges were scanned, summed over all passes.
//
// Complexity: O(N²) worst case time, O(N) memory for N = W×H cells.
func BellmanFordSearch(g *grid.Grid, start, end grid.Coord, opts ...Option) (Result, error) {
	s, err := prepare(g, start, end, opts)
	if err != nil {
		return Result{}, err
	}

	n := g.Len()
	dist := make([]int, n)
	for i := range dist {
		dist[i] = inf
	}
	dist[s.start] = 0

	for pass := 0; pass < n-1; pass++ {
		changed := false
		for u := 0; u < n; u++ {
			if dist[u] == inf {
				continue
			}
			if err = s.expand(u); err != nil {
				return Result{}, err
			}
			for _, v := range s.passable(u) {
				if nd := dist[u] + 1; nd < dist[v] {
					dist[v] = nd
					s.prev[v] = u
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	return s.result(BellmanFord, dist[s.end] != inf)
}

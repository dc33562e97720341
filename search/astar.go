package search

import "github.com/katalvlaran/gridpath/grid"

// AStarSearch computes a route with A*, ordering the open set on
// f = g + h where g is the known distance from Start and h the configured
// heuristic (Manhattan by default).
//
// The open set is an indexed min-heap: each cell has at most one live entry,
// and an improved g lowers that entry in place. A cell whose g improves after
// it left the open set is re-opened, so optimality holds for any admissible
// heuristic, consistent or not.
//
// Complexity: O(N log N) time, O(N) memory for N = W×H cells.
func AStarSearch(g *grid.Grid, start, end grid.Coord, opts ...Option) (Result, error) {
	s, err := prepare(g, start, end, opts)
	if err != nil {
		return Result{}, err
	}

	n := g.Len()
	gScore := make([]int, n)
	for i := range gScore {
		gScore[i] = inf
	}
	gScore[s.start] = 0

	open := make([]*pqItem, n) // live heap entry per cell, nil when closed
	pq := newFrontier(n)
	open[s.start] = pq.push(s.start, s.heuristic(s.start))

	found := false
	for pq.Len() > 0 {
		u := pq.pop().cell
		open[u] = nil
		if err = s.expand(u); err != nil {
			return Result{}, err
		}
		if u == s.end {
			found = true
			break
		}
		for _, v := range s.passable(u) {
			tentative := gScore[u] + 1
			if tentative >= gScore[v] {
				continue
			}
			s.prev[v] = u
			gScore[v] = tentative
			f := tentative + s.heuristic(v)
			if open[v] == nil {
				open[v] = pq.push(v, f)
				continue
			}
			if err = pq.update(open[v], f); err != nil {
				return Result{}, err
			}
		}
	}

	return s.result(AStar, found)
}

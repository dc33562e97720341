package search

import "github.com/katalvlaran/gridpath/grid"

// GreedyBestFirstSearch always expands the frontier cell that looks closest
// to End by heuristic alone, ignoring the distance already travelled.
// Cells are marked visited on discovery and never re-queued, so the route
// is found quickly but is not necessarily the shortest.
//
// Complexity: O(N log N) time, O(N) memory for N = W×H cells.
func GreedyBestFirstSearch(g *grid.Grid, start, end grid.Coord, opts ...Option) (Result, error) {
	s, err := prepare(g, start, end, opts)
	if err != nil {
		return Result{}, err
	}

	pq := newFrontier(g.Len())
	s.visited[s.start] = true
	pq.push(s.start, s.heuristic(s.start))

	found := false
	for pq.Len() > 0 {
		u := pq.pop().cell
		if err = s.expand(u); err != nil {
			return Result{}, err
		}
		if u == s.end {
			found = true
			break
		}
		for _, v := range s.passable(u) {
			if s.visited[v] {
				continue
			}
			s.visited[v] = true
			s.prev[v] = u
			pq.push(v, s.heuristic(v))
		}
	}

	return s.result(GreedyBestFirst, found)
}

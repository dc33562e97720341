package search

import "github.com/katalvlaran/gridpath/grid"

// DijkstraSearch computes a shortest route with Dijkstra's algorithm.
//
// The frontier is a min-heap keyed on distance from Start with lazy
// decrease-key: an improved distance pushes a fresh entry and stale entries
// are skipped when popped. A cell is finalized the first time it is popped;
// the search stops as soon as End is finalized.
//
// Complexity: O(N log N) time, O(N) memory for N = W×H cells.
func DijkstraSearch(g *grid.Grid, start, end grid.Coord, opts ...Option) (Result, error) {
	s, err := prepare(g, start, end, opts)
	if err != nil {
		return Result{}, err
	}

	dist := make([]int, g.Len())
	for i := range dist {
		dist[i] = inf
	}
	dist[s.start] = 0

	pq := newFrontier(g.Len())
	pq.push(s.start, 0)

	found := false
	for pq.Len() > 0 {
		it := pq.pop()
		u := it.cell
		// Skip stale entries.
		if s.visited[u] || it.score > dist[u] {
			continue
		}
		s.visited[u] = true
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
			if nd := dist[u] + 1; nd < dist[v] {
				dist[v] = nd
				s.prev[v] = u
				pq.push(v, nd)
			}
		}
	}

	return s.result(Dijkstra, found)
}

package search

import (
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/gridpath/grid"
)

// BreadthFirstSearch explores cells in non-decreasing hop count from start
// using a FIFO queue. A cell is marked visited when it is enqueued, so each
// cell enters the queue at most once and the first time End is dequeued its
// predecessor chain is a shortest route. Ties between equally short routes
// follow the N, E, S, W neighbor order.
//
// Complexity: O(W×H) time and memory.
func BreadthFirstSearch(g *grid.Grid, start, end grid.Coord, opts ...Option) (Result, error) {
	s, err := prepare(g, start, end, opts)
	if err != nil {
		return Result{}, err
	}

	q := queue.New[int]()
	s.visited[s.start] = true
	q.Enqueue(s.start)

	found := false
	for !q.Empty() {
		u := q.Dequeue()
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
			q.Enqueue(v)
		}
	}

	return s.result(BFS, found)
}

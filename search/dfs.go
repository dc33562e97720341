package search

import (
	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/gridpath/grid"
)

// DepthFirstSearch explores as deep as possible along each branch using an
// explicit LIFO stack. Cells are marked visited before they are pushed, which
// keeps every cell on the stack at most once and the predecessor chain
// acyclic. Neighbors are pushed in reverse so the northern branch is explored
// first. The route found is not necessarily the shortest.
//
// Complexity: O(W×H) time and memory.
func DepthFirstSearch(g *grid.Grid, start, end grid.Coord, opts ...Option) (Result, error) {
	s, err := prepare(g, start, end, opts)
	if err != nil {
		return Result{}, err
	}

	st := stack.New[int]()
	s.visited[s.start] = true
	st.Push(s.start)

	found := false
	for st.Size() > 0 {
		u := st.Pop()
		if err = s.expand(u); err != nil {
			return Result{}, err
		}
		if u == s.end {
			found = true
			break
		}
		nbrs := s.passable(u)
		for i := len(nbrs) - 1; i >= 0; i-- {
			v := nbrs[i]
			if s.visited[v] {
				continue
			}
			s.visited[v] = true
			s.prev[v] = u
			st.Push(v)
		}
	}

	return s.result(DFS, found)
}

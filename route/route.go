package route

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
)

// Reconstruct rebuilds the Start→End route from a predecessor table.
//
// prev is indexed by row-major cell index (y*width + x); prev[i] is the cell
// from which i was reached, or −1. The returned slice starts with start and
// ends with end.
//
// Complexity: O(L) time and memory for a route of L cells.
func Reconstruct(prev []int, width int, start, end grid.Coord) ([]grid.Coord, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width %d", ErrMissingPredecessor, width)
	}
	index := func(c grid.Coord) (int, bool) {
		i := c.Y*width + c.X
		return i, c.X >= 0 && c.X < width && c.Y >= 0 && i < len(prev)
	}
	si, ok := index(start)
	if !ok {
		return nil, fmt.Errorf("%w: start %s outside table", ErrMissingPredecessor, start)
	}
	cur, ok := index(end)
	if !ok {
		return nil, fmt.Errorf("%w: end %s outside table", ErrMissingPredecessor, end)
	}

	seen := mapset.New[int]()
	var rev []grid.Coord
	for {
		if seen.Has(cur) {
			return nil, fmt.Errorf("%w: cell %d repeats", ErrCycle, cur)
		}
		seen.Put(cur)
		rev = append(rev, grid.Coord{X: cur % width, Y: cur / width})
		if cur == si {
			break
		}
		p := prev[cur]
		if p < 0 || p >= len(prev) {
			return nil, fmt.Errorf("%w: cell %d has predecessor %d", ErrMissingPredecessor, cur, p)
		}
		cur = p
	}

	// reverse to get start → end
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}

// Length returns the number of unit steps along path.
func Length(path []grid.Coord) int {
	if len(path) == 0 {
		return 0
	}
	return len(path) - 1
}

// Paint marks every interior cell of path as grid.Path; Start and End keep
// their blocks. The route must begin at the grid's Start, finish at its End,
// move one orthogonal step at a time, never repeat a cell and never cross an
// Obstacle. Otherwise ErrInvalidPath is returned and g is left unchanged.
func Paint(g *grid.Grid, path []grid.Coord) error {
	if err := Validate(g, path); err != nil {
		return err
	}
	for _, c := range path[1 : len(path)-1] {
		if err := g.Set(c, grid.Path); err != nil {
			return fmt.Errorf("route: paint %s: %w", c, err)
		}
	}

	return nil
}

// Validate reports whether path can be painted onto g; see Paint.
func Validate(g *grid.Grid, path []grid.Coord) error {
	if g == nil {
		return fmt.Errorf("%w: nil grid", ErrInvalidPath)
	}
	if len(path) < 2 {
		return fmt.Errorf("%w: %d cells", ErrInvalidPath, len(path))
	}
	if s, ok := g.Start(); !ok || s != path[0] {
		return fmt.Errorf("%w: does not begin at Start", ErrInvalidPath)
	}
	if e, ok := g.End(); !ok || e != path[len(path)-1] {
		return fmt.Errorf("%w: does not finish at End", ErrInvalidPath)
	}

	seen := mapset.New[grid.Coord]()
	for i, c := range path {
		if !g.Passable(c) {
			return fmt.Errorf("%w: cell %s is blocked or out of bounds", ErrInvalidPath, c)
		}
		if seen.Has(c) {
			return fmt.Errorf("%w: cell %s repeats", ErrInvalidPath, c)
		}
		seen.Put(c)
		if i > 0 && !adjacent(path[i-1], c) {
			return fmt.Errorf("%w: %s → %s is not a single step", ErrInvalidPath, path[i-1], c)
		}
	}

	return nil
}

func adjacent(a, b grid.Coord) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx+dy*dy == 1
}

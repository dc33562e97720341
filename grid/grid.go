package grid

import "fmt"

// New constructs an all-Empty grid of the given size.
// Returns ErrDimensions if either side lies outside [MinSide, MaxSide].
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width < MinSide || width > MaxSide || height < MinSide || height > MaxSide {
		return nil, fmt.Errorf("%w: %dx%d not within [%d,%d]", ErrDimensions, width, height, MinSide, MaxSide)
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Block, width*height),
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Index maps c to its row-major index: y*Width + x.
// The caller is responsible for bounds; see InBounds.
func (g *Grid) Index(c Coord) int {
	return c.Y*g.width + c.X
}

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{X: idx % g.width, Y: idx / g.width}
}

// Get returns the block at c.
func (g *Grid) Get(c Coord) (Block, error) {
	if !g.InBounds(c) {
		return Empty, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}

	return g.cells[g.Index(c)], nil
}

// At returns the block stored at a row-major index without bounds checks.
func (g *Grid) At(idx int) Block {
	return g.cells[idx]
}

// Set writes b at c.
// Start and End must be placed with MarkStart/MarkEnd, endpoint cells
// cannot be overwritten, and Path never overwrites an Obstacle.
func (g *Grid) Set(c Coord, b Block) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	if b == Start || b == End {
		return fmt.Errorf("%w: Set(%s, %s)", ErrEndpointBlock, c, b)
	}
	i := g.Index(c)
	switch cur := g.cells[i]; {
	case cur == Start || cur == End:
		return fmt.Errorf("%w: %s holds %s", ErrPlacement, c, cur)
	case cur == Obstacle && b == Path:
		return fmt.Errorf("%w: %s", ErrPathOnObstacle, c)
	}
	g.cells[i] = b

	return nil
}

// Passable reports whether c is in bounds and not an Obstacle.
func (g *Grid) Passable(c Coord) bool {
	return g.InBounds(c) && g.cells[g.Index(c)] != Obstacle
}

// Neighbors returns the in-bounds axis-aligned neighbors of c, each paired
// with its current block, in the order N, E, S, W.
// Corner cells have two neighbors, edge cells three.
func (g *Grid) Neighbors(c Coord) ([]Neighbor, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	out := make([]Neighbor, 0, len(offsets4))
	for _, d := range offsets4 {
		n := Coord{X: c.X + d[0], Y: c.Y + d[1]}
		if !g.InBounds(n) {
			continue
		}
		out = append(out, Neighbor{Coord: n, Block: g.cells[g.Index(n)]})
	}

	return out, nil
}

// AppendNeighbors appends the row-major indices of the in-bounds neighbors of
// idx to dst, in the order N, E, S, W, and returns the extended slice.
// It does not allocate when dst has capacity for four more entries.
func (g *Grid) AppendNeighbors(dst []int, idx int) []int {
	x, y := idx%g.width, idx/g.width
	for _, d := range offsets4 {
		nx, ny := x+d[0], y+d[1]
		if nx < 0 || nx >= g.width || ny < 0 || ny >= g.height {
			continue
		}
		dst = append(dst, ny*g.width+nx)
	}

	return dst
}

// MarkStart designates c as the Start cell.
// Moving an existing Start resets its old cell to Empty.
func (g *Grid) MarkStart(c Coord) error {
	if err := g.checkEndpoint(c, Start); err != nil {
		return err
	}
	if g.hasStart {
		g.cells[g.Index(g.start)] = Empty
	}
	g.start, g.hasStart = c, true
	g.cells[g.Index(c)] = Start

	return nil
}

// MarkEnd designates c as the End cell.
// Moving an existing End resets its old cell to Empty.
func (g *Grid) MarkEnd(c Coord) error {
	if err := g.checkEndpoint(c, End); err != nil {
		return err
	}
	if g.hasEnd {
		g.cells[g.Index(g.end)] = Empty
	}
	g.end, g.hasEnd = c, true
	g.cells[g.Index(c)] = End

	return nil
}

// checkEndpoint validates an endpoint placement of kind b at c.
func (g *Grid) checkEndpoint(c Coord, b Block) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s at %s", ErrOutOfBounds, b, c)
	}
	switch g.cells[g.Index(c)] {
	case Obstacle:
		return fmt.Errorf("%w: %s on obstacle at %s", ErrPlacement, b, c)
	case Start:
		if b == End {
			return fmt.Errorf("%w: End coincides with Start at %s", ErrPlacement, c)
		}
	case End:
		if b == Start {
			return fmt.Errorf("%w: Start coincides with End at %s", ErrPlacement, c)
		}
	}

	return nil
}

// Start returns the Start coordinate and whether it has been placed.
func (g *Grid) Start() (Coord, bool) { return g.start, g.hasStart }

// End returns the End coordinate and whether it has been placed.
func (g *Grid) End() (Coord, bool) { return g.end, g.hasEnd }

// Count returns how many cells hold b.
func (g *Grid) Count(b Block) int {
	n := 0
	for _, c := range g.cells {
		if c == b {
			n++
		}
	}

	return n
}

// ClearPath resets every Path cell to Empty.
func (g *Grid) ClearPath() {
	for i, c := range g.cells {
		if c == Path {
			g.cells[i] = Empty
		}
	}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cp := *g
	cp.cells = make([]Block, len(g.cells))
	copy(cp.cells, g.cells)

	return &cp
}

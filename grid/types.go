package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrDimensions indicates a width or height outside [MinSide, MaxSide].
	ErrDimensions = errors.New("grid: dimensions out of range")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrPlacement indicates an invalid Start/End placement.
	ErrPlacement = errors.New("grid: invalid endpoint placement")
	// ErrPathOnObstacle indicates an attempt to paint Path over an Obstacle.
	ErrPathOnObstacle = errors.New("grid: path cannot overwrite an obstacle")
	// ErrEndpointBlock indicates Set was asked to write Start or End directly.
	ErrEndpointBlock = errors.New("grid: use MarkStart/MarkEnd for endpoints")
	// ErrEmptyGrid indicates a parsed layout has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: layout must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownGlyph indicates an unsupported character in a parsed layout.
	ErrUnknownGlyph = errors.New("grid: unknown layout glyph")
)

// Size limits for both width and height.
const (
	MinSide = 5
	MaxSide = 100
)

// Block is the content of a single cell.
type Block uint8

const (
	// Empty is a free, walkable cell.
	Empty Block = iota
	// Obstacle is an impassable cell.
	Obstacle
	// Start is the designated origin cell.
	Start
	// End is the designated goal cell.
	End
	// Path is a cell on a discovered route between Start and End.
	Path
)

// String returns the block name.
func (b Block) String() string {
	switch b {
	case Empty:
		return "Empty"
	case Obstacle:
		return "Obstacle"
	case Start:
		return "Start"
	case End:
		return "End"
	case Path:
		return "Path"
	default:
		return fmt.Sprintf("Block(%d)", uint8(b))
	}
}

// Coord is a cell position; X grows to the east, Y to the south.
type Coord struct {
	X, Y int
}

// String formats the coordinate as "x,y".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Neighbor pairs an adjacent coordinate with its current block.
type Neighbor struct {
	Coord Coord
	Block Block
}

// offsets4 enumerates N, E, S, W.
var offsets4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Grid is a fixed-size rectangular array of blocks.
// The zero value is not usable; construct with New or Parse.
type Grid struct {
	width, height int
	cells         []Block
	start, end    Coord
	hasStart      bool
	hasEnd        bool
}

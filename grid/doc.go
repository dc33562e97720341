// Package grid models a rectangular obstacle grid as an implicit,
// 4-connected, unit-cost graph.
//
// What:
//
//   - Grid stores one Block per cell in a flat row-major slice (index y*Width+x).
//   - Blocks are a closed set: Empty, Obstacle, Start, End, Path.
//   - Neighbors enumerates the axis-aligned in-bounds cells in the fixed
//     order N, E, S, W; search tie-breaking depends on this order.
//   - MarkStart/MarkEnd place the two endpoints and keep them off obstacles.
//   - Parse reads a hand-edited text layout ('.', '#', 'S', 'E', '*').
//
// Why:
//
//   - Search packages only need Index/Coordinate/Neighbors/Passable, so the
//     grid stays free of search logic and can be tested on its own.
//
// Complexity:
//
//   - New, Clone, Count, ClearPath: O(W×H) time and memory.
//   - Get, Set, Neighbors, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrDimensions:     width or height outside [MinSide, MaxSide].
//   - ErrOutOfBounds:    coordinate outside the grid.
//   - ErrPlacement:      Start/End on an obstacle, on each other, or duplicated.
//   - ErrPathOnObstacle: attempt to paint Path over an Obstacle.
//   - ErrEndpointBlock:  Set used to write Start or End.
//   - ErrEmptyGrid, ErrNonRectangular, ErrUnknownGlyph: Parse failures.
package grid

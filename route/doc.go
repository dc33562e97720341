// Package route turns the predecessor table left behind by a search into a
// Start→End route, and paints that route onto a grid.Grid.
//
// Reconstruction walks backwards from End through prev (row-major cell
// indices, −1 meaning "no predecessor") until it reaches Start, then reverses
// the collected cells. It is pure: the same table always yields the same
// route, and the table is never modified.
//
// Errors
//
//   - ErrMissingPredecessor: the chain stops (−1 or out-of-range index)
//     before reaching Start.
//   - ErrCycle: a cell repeats while walking the chain.
//
// Both wrap ErrReconstruction, so callers can treat every reconstruction
// failure as a single internal-invariant class with errors.Is.
//
// Painting (Paint) validates the whole route first and only then writes
// Path blocks, so a rejected route leaves the grid untouched.
package route

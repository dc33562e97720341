// SPDX-License-Identifier: MIT

// Package obstacle populates a grid.Grid with randomized obstacles.
//
// Generation runs in two phases:
//
//  1. Clusters: up to Placements rectangles, each retried at most Retries
//     times at a uniformly random top-left corner. A rectangle spans
//     (x1,y1)..(x1+w, y1+h) with w,h drawn from the density tier's
//     [MinSide, MaxSide]; it is accepted only if the far corner is in-grid,
//     and only its interior (the border ring excluded) becomes Obstacle.
//  2. Sprinkling: every remaining non-Obstacle cell turns into an Obstacle
//     independently with the tier's Chance.
//
// Termination is bounded by Placements×Retries draws plus one sweep over the
// grid, whatever the grid size or tier. Generation must run before Start/End
// are placed; Generate refuses grids that already carry an endpoint.
//
// Determinism: pass WithSeed or WithRand to reproduce a layout. Without an
// option the source is seeded from the clock.
package obstacle

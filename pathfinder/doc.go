// Package pathfinder wires one complete run together: it builds the grid
// described by a config.Config, runs the selected search and paints the
// route.
//
// Build order
//
//  1. Grid: parsed from cfg.Map, or an empty cfg.Width×cfg.Height grid.
//  2. Obstacles: generated with obstacle.Generate when cfg.Obstacles is set
//     and no map was given. Generation always precedes endpoint placement.
//  3. Endpoints: cfg.Start/cfg.End when given, else whatever the map marked,
//     else a uniformly random Empty cell. ErrNoRoom when too few Empty
//     cells remain.
//
// All randomness for a run comes from one math/rand source seeded with
// cfg.Seed; a zero seed is replaced with the current time, and the seed
// actually used is reported in Outcome.Seed so a run can be replayed.
//
// A route that is not found leaves the grid unpainted; that is a normal
// Outcome, not an error.
package pathfinder

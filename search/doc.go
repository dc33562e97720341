// Package search finds a route between two cells of a grid.Grid using one of
// six classic graph searches over the implicit 4-connected, unit-cost graph.
//
// What
//
//   - BFS:               FIFO frontier; shortest edge count.
//   - DFS:               LIFO frontier; any route, not necessarily shortest.
//   - Dijkstra:          min-heap on distance (lazy decrease-key); shortest.
//   - AStar:             indexed min-heap on f = g + h; shortest when h is
//     admissible (the default Manhattan heuristic is).
//   - GreedyBestFirst:   min-heap on h only; any route.
//   - BellmanFord:       repeated relaxation of every edge, at most W×H−1
//     passes, stopping early once a pass changes nothing; shortest.
//
// Every algorithm has the same contract, (Grid, Start, End) → Result, and Run
// dispatches on the closed Algorithm tag. Algorithms never mutate the grid;
// painting the route is left to route.Paint.
//
// Exploration state lives in flat slices indexed by the row-major cell index
// (visited, dist/g/f, prev with −1 meaning "no predecessor"), so no per-cell
// pointers are shared between tables.
//
// Determinism
//
//	Neighbors are enumerated N, E, S, W. Heap-ordered frontiers break score
//	ties by insertion order, so every run on the same grid is reproducible.
//
// Outcomes
//
//   - Found == true:  Path is a simple 4-connected Start→End route through
//     non-Obstacle cells; Cost == len(Path)−1.
//   - Found == false: the frontier was exhausted; Path is nil and err is nil.
//     "No path" is a normal outcome, not an error.
//
// Options
//
//   - WithContext(ctx):    checked once per expansion; cancellation aborts.
//   - WithOnExpand(fn):    hook invoked for every expanded cell, e.g. for an
//     external step-by-step visualizer.
//   - WithHeuristic(h):    replaces Manhattan for AStar and GreedyBestFirst.
//     A non-admissible heuristic voids AStar's optimality.
//
// Errors
//
//   - ErrNilGrid, grid.ErrOutOfBounds, ErrBlockedEndpoint, ErrSameEndpoints:
//     precondition failures.
//   - ErrUnknownAlgorithm: Run received a tag outside the closed set.
//   - ErrCorruptFrontier, route.ErrReconstruction: internal invariant
//     violations; callers should treat these as fatal.
//
// Complexity (N = W×H cells, at most 4N directed edges)
//
//   - BFS, DFS:                   O(N) time, O(N) memory.
//   - Dijkstra, AStar, Greedy:    O(N log N) time, O(N) memory.
//   - BellmanFord:                O(N²) worst case, O(N) memory.
package search

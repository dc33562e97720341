// Package gridpath finds routes across rectangular obstacle grids with six
// classic graph searches and draws the result.
//
// What is gridpath?
//
//	A small engine, split into leaf-first packages:
//		• grid:       Block/Coord/Grid model, 4-connected neighbors, text layouts
//		• obstacle:   randomized rectangle clusters plus sprinkled cells
//		• search:     BFS, DFS, Dijkstra, A*, Greedy Best-First, Bellman-Ford
//		• route:      predecessor-chain reconstruction and painting
//		• render:     plain-text and tcell terminal renderers
//		• config:     run description loaded through viper
//		• pathfinder: build → search → paint for one run
//
// The command in cmd/gridpath wires these to flags, GRIDPATH_* environment
// variables and an optional config file.
//
// Quick example:
//
//	g, _ := grid.New(5, 5)
//	res, _ := search.Run(g, search.AStar, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 4, Y: 4})
//	fmt.Println(res.Found, res.Cost) // true 8
//
// Movement is orthogonal with unit step cost. Diagonal moves, weighted
// terrain and replanning are not supported.
package gridpath

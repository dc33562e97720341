// Package config describes one gridpath run and loads it from viper.
//
// Sources, highest precedence first: command-line flags bound by the
// caller, environment variables prefixed GRIDPATH_ (GRIDPATH_WIDTH,
// GRIDPATH_ALGORITHM, ...), an optional config file, then Default().
//
// Keys
//
//	width, height   grid size, each in [5, 100]; ignored when map is set
//	algorithm       search tag or name: bfs, dfs, dijkstra, astar, greedy, bellmanford
//	density         obstacle tier: low, medium, high
//	obstacles       generate obstacles (bool)
//	start, end      optional "x,y" endpoints; random when empty
//	seed            RNG seed; 0 picks one from the clock
//	map             path to a text layout (see grid.Parse)
//	tui             draw on the terminal screen instead of printing text
//
// Load parses and validates in one step; everything it returns is safe to
// hand to pathfinder.Run.
package config

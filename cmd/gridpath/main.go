// Command gridpath builds an obstacle grid, finds a route between two cells
// with one of six search algorithms and prints the result.
//
//	gridpath --width 30 --height 15 --algorithm astar --density high
//	gridpath --map maze.txt --algorithm bfs --tui
//	GRIDPATH_ALGORITHM=dijkstra gridpath --seed 42
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gridpath: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}

// Package trek is a small toolkit for searching implicit graphs: state spaces
// that are never materialized and are explored through a neighbor function.
//
// What is inside?
//
//	search/      shared contract: Path, predecessor Tree, Stats and options
//	dfs/         depth-first search (LIFO frontier, visit-once)
//	bfs/         breadth-first search (FIFO frontier, shortest hop counts)
//	astar/       A* with lazy decrease-key; astar.Zero turns it into Dijkstra
//	gridgraph/   2-D grids as implicit graphs: points, headings, islands, rendering
//	cmd/trek/    CLI running the reference grid puzzles
//
// Every strategy takes the same shape:
//
//	res, ok := bfs.Search(neighbors, visit, starts)
//	path, res, ok := bfs.SearchPath(neighbors, visit, starts)
//
// States are any comparable Go value. The visitor returns (value, true) to stop;
// (zero, false) means the reachable states were exhausted. Paths come back
// terminal first; Path.Reversed gives start → terminal.
//
// Quick example, a 2×2 grid where moving right or down costs the entered cell:
//
//	1 3
//	2 1
//
//	path, cost, _ := astar.SearchPath(rightDown, stopAtCorner, astar.Zero[gridgraph.Point, int], starts)
//	// cost == 3, path == [(1,1) (0,1) (0,0)]
//
//	go get github.com/katalvlaran/trek
package trek

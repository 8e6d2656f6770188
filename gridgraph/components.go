package gridgraph

import (
	"iter"

	"github.com/katalvlaran/trek/bfs"
	"github.com/katalvlaran/trek/search"
)

// ConnectedComponents finds all contiguous regions ("islands") of cells for
// which isLand reports true, according to gg.Conn connectivity.
// Components are returned in row-major order of their first cell; the cells of
// each component are listed in breadth-first order from that first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph[T]) ConnectedComponents(isLand func(T) bool) [][]Point {
	assigned := make([]bool, len(gg.cells))
	neighbors := gg.landNeighbors(isLand)
	var comps [][]Point

	for i, v := range gg.cells {
		if assigned[i] || !isLand(v) {
			continue // water, or already part of an earlier island
		}
		var comp []Point
		bfs.Search(neighbors, func(p Point, _ int) (struct{}, bool) {
			assigned[gg.index(p)] = true
			comp = append(comp, p)
			return struct{}{}, false
		}, []Point{gg.Coordinate(i)})
		comps = append(comps, comp)
	}

	return comps
}

// landNeighbors restricts Neighbors to land cells.
func (gg *GridGraph[T]) landNeighbors(isLand func(T) bool) func(Point, int) iter.Seq[Point] {
	return func(p Point, _ int) iter.Seq[Point] {
		return func(yield func(Point) bool) {
			for n := range gg.Neighbors(p) {
				if isLand(gg.cells[gg.index(n)]) && !yield(n) {
					return
				}
			}
		}
	}
}

// Reachable counts the land cells reachable from start within maxSteps moves
// whose distance has the same parity as maxSteps. A walker that must take
// exactly maxSteps moves, and may step back and forth, can end on precisely
// those cells. start must be a land cell.
func (gg *GridGraph[T]) Reachable(isLand func(T) bool, start Point, maxSteps int) int {
	count := 0
	bfs.Search(gg.landNeighbors(isLand), func(_ Point, d int) (struct{}, bool) {
		if d%2 == maxSteps%2 {
			count++
		}
		return struct{}{}, false
	}, []Point{start}, search.WithMaxDepth(maxSteps))

	return count
}

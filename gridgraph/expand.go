package gridgraph

import (
	"iter"

	"github.com/katalvlaran/trek/astar"
)

// ExpandIsland finds a minimum-conversion path of water cells (isLand false)
// connecting any cell in component srcComp to any cell in component dstComp,
// as identified by ConnectedComponents(isLand). Each water-cell conversion costs 1.
// Returns the sequence of points representing the path (start land cell first,
// destination land cell last) and the total conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source uniform-cost search (astar with the Zero heuristic) from all srcComp cells:
//     • Moving into an existing land cell   → cost 0
//     • Moving into a water cell             → cost 1
//  3. Stop when any dstComp cell is expanded.
//  4. Reconstruct the path from the predecessor record.
//
// Complexity: O(W·H·d·log(W·H)).
// Memory:     O(W·H) for costs and predecessors.
func (gg *GridGraph[T]) ExpandIsland(isLand func(T) bool, srcComp, dstComp int) (path []Point, cost int, err error) {
	comps := gg.ConnectedComponents(isLand)
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	dstSet := make(map[Point]struct{}, len(comps[dstComp]))
	for _, p := range comps[dstComp] {
		dstSet[p] = struct{}{}
	}

	neighbors := func(p Point) iter.Seq2[Point, int] {
		return func(yield func(Point, int) bool) {
			for n := range gg.Neighbors(p) {
				step := 0
				if !isLand(gg.cells[gg.index(n)]) {
					step = 1
				}
				if !yield(n, step) {
					return
				}
			}
		}
	}

	trail, cost, ok := astar.SearchPath(neighbors, func(p Point, g int) (int, bool) {
		_, hit := dstSet[p]
		return g, hit
	}, astar.Zero[Point, int], comps[srcComp])
	if !ok {
		return nil, 0, ErrNoPath
	}

	return trail.Reversed(), cost, nil
}

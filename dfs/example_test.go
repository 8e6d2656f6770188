package dfs_test

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/trek/dfs"
)

// ExampleSearchPath walks a diamond-shaped dependency graph until it reaches "F".
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
//	 / \
//	E   F
func ExampleSearchPath() {
	edges := map[string][]string{
		"A": {"B", "C"},
		"B": {"D"},
		"C": {"D"},
		"D": {"E", "F"},
	}
	neighbors := func(s string, _ int) iter.Seq[string] { return slices.Values(edges[s]) }

	path, depth, ok := dfs.SearchPath(neighbors, func(s string, d int) (int, bool) {
		return d, s == "F"
	}, []string{"A"})
	if !ok {
		fmt.Println("unreachable")
		return
	}

	// C is pushed after B, so it is expanded first and D is discovered through C.
	fmt.Println(path.Reversed(), depth)
	// Output:
	// [A C D F] 3
}

// ExampleSearch counts the states reachable from a single start.
func ExampleSearch() {
	edges := map[int][]int{1: {2, 3}, 2: {4}, 3: {4}, 4: {1}, 5: {6}}
	count := 0
	_, found := dfs.Search(func(n, _ int) iter.Seq[int] { return slices.Values(edges[n]) },
		func(int, int) (struct{}, bool) {
			count++
			return struct{}{}, false
		}, []int{1})

	fmt.Println(count, found)
	// Output:
	// 4 false
}

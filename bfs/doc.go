// Package bfs implements breadth-first search over an implicit state graph.
//
// What
//
//   - Explore states in non-decreasing hop count from the nearest start state.
//   - Search(neighbors, visit, starts, opts...) returns the value produced by the
//     first visitor acceptance.
//   - SearchPath(...) also returns the path from the accepted state back to its start
//     (terminal → start); use Path.Reversed for start → terminal.
//
// Why
//
//   - Fewest-step answers on uniform-cost puzzles: mazes, step counting, flood fill.
//   - Multi-source "nearest of several origins" queries: seed every origin at once.
//
// Depth guarantee
//
//	The depth passed to the visitor equals the shortest number of edges from the
//	nearest start, provided every edge produced by the neighbor function has the same
//	cost. Because of this, a visitor may stop the run once the depth exceeds a bound:
//	every state at or below the bound has already been visited.
//
// Visited-on-enqueue
//
//	A state is marked when it is discovered, not when it is expanded. Two frontier
//	members at the same depth therefore never enqueue the same neighbor twice.
//
// Determinism
//
//	With a deterministic neighbor function the visit order and any returned path are
//	fully reproducible.
//
// Complexity:
//
//   - Time:   O(V + E) over the reachable states, plus callback cost.
//   - Memory: O(V) for the visited record and the queue.
package bfs

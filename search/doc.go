// Package search holds the contract shared by the implicit-graph search
// strategies in dfs, bfs and astar.
//
// What
//
//   - Path[P]: the sequence of states produced by the path-returning entry points,
//     ordered from the accepted (terminal) state back to the start state.
//   - Tree[P, C]: the visited / best-cost record. It maps every discovered state to
//     its predecessor and its depth or accumulated cost. Start states are stored as
//     explicit roots instead of pointing at themselves.
//   - Options: functional options understood by every strategy
//     (WithStats, WithMaxDepth, WithCapacity).
//   - Stats: counters describing a single search run.
//
// Conventions
//
//	Every strategy is a pair of functions:
//
//	    Search(neighbors, visit, starts, opts...)     (T, bool)
//	    SearchPath(neighbors, visit, starts, opts...) (Path[P], T, bool)
//
//	The visitor is called once per expanded state and returns (value, true) to stop
//	the search. A (zero, false) result means the frontier emptied without acceptance.
//
//	The engine holds no state between calls. All frontiers and records are created
//	per call, so independent searches may run on separate goroutines.
//
// Path order
//
//	Path is terminal → start. Callers that need start → terminal use Path.Reversed.
package search

// Command trek runs the reference grid puzzles on top of the trek search
// packages.
//
// Usage:
//
//	trek [flags] <command> [args]
//
// Commands:
//
//	crucible   - least heat-loss route with run-length limits (A*)
//	garden     - plots reachable in an exact number of steps (BFS)
//	version    - show version information
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

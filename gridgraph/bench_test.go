package gridgraph_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/trek/gridgraph"
)

// checker builds an n×n grid of alternating 3×3 land and water blocks.
func checker(n int) *gridgraph.GridGraph[rune] {
	var sb strings.Builder
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if (x/3+y/3)%2 == 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	gg, _ := gridgraph.Parse(sb.String(), gridgraph.Runes, gridgraph.DefaultGridOptions())

	return gg
}

func isRock(r rune) bool { return r == '#' }

// BenchmarkConnectedComponents measures island labelling on a 120×120 board.
func BenchmarkConnectedComponents(b *testing.B) {
	gg := checker(120)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents(isRock)
	}
}

// BenchmarkExpandIsland measures joining the first and last islands.
func BenchmarkExpandIsland(b *testing.B) {
	gg := checker(60)
	last := len(gg.ConnectedComponents(isRock)) - 1
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := gg.ExpandIsland(isRock, 0, last); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkReachable measures parity counting on an open board.
func BenchmarkReachable(b *testing.B) {
	gg := checker(120)
	open := func(r rune) bool { return true }
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.Reachable(open, gridgraph.Pt(60, 60), 64)
	}
}

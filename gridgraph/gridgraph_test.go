package gridgraph_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/trek/gridgraph"
)

// TestNewGridGraph_Invalid ensures construction rejects empty and jagged input.
func TestNewGridGraph_Invalid(t *testing.T) {
	if _, err := gridgraph.NewGridGraph[int](nil, gridgraph.DefaultGridOptions()); !errors.Is(err, gridgraph.ErrEmptyGrid) {
		t.Errorf("nil grid: got %v; want ErrEmptyGrid", err)
	}
	if _, err := gridgraph.NewGridGraph([][]int{{}}, gridgraph.DefaultGridOptions()); !errors.Is(err, gridgraph.ErrEmptyGrid) {
		t.Errorf("empty row: got %v; want ErrEmptyGrid", err)
	}
	if _, err := gridgraph.NewGridGraph([][]int{{1, 2}, {3}}, gridgraph.DefaultGridOptions()); !errors.Is(err, gridgraph.ErrNonRectangular) {
		t.Errorf("jagged grid: got %v; want ErrNonRectangular", err)
	}
}

// TestNewGridGraph_Copies checks the grid does not alias the caller's rows.
func TestNewGridGraph_Copies(t *testing.T) {
	rows := [][]int{{1, 2}, {3, 4}}
	gg, err := gridgraph.NewGridGraph(rows, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph: %v", err)
	}
	rows[0][0] = 99
	if v, _ := gg.At(gridgraph.Pt(0, 0)); v != 1 {
		t.Errorf("At(0,0) = %d after mutating input; want 1", v)
	}
	if gg.Width != 2 || gg.Height != 2 {
		t.Errorf("dims = %dx%d; want 2x2", gg.Width, gg.Height)
	}
}

func TestParse_Digits(t *testing.T) {
	gg, err := gridgraph.Parse("123\r\n456\n\n", gridgraph.Digits, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if gg.Width != 3 || gg.Height != 2 {
		t.Fatalf("dims = %dx%d; want 3x2", gg.Width, gg.Height)
	}
	if v, ok := gg.At(gridgraph.Pt(2, 1)); !ok || v != 6 {
		t.Errorf("At(2,1) = %d,%v; want 6,true", v, ok)
	}
	if _, ok := gg.At(gridgraph.Pt(3, 0)); ok {
		t.Error("At(3,0) reported in bounds")
	}
	if gg.Corner() != gridgraph.Pt(2, 1) {
		t.Errorf("Corner = %v; want {2 1}", gg.Corner())
	}
}

func TestParse_Errors(t *testing.T) {
	if _, err := gridgraph.Parse("12\n3x", gridgraph.Digits, gridgraph.DefaultGridOptions()); !errors.Is(err, gridgraph.ErrUnknownTile) {
		t.Errorf("bad digit: got %v; want ErrUnknownTile", err)
	}
	if _, err := gridgraph.Parse("12\n3", gridgraph.Digits, gridgraph.DefaultGridOptions()); !errors.Is(err, gridgraph.ErrNonRectangular) {
		t.Errorf("short row: got %v; want ErrNonRectangular", err)
	}
	if _, err := gridgraph.Parse("\n\n", gridgraph.Runes, gridgraph.DefaultGridOptions()); !errors.Is(err, gridgraph.ErrEmptyGrid) {
		t.Errorf("blank input: got %v; want ErrEmptyGrid", err)
	}
}

// TestNeighbors_Connectivity counts neighbors of corner, edge and interior
// cells of a 3×3 grid under both connectivities.
func TestNeighbors_Connectivity(t *testing.T) {
	rows := [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	tests := []struct {
		conn gridgraph.Connectivity
		p    gridgraph.Point
		want int
	}{
		{gridgraph.Conn4, gridgraph.Pt(0, 0), 2},
		{gridgraph.Conn4, gridgraph.Pt(1, 0), 3},
		{gridgraph.Conn4, gridgraph.Pt(1, 1), 4},
		{gridgraph.Conn8, gridgraph.Pt(0, 0), 3},
		{gridgraph.Conn8, gridgraph.Pt(1, 0), 5},
		{gridgraph.Conn8, gridgraph.Pt(1, 1), 8},
	}
	for _, tc := range tests {
		gg, err := gridgraph.NewGridGraph(rows, gridgraph.GridOptions{Conn: tc.conn})
		if err != nil {
			t.Fatalf("NewGridGraph: %v", err)
		}
		got := 0
		for n := range gg.Neighbors(tc.p) {
			if !gg.InBounds(n) {
				t.Errorf("neighbor %v of %v out of bounds", n, tc.p)
			}
			got++
		}
		if got != tc.want {
			t.Errorf("conn=%d p=%v: %d neighbors; want %d", tc.conn, tc.p, got, tc.want)
		}
	}
}

// TestNeighbors_Order verifies Conn4 neighbors follow Up, Right, Down, Left.
func TestNeighbors_Order(t *testing.T) {
	gg, _ := gridgraph.NewGridGraph([][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, gridgraph.DefaultGridOptions())
	var got []gridgraph.Point
	for n := range gg.Neighbors(gridgraph.Pt(1, 1)) {
		got = append(got, n)
	}
	want := []gridgraph.Point{gridgraph.Pt(1, 0), gridgraph.Pt(2, 1), gridgraph.Pt(1, 2), gridgraph.Pt(0, 1)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("neighbors = %v; want %v", got, want)
	}
}

func TestCellsAndFind(t *testing.T) {
	gg, err := gridgraph.Parse("..\n.S", gridgraph.Runes, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var order []gridgraph.Point
	for p := range gg.Cells() {
		order = append(order, p)
	}
	want := []gridgraph.Point{gridgraph.Pt(0, 0), gridgraph.Pt(1, 0), gridgraph.Pt(0, 1), gridgraph.Pt(1, 1)}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("Cells order = %v; want %v", order, want)
	}
	p, ok := gg.Find(func(r rune) bool { return r == 'S' })
	if !ok || p != gridgraph.Pt(1, 1) {
		t.Errorf("Find(S) = %v,%v; want {1 1},true", p, ok)
	}
	if _, ok := gg.Find(func(r rune) bool { return r == '#' }); ok {
		t.Error("Find(#) reported a match")
	}
	if gg.Coordinate(3) != gridgraph.Pt(1, 1) {
		t.Errorf("Coordinate(3) = %v; want {1 1}", gg.Coordinate(3))
	}
}

func TestDirection(t *testing.T) {
	for _, d := range gridgraph.Directions {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: double opposite = %v", d, d.Opposite().Opposite())
		}
		if d.TurnRight().TurnLeft() != d {
			t.Errorf("%v: right then left = %v", d, d.TurnRight().TurnLeft())
		}
		sum := d.Delta().Add(d.Opposite().Delta())
		if sum != (gridgraph.Point{}) {
			t.Errorf("%v: delta + opposite delta = %v", d, sum)
		}
	}
	if gridgraph.Up.TurnRight() != gridgraph.Right || gridgraph.Left.TurnRight() != gridgraph.Up {
		t.Error("TurnRight does not rotate clockwise")
	}
	if gridgraph.Down.String() != "down" {
		t.Errorf("Down.String() = %q", gridgraph.Down.String())
	}
}

func TestPoint(t *testing.T) {
	p := gridgraph.Pt(2, 3)
	if got := p.Step(gridgraph.Up, 2); got != gridgraph.Pt(2, 1) {
		t.Errorf("Step(Up, 2) = %v; want {2 1}", got)
	}
	if got := p.Step(gridgraph.Left, 3); got != gridgraph.Pt(-1, 3) {
		t.Errorf("Step(Left, 3) = %v; want {-1 3}", got)
	}
	if d := p.Manhattan(gridgraph.Pt(-1, 7)); d != 7 {
		t.Errorf("Manhattan = %d; want 7", d)
	}
}

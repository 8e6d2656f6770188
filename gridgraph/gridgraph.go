// Package gridgraph provides utilities to treat a rectangular 2D grid of cells
// as an implicit graph for the search packages. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Parsing text puzzles into typed grids
//   - Identification of connected components of "land" cells
//   - Minimal-conversion expansions between components
//   - Terminal rendering with a highlighted path
package gridgraph

import (
	"fmt"
	"iter"
	"strings"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// indexed values[y][x]. It copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph[T any](values [][]T, opts GridOptions) (*GridGraph[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([]T, 0, w*h)
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		cells = append(cells, row...)
	}
	// Precompute neighbor offsets based on connectivity
	var offsets []Point
	if opts.Conn == Conn8 {
		offsets = []Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph[T]{
		Width:           w,
		Height:          h,
		Conn:            opts.Conn,
		cells:           cells,
		neighborOffsets: offsets,
	}, nil
}

// Parse builds a grid from newline-separated text, decoding every rune with
// decode. Blank lines and trailing carriage returns are ignored. Decoder errors
// are returned wrapped with the offending position.
func Parse[T any](input string, decode func(r rune) (T, error), opts GridOptions) (*GridGraph[T], error) {
	var rows [][]T
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		row := make([]T, 0, len(line))
		for x, r := range []rune(line) {
			v, err := decode(r)
			if err != nil {
				return nil, fmt.Errorf("gridgraph: cell (%d,%d): %w", x, len(rows), err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	return NewGridGraph(rows, opts)
}

// Runes decodes any rune as itself.
func Runes(r rune) (rune, error) { return r, nil }

// Digits decodes '0'..'9' into their integer value.
func Digits(r rune) (int, error) {
	if r < '0' || r > '9' {
		return 0, fmt.Errorf("%w: %q is not a digit", ErrUnknownTile, r)
	}
	return int(r - '0'), nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph[T]) InBounds(p Point) bool {
	return p.X >= 0 && p.X < gg.Width && p.Y >= 0 && p.Y < gg.Height
}

// At returns the value stored at p; ok is false outside the grid.
func (gg *GridGraph[T]) At(p Point) (v T, ok bool) {
	if !gg.InBounds(p) {
		return v, false
	}
	return gg.cells[gg.index(p)], true
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph[T]) NeighborOffsets() []Point {
	return gg.neighborOffsets
}

// Neighbors yields the in-bounds neighbors of p in offset order. Combine it with
// a cell predicate to build a search neighbor function.
func (gg *GridGraph[T]) Neighbors(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, d := range gg.neighborOffsets {
			n := p.Add(d)
			if gg.InBounds(n) && !yield(n) {
				return
			}
		}
	}
}

// Cells yields every point with its value in row-major order.
func (gg *GridGraph[T]) Cells() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for i, v := range gg.cells {
			if !yield(gg.Coordinate(i), v) {
				return
			}
		}
	}
}

// Find returns the first point, in row-major order, whose value satisfies match.
func (gg *GridGraph[T]) Find(match func(T) bool) (Point, bool) {
	for p, v := range gg.Cells() {
		if match(v) {
			return p, true
		}
	}
	return Point{}, false
}

// Corner returns the bottom-right cell.
func (gg *GridGraph[T]) Corner() Point {
	return Point{gg.Width - 1, gg.Height - 1}
}

// index maps p to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph[T]) index(p Point) int {
	return p.Y*gg.Width + p.X
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (gg *GridGraph[T]) Coordinate(idx int) Point {
	return Point{idx % gg.Width, idx / gg.Width}
}

// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/trek.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrUnknownTile indicates a character the tile decoder does not recognize.
	ErrUnknownTile = errors.New("gridgraph: unknown tile")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity for Neighbors.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// Point is a cell coordinate. X grows to the right, Y grows downward.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Step returns p moved n cells in direction d.
func (p Point) Step(d Direction, n int) Point {
	delta := d.Delta()
	return Point{p.X + n*delta.X, p.Y + n*delta.Y}
}

// Manhattan returns the L1 distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction is one of the four orthogonal headings.
type Direction uint8

const (
	Up    Direction = iota // toward smaller Y
	Right                  // toward larger X
	Down                   // toward larger Y
	Left                   // toward smaller X
)

// Directions lists the headings clockwise starting at Up.
var Directions = [4]Direction{Up, Right, Down, Left}

var deltas = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Delta returns the unit offset of d.
func (d Direction) Delta() Point { return deltas[d&3] }

// Opposite returns the heading pointing the other way.
func (d Direction) Opposite() Direction { return (d + 2) & 3 }

// TurnRight returns d rotated 90° clockwise.
func (d Direction) TurnRight() Direction { return (d + 1) & 3 }

// TurnLeft returns d rotated 90° counter-clockwise.
func (d Direction) TurnLeft() Direction { return (d + 3) & 3 }

func (d Direction) String() string {
	switch d & 3 {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "left"
	}
}

// GridGraph treats a rectangular 2D grid of T as an implicit graph. It is
// immutable once built. Width and Height define dimensions.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph[T any] struct {
	Width, Height   int
	Conn            Connectivity
	cells           []T // row-major
	neighborOffsets []Point
}

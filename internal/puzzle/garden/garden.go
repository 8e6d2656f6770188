// Package garden counts the garden plots an elf can stand on after walking an
// exact number of steps from the start tile, moving one plot up, down, left or
// right per step and never onto rock.
package garden

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/trek/gridgraph"
)

var (
	// ErrNoStart indicates the map has no 'S' tile.
	ErrNoStart = errors.New("garden: map has no start tile")
	// ErrManyStarts indicates the map has more than one 'S' tile.
	ErrManyStarts = errors.New("garden: map has more than one start tile")
	// ErrNegativeSteps indicates a negative step budget.
	ErrNegativeSteps = errors.New("garden: step count must be non-negative")
)

// Tile is one map cell.
type Tile uint8

const (
	Plot  Tile = iota // '.'
	Rock              // '#'
	Start             // 'S', also a plot
)

// DecodeTile maps '.', '#' and 'S' to tiles.
func DecodeTile(r rune) (Tile, error) {
	switch r {
	case '.':
		return Plot, nil
	case '#':
		return Rock, nil
	case 'S':
		return Start, nil
	}
	return 0, fmt.Errorf("%w: %q", gridgraph.ErrUnknownTile, r)
}

// Glyph is the inverse of DecodeTile.
func (t Tile) Glyph() rune {
	switch t {
	case Rock:
		return '#'
	case Start:
		return 'S'
	default:
		return '.'
	}
}

func walkable(t Tile) bool { return t != Rock }

// Map is a parsed garden with its start tile.
type Map struct {
	Grid  *gridgraph.GridGraph[Tile]
	Start gridgraph.Point
}

// Parse reads a garden map and locates its single start tile.
func Parse(input string) (*Map, error) {
	g, err := gridgraph.Parse(input, DecodeTile, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, fmt.Errorf("garden: parse: %w", err)
	}
	m := &Map{Grid: g}
	found := 0
	for p, t := range g.Cells() {
		if t == Start {
			m.Start = p
			found++
		}
	}
	switch {
	case found == 0:
		return nil, ErrNoStart
	case found > 1:
		return nil, fmt.Errorf("%w: found %d", ErrManyStarts, found)
	}

	return m, nil
}

// Option configures Count.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger receiving debug output. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Count returns how many plots can be the end of a walk of exactly steps steps.
func (m *Map) Count(steps int, opts ...Option) (int, error) {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	if steps < 0 {
		return 0, fmt.Errorf("%w: got %d", ErrNegativeSteps, steps)
	}

	n := m.Grid.Reachable(walkable, m.Start, steps)
	o.logger.Debug("garden plots counted",
		slog.Int("steps", steps),
		slog.Any("start", m.Start),
		slog.Int("plots", n))

	return n, nil
}

// Package crucible finds the least heat-loss route for a crucible pushed
// across a city block map. The crucible may move at most maxRun blocks in one
// direction before it must turn, must move at least minRun blocks before it
// may turn or stop, and never reverses. Entering a block costs its digit.
//
// The search runs A* over (point, heading, run length) states, which is why
// the same block can be reached several times at different costs.
package crucible

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/katalvlaran/trek/astar"
	"github.com/katalvlaran/trek/gridgraph"
	"github.com/katalvlaran/trek/search"
)

var (
	// ErrNoRoute indicates the goal block cannot be reached under the run limits.
	ErrNoRoute = errors.New("crucible: no route to the goal block")
	// ErrBadRun indicates inconsistent run-length limits.
	ErrBadRun = errors.New("crucible: run limits must satisfy 0 <= min <= max and max >= 1")
)

// State is one search node: where the crucible stands, where it is heading,
// and how many blocks it has moved in a straight line.
type State struct {
	At      gridgraph.Point
	Heading gridgraph.Direction
	Run     int
}

// Result is a solved route.
type Result struct {
	// HeatLoss is the summed digit of every entered block.
	HeatLoss int
	// Route lists the visited blocks from the top-left corner to the goal.
	Route []gridgraph.Point
	// Stats carries the A* counters of the run.
	Stats search.Stats
}

// Option configures Solve.
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

// Parse reads a digit map, one row per line.
func Parse(input string) (*gridgraph.GridGraph[int], error) {
	city, err := gridgraph.Parse(input, gridgraph.Digits, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, fmt.Errorf("crucible: parse: %w", err)
	}

	return city, nil
}

// Solve moves the crucible from the top-left block to the bottom-right one.
// It starts facing both right and down with an empty run, so the first move
// may go either way. The heuristic is the manhattan distance to the goal scaled
// by the cheapest digit on the map; a map holding a 0 falls back to uniform-cost search.
func Solve(city *gridgraph.GridGraph[int], minRun, maxRun int, opts ...Option) (Result, error) {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	if minRun < 0 || maxRun < 1 || minRun > maxRun {
		return Result{}, fmt.Errorf("%w: got min=%d max=%d", ErrBadRun, minRun, maxRun)
	}

	goal := city.Corner()
	floor := cheapest(city)
	starts := []State{
		{At: gridgraph.Pt(0, 0), Heading: gridgraph.Right},
		{At: gridgraph.Pt(0, 0), Heading: gridgraph.Down},
	}
	var stats search.Stats

	o.logger.Debug("crucible search starting",
		slog.Int("width", city.Width), slog.Int("height", city.Height),
		slog.Int("min_run", minRun), slog.Int("max_run", maxRun))

	path, loss, ok := astar.SearchPath(
		moves(city, minRun, maxRun),
		func(s State, g int) (int, bool) {
			return g, s.At == goal && s.Run >= minRun
		},
		func(s State) int { return floor * s.At.Manhattan(goal) },
		starts,
		search.WithStats(&stats),
		search.WithCapacity(city.Width*city.Height*4),
	)
	if !ok {
		o.logger.Debug("crucible search exhausted", slog.Int("expanded", stats.Expanded))
		return Result{Stats: stats}, ErrNoRoute
	}

	route := make([]gridgraph.Point, 0, len(path))
	for _, s := range path.Reversed() {
		route = append(route, s.At)
	}
	o.logger.Debug("crucible search finished",
		slog.Int("heat_loss", loss),
		slog.Int("route_len", len(route)),
		slog.Int("expanded", stats.Expanded),
		slog.Int("stale", stats.Stale))

	return Result{HeatLoss: loss, Route: route, Stats: stats}, nil
}

// cheapest returns the smallest digit on the map. Every remaining block costs
// at least that much, so floor × manhattan distance never overestimates.
func cheapest(city *gridgraph.GridGraph[int]) int {
	least := 9
	for _, v := range city.Cells() {
		least = min(least, v)
	}

	return least
}

// moves yields the legal successors of a state with the heat lost entering
// the next block:
//  1. Straight on, while the run is below maxRun.
//  2. A quarter turn either way, once the run reached minRun.
//
// Reversing is never allowed.
func moves(city *gridgraph.GridGraph[int], minRun, maxRun int) func(State) iter.Seq2[State, int] {
	return func(s State) iter.Seq2[State, int] {
		return func(yield func(State, int) bool) {
			for _, d := range gridgraph.Directions {
				next := State{At: s.At.Add(d.Delta()), Heading: d, Run: 1}
				switch {
				case d == s.Heading:
					if s.Run >= maxRun {
						continue
					}
					next.Run = s.Run + 1
				case d == s.Heading.Opposite():
					continue
				case s.Run < minRun:
					continue
				}
				loss, ok := city.At(next.At)
				if !ok {
					continue
				}
				if !yield(next, loss) {
					return
				}
			}
		}
	}
}

package search

// Option configures a search run via functional arguments.
type Option func(*Options)

// Options holds the tunables shared by all strategies.
type Options struct {
	// MaxDepth, if non-negative, stops discovery of states deeper than MaxDepth.
	// Only the unweighted strategies (dfs, bfs) honor it. Default is -1 (no limit).
	MaxDepth int

	// Capacity pre-sizes the visited record. Zero lets the map grow on demand.
	Capacity int

	// Stats, if non-nil, receives the run counters when the search returns.
	Stats *Stats
}

// Stats reports counters for a single search run.
type Stats struct {
	// Expanded counts visitor invocations.
	Expanded int

	// Discovered counts frontier pushes, including start states.
	Discovered int

	// Stale counts A* queue entries skipped because a cheaper cost was recorded
	// after they were pushed. Always zero for dfs and bfs.
	Stale int

	// MaxFrontier is the largest frontier size observed.
	MaxFrontier int
}

// DefaultOptions returns Options with no depth limit, no capacity hint and
// no stats sink.
func DefaultOptions() Options {
	return Options{
		MaxDepth: -1,
		Capacity: 0,
		Stats:    nil,
	}
}

// Build applies opts on top of DefaultOptions.
func Build(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithMaxDepth limits discovery to states at most d edges away from a start.
// A negative d disables the limit.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			d = -1
		}
		o.MaxDepth = d
	}
}

// WithCapacity hints the expected number of discovered states.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Capacity = n
		}
	}
}

// WithStats installs a sink for the run counters.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}

// Allows reports whether a state at depth d may be discovered.
func (o Options) Allows(d int) bool {
	return o.MaxDepth < 0 || d <= o.MaxDepth
}

// Publish copies s into the configured sink, if any.
func (o Options) Publish(s Stats) {
	if o.Stats != nil {
		*o.Stats = s
	}
}

// Frontier records a frontier size observation.
func (s *Stats) Frontier(n int) {
	if n > s.MaxFrontier {
		s.MaxFrontier = n
	}
}

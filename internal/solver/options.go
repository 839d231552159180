package solver

import "runtime"

// GodsNumber is the largest optimal solution length of any 3x3x3 state.
const GodsNumber = 20

// Option configures a solver.
type Option func(*config)

type config struct {
	workers   int
	nearDepth int
	maxDepth  int
	progress  func(Progress)
}

func defaultConfig() *config {
	return &config{
		workers:   runtime.NumCPU(),
		nearDepth: 1,
		maxDepth:  GodsNumber,
	}
}

func newConfig(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithWorkers sets how many goroutines expand a breadth-first layer.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithNearDepth sets how many moves from solved the near-solution lookup
// covers. Each extra move multiplies its size by about thirteen.
func WithNearDepth(depth int) Option {
	return func(c *config) {
		if depth >= 0 {
			c.nearDepth = depth
		}
	}
}

// WithMaxDepth lowers the depth ceiling of the 3x3x3 search. It cannot be
// raised beyond GodsNumber. A state that needs more moves than the ceiling
// fails with ErrNoSolution.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 && depth < GodsNumber {
			c.maxDepth = depth
		}
	}
}

// WithProgress registers a callback invoked after every search layer or
// deepening iteration.
func WithProgress(fn func(Progress)) Option {
	return func(c *config) {
		c.progress = fn
	}
}

// Progress reports search state between layers.
type Progress struct {
	Depth int // layer or bound just finished
	Nodes int // states expanded so far
}

func (c *config) report(depth, nodes int) {
	if c.progress != nil {
		c.progress(Progress{Depth: depth, Nodes: nodes})
	}
}

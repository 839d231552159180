package cubesolver

import "runtime"

// Option configures a Solver.
type Option func(*config)

type config struct {
	tableDir  string
	workers   int
	nearDepth int
}

func defaultConfig() *config {
	return &config{
		workers:   runtime.NumCPU(),
		nearDepth: 1,
	}
}

// WithTableDir sets the directory holding the 3x3x3 pattern tables.
// Without it Solve3x3 returns ErrTablesNotLoaded.
func WithTableDir(dir string) Option {
	return func(c *config) {
		c.tableDir = dir
	}
}

// WithWorkers sets how many goroutines the 2x2x2 search uses.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithNearDepth sets how many moves from solved the 3x3x3 search finishes
// by lookup instead of search. Depth 3 costs a few hundred megabytes.
func WithNearDepth(depth int) Option {
	return func(c *config) {
		if depth >= 0 {
			c.nearDepth = depth
		}
	}
}

package cubesolver

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/SeamusWaldron/cubesolver/internal/solver"
	"github.com/SeamusWaldron/cubesolver/internal/tables"
)

// Result is a solution found by a Solver.
type Result struct {
	// RunID identifies the solve in logs.
	RunID uuid.UUID
	Moves []Move
	// Nodes counts the states the search generated.
	Nodes   int
	Elapsed time.Duration
	// Reorientation is the whole-cube rotation, such as "x y2", a solved
	// 2x2x2 ends up in. It is empty when none is needed.
	Reorientation string
}

// Solver solves cubes. The 3x3x3 pattern tables are loaded on first use
// and shared by later solves. A Solver is safe for concurrent use.
type Solver struct {
	cfg *config

	pocket *solver.Solver2

	mu       sync.Mutex
	standard *solver.Solver3
}

// NewSolver creates a solver.
func NewSolver(opts ...Option) *Solver {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Solver{
		cfg:    cfg,
		pocket: solver.NewSolver2(solver.WithWorkers(cfg.workers)),
	}
}

// Solve dispatches on the cube size.
func (s *Solver) Solve(ctx context.Context, c Cube) (Result, error) {
	switch c := c.(type) {
	case *Cube2x2:
		return s.Solve2x2(ctx, c)
	case *Cube3x3:
		return s.Solve3x3(ctx, c)
	}
	return Result{}, ErrUnsupportedSize
}

// Solve2x2 returns an optimal solution.
func (s *Solver) Solve2x2(ctx context.Context, c *Cube2x2) (Result, error) {
	res := Result{RunID: uuid.New()}
	start := time.Now()
	sol, err := s.pocket.Solve(ctx, c.state)
	if err != nil {
		return Result{}, errors.Wrapf(err, "solve 2x2 %s", res.RunID)
	}
	res.Moves = sol.Moves
	res.Nodes = sol.Nodes
	res.Elapsed = time.Since(start)
	res.Reorientation = sol.Rotation.String()
	klog.V(1).Infof("run %s: 2x2 in %d moves (%v)", res.RunID, len(res.Moves), res.Elapsed)
	return res, nil
}

// Solve3x3 returns a solution of at most 20 moves. It loads the pattern
// tables on first call.
func (s *Solver) Solve3x3(ctx context.Context, c *Cube3x3) (Result, error) {
	std, err := s.standardSolver()
	if err != nil {
		return Result{}, err
	}

	res := Result{RunID: uuid.New()}
	start := time.Now()
	sol, err := std.Solve(ctx, c.state)
	if err != nil {
		return Result{}, errors.Wrapf(err, "solve 3x3 %s", res.RunID)
	}
	res.Moves = sol.Moves
	res.Nodes = sol.Nodes
	res.Elapsed = time.Since(start)
	klog.V(1).Infof("run %s: 3x3 in %d moves (%v)", res.RunID, len(res.Moves), res.Elapsed)
	return res, nil
}

// LoadTables loads the 3x3x3 pattern tables now rather than on the first
// Solve3x3.
func (s *Solver) LoadTables() error {
	_, err := s.standardSolver()
	return err
}

func (s *Solver) standardSolver() (*solver.Solver3, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.standard != nil {
		return s.standard, nil
	}
	if s.cfg.tableDir == "" {
		return nil, ErrTablesNotLoaded
	}
	h, err := tables.LoadDir(s.cfg.tableDir)
	if err != nil {
		return nil, errors.Wrapf(ErrTablesNotLoaded, "%v", err)
	}
	klog.Infof("loaded pattern tables from %s", s.cfg.tableDir)
	s.standard = solver.NewSolver3(h, solver.WithNearDepth(s.cfg.nearDepth))
	return s.standard, nil
}

package solver

import (
	"context"
	"math"

	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// Heuristic gives an admissible lower bound on the moves that solve c.
type Heuristic interface {
	LowerBound(c cube.Cube3) int
}

// Solver3 solves the 3x3x3 with iterative-deepening A*. It is safe for
// concurrent use once built; the heuristic must be too.
type Solver3 struct {
	cfg  *config
	h    Heuristic
	near map[cube.Key3][]types.Move
}

// NewSolver3 builds a solver and its near-solution lookup.
func NewSolver3(h Heuristic, opts ...Option) *Solver3 {
	cfg := newConfig(opts)
	return &Solver3{cfg: cfg, h: h, near: nearSolutions(cfg.nearDepth)}
}

// frame is a state waiting on the depth-first stack with the move that
// produced it and its depth.
type frame struct {
	state cube.Cube3
	move  uint8
	depth int
	f     int // depth + lower bound
}

const noMove = math.MaxUint8

const ctxCheckInterval = 1 << 14

// ErrNoSolution is returned when the deepening bound passes the depth
// ceiling. With an admissible heuristic and the default ceiling it does not
// happen.
var ErrNoSolution = errors.New("solver: no solution within depth ceiling")

// Solve returns a solution of at most GodsNumber moves, or ErrNoSolution if
// none fits under the configured ceiling.
func (s *Solver3) Solve(ctx context.Context, scrambled cube.Cube3) (Solution, error) {
	if finish, ok := s.near[scrambled.Key()]; ok {
		return Solution{Moves: append([]types.Move{}, finish...)}, nil
	}

	var (
		path   [GodsNumber]types.Move
		stack  []frame
		nodes  int
		popped int
	)
	// Children of one node are ranked so that the lowest bound ends on top
	// of the stack.
	children := priorityqueue.NewWith(func(a, b interface{}) int {
		return b.(frame).f - a.(frame).f
	})

	bound := s.h.LowerBound(scrambled)
	for {
		if bound > s.cfg.maxDepth {
			if bound == math.MaxInt {
				return Solution{Nodes: nodes}, errors.Wrapf(ErrNoSolution, "search space exhausted at depth %d", s.cfg.maxDepth)
			}
			return Solution{Nodes: nodes}, errors.Wrapf(ErrNoSolution, "search bound %d exceeds %d", bound, s.cfg.maxDepth)
		}
		nextBound := math.MaxInt

		push := func(parent frame) {
			depth := parent.depth + 1
			for t := uint8(0); t < types.NumMoves; t++ {
				if parent.move != noMove && t/3 == parent.move/3 {
					continue
				}
				child := parent.state.ApplyToken(t)
				f := depth + s.h.LowerBound(child)
				if f > bound {
					nextBound = min(nextBound, f)
					continue
				}
				children.Enqueue(frame{state: child, move: t, depth: depth, f: f})
			}
			nodes += children.Size()
			for !children.Empty() {
				v, _ := children.Dequeue()
				stack = append(stack, v.(frame))
			}
		}

		push(frame{state: scrambled, move: noMove})
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			path[top.depth-1] = types.MoveFromToken(top.move)

			if finish, ok := s.near[top.state.Key()]; ok && top.depth+len(finish) <= s.cfg.maxDepth {
				moves := make([]types.Move, 0, top.depth+len(finish))
				moves = append(append(moves, path[:top.depth]...), finish...)
				klog.V(1).Infof("3x3 solved in %d moves, %d nodes", len(moves), nodes)
				return Solution{Moves: moves, Nodes: nodes}, nil
			}

			if popped++; popped%ctxCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					return Solution{}, err
				}
			}
			if top.depth < s.cfg.maxDepth {
				push(top)
			}
		}

		klog.V(1).Infof("3x3 bound %d exhausted: %d nodes, next bound %d", bound, nodes, nextBound)
		s.cfg.report(bound, nodes)
		if err := ctx.Err(); err != nil {
			return Solution{}, err
		}
		bound = nextBound
	}
}

package solver

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/plan-systems/klog"
	"golang.org/x/exp/slices"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/notation"
	"github.com/SeamusWaldron/cubesolver/internal/partmap"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// Solver2 solves the 2x2x2 by growing one search frontier from the
// scrambled cube and one from the solved cube, a layer at a time and
// alternating sides, until they meet. States are compared up to
// whole-cube rotation.
type Solver2 struct {
	cfg *config
}

func NewSolver2(opts ...Option) *Solver2 {
	return &Solver2{cfg: newConfig(opts)}
}

// node2 records how a state was first reached: the parent's key and the
// move token applied to it. The root has no move.
type node2 struct {
	parent cube.Key2
	move   int8
	state  cube.Cube2
}

type side2 = partmap.Map[cube.Key2, node2]

type meeting struct {
	key     cube.Key2 // state present in both frontiers
	parent  cube.Key2 // its parent on the side that found the meeting
	move    uint8
	forward bool
}

type layerSearch struct {
	active, other *side2
	forward       bool

	found atomic.Bool
	meet  meeting
}

func (s *Solver2) Solve(ctx context.Context, scrambled cube.Cube2) (Solution, error) {
	if scrambled.IsSolved() {
		rot, _ := scrambled.Orientation()
		return Solution{Moves: []types.Move{}, Nodes: 1, Rotation: rot}, nil
	}

	numPart := s.cfg.workers * 16
	solved := cube.Solved2()
	fwd := partmap.New(scrambled.Key(), node2{move: -1, state: scrambled}, numPart)
	bwd := partmap.New(solved.Key(), node2{move: -1, state: solved}, numPart)

	for layer := 0; ; layer++ {
		if err := ctx.Err(); err != nil {
			return Solution{}, err
		}

		forward := layer%2 == 0
		if fwd.SourceSize() == 0 {
			forward = false
		} else if bwd.SourceSize() == 0 {
			forward = true
		}
		ls := &layerSearch{active: fwd, other: bwd, forward: forward}
		if !forward {
			ls.active, ls.other = bwd, fwd
		}
		if ls.active.SourceSize() == 0 {
			panic("solver: 2x2x2 search exhausted both frontiers")
		}

		s.expand(ctx, ls)
		nodes := fwd.Size() + bwd.Size()
		klog.V(1).Infof("2x2 layer %d forward=%v: %d states", layer+1, forward, nodes)
		s.cfg.report(layer+1, nodes)

		if ls.found.Load() {
			return s.join(scrambled, fwd, bwd, ls.meet, nodes), nil
		}
		ls.active.SwapTargets()
	}
}

func (s *Solver2) expand(ctx context.Context, ls *layerSearch) {
	numPart := ls.active.NumPart()
	var wg sync.WaitGroup
	wg.Add(s.cfg.workers)
	for i := 0; i < s.cfg.workers; i++ {
		go func(idx int) {
			defer wg.Done()
			for j := idx; j < numPart; j += s.cfg.workers {
				if ls.found.Load() || ctx.Err() != nil {
					return
				}
				for _, key := range ls.active.Source(j) {
					n, _ := ls.active.Load(key)
					for t := uint8(0); t < types.NumMoves; t++ {
						child := n.state.ApplyToken(t)
						ck := child.Key()
						if _, ok := ls.other.Load(ck); ok {
							if ls.found.CompareAndSwap(false, true) {
								ls.meet = meeting{key: ck, parent: key, move: t, forward: ls.forward}
							}
							return
						}
						ls.active.StoreTarget(ck, node2{parent: key, move: int8(t), state: child})
					}
				}
			}
		}(i)
	}
	wg.Wait()
}

// join turns a meeting into moves. The forward half P leads from the
// scrambled cube to the meeting state; the backward half Q leads from
// solved to the same state up to a whole-cube rotation W, so the moves
// W⁻¹·Q⁻¹·W finish the solve. W is found by trying all 24 rotations.
func (s *Solver2) join(scrambled cube.Cube2, fwd, bwd *side2, meet meeting, nodes int) Solution {
	var forward, backward []types.Move
	if meet.forward {
		forward = append(pathTo(fwd, meet.parent), types.MoveFromToken(meet.move))
		backward = pathTo(bwd, meet.key)
	} else {
		backward = append(pathTo(bwd, meet.parent), types.MoveFromToken(meet.move))
		forward = pathTo(fwd, meet.key)
	}
	undo := types.InvertSequence(backward)

	mid := scrambled.ApplyMoves(forward)
	for w := cube.Rotation(0); w < cube.NumRotations; w++ {
		finish := w.RelabelSequence(undo)
		end := mid.ApplyMoves(finish)
		if !end.IsSolved() {
			continue
		}
		rot, _ := end.Orientation()
		moves := notation.Simplify(append(forward, finish...))
		klog.V(1).Infof("2x2 solved in %d moves, %d states, ends rotated %q", len(moves), nodes, rot)
		return Solution{Moves: moves, Nodes: nodes, Rotation: rot}
	}
	panic(fmt.Sprintf("solver: no whole-cube rotation joins %v with %v", forward, undo))
}

func pathTo(side *side2, key cube.Key2) []types.Move {
	moves := []types.Move{}
	for {
		n, ok := side.Load(key)
		if !ok {
			panic("solver: broken parent chain")
		}
		if n.move < 0 {
			return moves
		}
		moves = slices.Insert(moves, 0, types.MoveFromToken(uint8(n.move)))
		key = n.parent
	}
}

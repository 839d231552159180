package solver

import (
	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// nearSolutions maps every state within depth moves of solved to the
// shortest move sequence that finishes it.
func nearSolutions(depth int) map[cube.Key3][]types.Move {
	solved := cube.Solved3()
	near := map[cube.Key3][]types.Move{solved.Key(): {}}

	layer := []cube.Cube3{solved}
	for d := 0; d < depth; d++ {
		var next []cube.Cube3
		for _, c := range layer {
			tail := near[c.Key()]
			for t := uint8(0); t < types.NumMoves; t++ {
				child := c.ApplyToken(t)
				key := child.Key()
				if _, ok := near[key]; ok {
					continue
				}
				finish := make([]types.Move, 0, len(tail)+1)
				finish = append(finish, types.MoveFromToken(t).Inverse())
				near[key] = append(finish, tail...)
				next = append(next, child)
			}
		}
		layer = next
	}
	return near
}

// Package solver finds move sequences that solve a cube: a bidirectional
// breadth-first search for the 2x2x2 and iterative-deepening A* for the
// 3x3x3.
package solver

import (
	"strings"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// Solution is the result of a solve.
type Solution struct {
	Moves []types.Move
	// Nodes counts the states the search generated.
	Nodes int
	// Rotation is the whole-cube rotation a 2x2x2 ends in once Moves are
	// applied. It is always the identity for the 3x3x3.
	Rotation cube.Rotation
}

func (s Solution) String() string {
	notations := make([]string, len(s.Moves))
	for i, m := range s.Moves {
		notations[i] = m.Notation()
	}
	return strings.Join(notations, " ")
}

package cube

import "github.com/SeamusWaldron/cubesolver/pkg/types"

// Tracker follows one physical cube through a sequence of moves, keeping
// its 2x2x2 and 3x3x3 readings in step. Its size picks the reading that
// decides whether the cube is solved.
type Tracker struct {
	size     int
	pocket   Cube2
	standard Cube3
	history  []types.Move

	solvedCallback func(moves int)
}

// NewTracker creates a new cube tracker starting from a solved state.
func NewTracker() *Tracker {
	return &Tracker{
		size:     3,
		pocket:   Solved2(),
		standard: Solved3(),
	}
}

// SetSolvedCallback sets a callback that fires when a move solves the cube.
func (t *Tracker) SetSolvedCallback(cb func(moves int)) {
	t.solvedCallback = cb
}

// SetSize selects the 2x2x2 or 3x3x3 reading for IsSolved and the solved
// callback.
func (t *Tracker) SetSize(size int) {
	t.size = size
}

// IsSolved reports whether the reading for the tracker's size is solved.
// A 2x2x2 counts as solved in any whole-cube orientation.
func (t *Tracker) IsSolved() bool {
	if t.size == 2 {
		return t.pocket.IsSolved()
	}
	return t.standard.IsSolved()
}

// Reset resets the tracker to a solved cube state.
func (t *Tracker) Reset() {
	t.pocket = Solved2()
	t.standard = Solved3()
	t.history = nil
}

// Load replaces the tracked state, clearing the history.
func (t *Tracker) Load(moves []types.Move) {
	t.Reset()
	t.pocket = t.pocket.ApplyMoves(moves)
	t.standard = t.standard.ApplyMoves(moves)
}

// ApplyMove applies a move and fires the solved callback if it solves
// the cube.
func (t *Tracker) ApplyMove(m types.Move) {
	wasSolved := t.IsSolved()
	t.pocket = t.pocket.Apply(m)
	t.standard = t.standard.Apply(m)
	t.history = append(t.history, m)

	if !wasSolved && t.IsSolved() && t.solvedCallback != nil {
		t.solvedCallback(len(t.history))
	}
}

// ApplyMoves applies multiple moves.
func (t *Tracker) ApplyMoves(moves []types.Move) {
	for _, m := range moves {
		t.ApplyMove(m)
	}
}

// Undo reverts the last move. It returns false when there is nothing to undo.
func (t *Tracker) Undo() bool {
	if len(t.history) == 0 {
		return false
	}
	last := t.history[len(t.history)-1]
	t.history = t.history[:len(t.history)-1]
	t.pocket = t.pocket.Apply(last.Inverse())
	t.standard = t.standard.Apply(last.Inverse())
	return true
}

// History returns the moves applied since the last reset.
func (t *Tracker) History() []types.Move {
	return append([]types.Move(nil), t.history...)
}

func (t *Tracker) Pocket() Cube2 {
	return t.pocket
}

func (t *Tracker) Standard() Cube3 {
	return t.standard
}

package cubesolver

import (
	"github.com/SeamusWaldron/cubesolver/internal/cube"
)

// Cube is a puzzle that takes face turns.
type Cube interface {
	Size() int
	Apply(moves ...Move)
	ApplyNotation(s string) error
	IsSolved() bool
	String() string
}

// NewCube returns a solved cube with size layers per side, 2 or 3.
func NewCube(size int) (Cube, error) {
	switch size {
	case 2:
		return NewCube2x2(), nil
	case 3:
		return NewCube3x3(), nil
	}
	return nil, ErrUnsupportedSize
}

// Cube2x2 is a 2x2x2 cube. It has no fixed centers, so any whole-cube
// rotation of the solved state counts as solved.
type Cube2x2 struct {
	state cube.Cube2
}

// NewCube2x2 returns a solved 2x2x2 cube.
func NewCube2x2() *Cube2x2 {
	return &Cube2x2{state: cube.Solved2()}
}

func (c *Cube2x2) Size() int {
	return 2
}

// Apply applies moves in order.
func (c *Cube2x2) Apply(moves ...Move) {
	c.state = c.state.ApplyMoves(moves)
}

// ApplyNotation parses s and applies the moves. The cube is unchanged if s
// does not parse.
func (c *Cube2x2) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	c.Apply(moves...)
	return nil
}

func (c *Cube2x2) IsSolved() bool {
	return c.state.IsSolved()
}

// Clone returns an independent copy.
func (c *Cube2x2) Clone() *Cube2x2 {
	return &Cube2x2{state: c.state}
}

// String returns the unfolded net.
func (c *Cube2x2) String() string {
	return c.state.String()
}

// Cube3x3 is a 3x3x3 cube.
type Cube3x3 struct {
	state cube.Cube3
}

// NewCube3x3 returns a solved 3x3x3 cube.
func NewCube3x3() *Cube3x3 {
	return &Cube3x3{state: cube.Solved3()}
}

func (c *Cube3x3) Size() int {
	return 3
}

// Apply applies moves in order.
func (c *Cube3x3) Apply(moves ...Move) {
	c.state = c.state.ApplyMoves(moves)
}

// ApplyNotation parses s and applies the moves. The cube is unchanged if s
// does not parse.
func (c *Cube3x3) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	c.Apply(moves...)
	return nil
}

func (c *Cube3x3) IsSolved() bool {
	return c.state.IsSolved()
}

// Clone returns an independent copy.
func (c *Cube3x3) Clone() *Cube3x3 {
	return &Cube3x3{state: c.state}
}

// String returns the unfolded net.
func (c *Cube3x3) String() string {
	return c.state.String()
}

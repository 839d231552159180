package cube

import (
	"github.com/SeamusWaldron/cubesolver/internal/perm"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// Key2 packs a 2x2x2 state into 5 bits per corner: orientation<<3 | slot.
type Key2 uint64

// Cube2 is an immutable 2x2x2 state.
type Cube2 struct {
	m perm.Matrix
}

// Solved2 returns the solved 2x2x2 cube.
func Solved2() Cube2 {
	return Cube2{m: Pocket.Solved()}
}

// FromMatrix2 wraps an eight-piece matrix.
func FromMatrix2(m perm.Matrix) Cube2 {
	if m.Size() != perm.NumCorners {
		panic("cube: 2x2x2 state needs an eight-piece matrix")
	}
	return Cube2{m: m}
}

func (c Cube2) Matrix() perm.Matrix {
	return c.m
}

// ApplyTransformation returns the state after g.
func (c Cube2) ApplyTransformation(g perm.Matrix) Cube2 {
	return Cube2{m: c.m.Multiply(g)}
}

func (c Cube2) Apply(m types.Move) Cube2 {
	return c.ApplyTransformation(pocketMoves.Move(m))
}

// ApplyToken applies the move with token t.
func (c Cube2) ApplyToken(t uint8) Cube2 {
	return c.ApplyTransformation(pocketMoves.Token(t))
}

func (c Cube2) ApplyMoves(moves []types.Move) Cube2 {
	return Cube2{m: pocketMoves.Sequence(c.m, moves)}
}

// RotateToFixed turns the whole cube so that the WBR corner is home with
// zero twist. States that differ only by a whole-cube rotation map to the
// same result.
func (c Cube2) RotateToFixed() Cube2 {
	p := c.m.Value(WBR)
	return c.ApplyTransformation(unrotations[c.m.Position(WBR)*3+p.Orientation()])
}

// Key returns the packed encoding of the rotated-to-fixed state.
func (c Cube2) Key() Key2 {
	m := c.RotateToFixed().m
	var k Key2
	for i := 0; i < perm.NumCorners; i++ {
		k |= Key2(m.Value(i).Orientation()<<3|m.Position(i)) << (i * 5)
	}
	return k
}

// Decode rebuilds the rotated-to-fixed state a key was made from.
func (k Key2) Decode() Cube2 {
	positions := make([]int, perm.NumCorners)
	values := make([]perm.Piece, perm.NumCorners)
	for i := range positions {
		field := int(k>>(i*5)) & 0x1f
		positions[i] = field & 0x7
		values[i] = perm.NewPiece(i, field>>3)
	}
	return Cube2{m: perm.New(positions, values)}
}

// IsSolved reports whether every face shows one colour, in any orientation.
func (c Cube2) IsSolved() bool {
	return c.Key() == solvedKey2
}

// Equal compares states up to whole-cube rotation.
func (c Cube2) Equal(o Cube2) bool {
	return c.Key() == o.Key()
}

// Orientation returns the whole-cube rotation c differs from the reference
// orientation by, when c is solved.
func (c Cube2) Orientation() (Rotation, bool) {
	return RotationOf(c.m)
}

func (c Cube2) String() string {
	return c.Net().String()
}

// Set once the unrotation table exists.
var solvedKey2 Key2

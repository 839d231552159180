package cube

import (
	"fmt"

	"github.com/SeamusWaldron/cubesolver/internal/perm"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// Key3 packs a 3x3x3 state into 6 bits per piece, piece 0 in the lowest
// bits. Corners store orientation<<3 | slot, edges orientation<<5 | slot.
// The 120 bits span Lo and the low bits of Hi.
type Key3 struct {
	Lo, Hi uint64
}

const keyFieldBits = 6

func (k *Key3) put(i int, v uint64) {
	off := i * keyFieldBits
	if off >= 64 {
		k.Hi |= v << (off - 64)
		return
	}
	k.Lo |= v << off
	if off+keyFieldBits > 64 {
		k.Hi |= v >> (64 - off)
	}
}

func (k Key3) get(i int) uint64 {
	off := i * keyFieldBits
	if off >= 64 {
		return (k.Hi >> (off - 64)) & 0x3f
	}
	v := k.Lo >> off
	if off+keyFieldBits > 64 {
		v |= k.Hi << (64 - off)
	}
	return v & 0x3f
}

func (k Key3) String() string {
	return fmt.Sprintf("%016x%016x", k.Hi, k.Lo)
}

// Cube3 is an immutable 3x3x3 state.
type Cube3 struct {
	m perm.Matrix
}

// Solved3 returns the solved 3x3x3 cube.
func Solved3() Cube3 {
	return Cube3{m: Standard.Solved()}
}

// FromMatrix3 wraps a twenty-piece matrix.
func FromMatrix3(m perm.Matrix) Cube3 {
	if m.Size() != perm.NumPieces {
		panic("cube: 3x3x3 state needs a twenty-piece matrix")
	}
	return Cube3{m: m}
}

func (c Cube3) Matrix() perm.Matrix {
	return c.m
}

// ApplyTransformation returns the state after g.
func (c Cube3) ApplyTransformation(g perm.Matrix) Cube3 {
	return Cube3{m: c.m.Multiply(g)}
}

func (c Cube3) Apply(m types.Move) Cube3 {
	return c.ApplyTransformation(standardMoves.Move(m))
}

// ApplyToken applies the move with token t.
func (c Cube3) ApplyToken(t uint8) Cube3 {
	return c.ApplyTransformation(standardMoves.Token(t))
}

func (c Cube3) ApplyMoves(moves []types.Move) Cube3 {
	return Cube3{m: standardMoves.Sequence(c.m, moves)}
}

func (c Cube3) Key() Key3 {
	var k Key3
	for i := 0; i < perm.NumCorners; i++ {
		k.put(i, uint64(c.m.Value(i).Orientation()<<3|c.m.Position(i)))
	}
	for i := perm.NumCorners; i < perm.NumPieces; i++ {
		k.put(i, uint64(c.m.Value(i).Orientation()<<5|c.m.Position(i)))
	}
	return k
}

// Decode rebuilds the state a key was made from.
func (k Key3) Decode() Cube3 {
	positions := make([]int, perm.NumPieces)
	values := make([]perm.Piece, perm.NumPieces)
	for i := 0; i < perm.NumCorners; i++ {
		field := int(k.get(i))
		positions[i] = field & 0x7
		values[i] = perm.NewPiece(i, field>>3&0x3)
	}
	for i := perm.NumCorners; i < perm.NumPieces; i++ {
		field := int(k.get(i))
		positions[i] = field & 0x1f
		values[i] = perm.NewPiece(i, field>>5&0x1)
	}
	return Cube3{m: perm.New(positions, values)}
}

func (c Cube3) IsSolved() bool {
	return c.m.IsIdentity()
}

func (c Cube3) Equal(o Cube3) bool {
	return c.m == o.m
}

func (c Cube3) String() string {
	return c.Net().String()
}

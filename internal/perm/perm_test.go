package perm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testR = Generator([]int{3, 1, 2, 4, 5, 0, 6, 7}, []int{2, 0, 0, 1, 2, 1, 0, 0})
	testU = Generator([]int{1, 2, 3, 0, 4, 5, 6, 7}, nil)
	testF = Generator([]int{5, 0, 2, 3, 4, 6, 1, 7}, []int{1, 2, 0, 0, 0, 2, 1, 0})
)

func TestPiece_Compose(t *testing.T) {
	c := NewPiece(0, 2)
	assert.Equal(t, Corner, c.Kind())
	assert.Equal(t, 1, c.Compose(NewPiece(5, 2)).Orientation())
	assert.Equal(t, 0, c.ID())

	e := NewPiece(9, 1)
	assert.Equal(t, Edge, e.Kind())
	assert.Equal(t, 0, e.Compose(NewPiece(12, 1)).Orientation())
	assert.Equal(t, "WG+1", e.String())
}

func TestPiece_Inverse(t *testing.T) {
	for id := 0; id < NumPieces; id++ {
		for o := 0; o < 3; o++ {
			p := NewPiece(id, o)
			assert.Equal(t, 0, p.Compose(p.Inverse()).Orientation(), "piece %v", p)
			assert.Equal(t, id, p.Inverse().ID())
		}
	}
}

func TestNew_RejectsNonBijection(t *testing.T) {
	assert.Panics(t, func() {
		New([]int{0, 0, 2, 3, 4, 5, 6, 7}, make([]Piece, 8))
	})
	assert.Panics(t, func() {
		New([]int{0, 1, 2}, make([]Piece, 3))
	})
	assert.Panics(t, func() {
		New([]int{0, 1, 2, 3, 4, 5, 6, 7}, make([]Piece, 7))
	})
}

func TestMultiply_SizeMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		Identity(8).Multiply(Identity(20))
	})
}

func TestInverse_IsTwoSided(t *testing.T) {
	id := Identity(8)
	for _, g := range []Matrix{testR, testU, testF, testR.Multiply(testU).Multiply(testF)} {
		assert.Equal(t, id, g.Multiply(g.Inverse()))
		assert.Equal(t, id, g.Inverse().Multiply(g))
	}
}

func TestPow(t *testing.T) {
	id := Identity(8)
	for _, g := range []Matrix{testR, testU, testF} {
		assert.Equal(t, id, g.Pow(4))
		assert.Equal(t, id, g.Pow(2).Pow(2))
		assert.Equal(t, g.Inverse(), g.Pow(3))
		assert.Equal(t, g.Pow(3), g.Pow(-1))
		assert.Equal(t, g.Multiply(g).Multiply(g).Multiply(g).Multiply(g), g.Pow(5))
		assert.Equal(t, id, g.Pow(0))
	}
}

func TestSexyMove_6Times_ReturnsToIdentity(t *testing.T) {
	sexy := testR.Multiply(testU).Multiply(testR.Inverse()).Multiply(testU.Inverse())
	assert.False(t, sexy.IsIdentity())
	assert.True(t, sexy.Pow(6).IsIdentity())
}

func TestColumnValue(t *testing.T) {
	// After R the WBR corner (row 0) sits in slot 3 with a twist of 2.
	p := testR.ColumnValue(3)
	assert.Equal(t, 0, p.ID())
	assert.Equal(t, 2, p.Orientation())
	assert.Equal(t, 1, testR.ColumnValue(1).ID())
}

func TestDecompose(t *testing.T) {
	factors := []Matrix{testR, testU, testF}

	seq, ok := Identity(8).Decompose(factors)
	require.True(t, ok)
	assert.Empty(t, seq)

	seq, ok = testU.Decompose(factors)
	require.True(t, ok)
	assert.Equal(t, []int{1}, seq)

	target := testR.Multiply(testU).Multiply(testU).Multiply(testF)
	seq, ok = target.Decompose(factors)
	require.True(t, ok)
	assert.LessOrEqual(t, len(seq), 4)

	got := Identity(8)
	for _, i := range seq {
		got = got.Multiply(factors[i])
	}
	assert.Equal(t, target, got)
}

func TestDecompose_OutsideGroup(t *testing.T) {
	// Only U turns are available, so R is unreachable.
	_, ok := testR.Decompose([]Matrix{testU})
	assert.False(t, ok)
}

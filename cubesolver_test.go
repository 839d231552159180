package cubesolver

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCube(t *testing.T) {
	for _, size := range []int{2, 3} {
		c, err := NewCube(size)
		require.NoError(t, err)
		assert.Equal(t, size, c.Size())
		assert.True(t, c.IsSolved())
	}
	_, err := NewCube(4)
	assert.ErrorIs(t, err, ErrUnsupportedSize)
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	for _, size := range []int{2, 3} {
		c, _ := NewCube(size)
		for i := 0; i < 6; i++ {
			c.Apply(SexyMove...)
		}
		assert.True(t, c.IsSolved(), "%dx%d", size, size)
	}
}

func TestTPerm_Twice_ReturnsToSolved(t *testing.T) {
	c := NewCube3x3()
	c.Apply(TPerm...)
	require.False(t, c.IsSolved())
	c.Apply(TPerm...)
	assert.True(t, c.IsSolved())
}

func TestApplyNotation(t *testing.T) {
	c := NewCube3x3()
	require.NoError(t, c.ApplyNotation("(R U R' U')6"))
	assert.True(t, c.IsSolved())

	require.NoError(t, c.ApplyNotation("R U"))
	assert.False(t, c.IsSolved())
	require.NoError(t, c.ApplyNotation("(R U)'"))
	assert.True(t, c.IsSolved())

	err := c.ApplyNotation("R X")
	assert.True(t, errors.Is(err, ErrInvalidNotation))
	assert.True(t, c.IsSolved(), "failed parse must not move the cube")
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove("F2")
	require.NoError(t, err)
	assert.Equal(t, F2, m)

	_, err = ParseMove("Q")
	assert.ErrorIs(t, err, ErrInvalidNotation)

	moves, err := ParseMoves("R U R' U'")
	require.NoError(t, err)
	assert.Equal(t, SexyMove, moves)
	assert.Equal(t, "R U R' U'", FormatMoves(moves))
	assert.Equal(t, InverseSexyMove, Invert(moves))
}

func TestClone(t *testing.T) {
	c := NewCube2x2()
	d := c.Clone()
	d.Apply(R)
	assert.True(t, c.IsSolved())
	assert.False(t, d.IsSolved())
}

func TestSolve2x2(t *testing.T) {
	c := NewCube2x2()
	require.NoError(t, c.ApplyNotation("R U R' U' F2"))

	res, err := NewSolver(WithWorkers(2)).Solve(context.Background(), c)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(res.Moves), 5)
	assert.NotEqual(t, uuid.Nil, res.RunID)

	c.Apply(res.Moves...)
	assert.True(t, c.IsSolved())
}

func TestSolve3x3_NoTables(t *testing.T) {
	c := NewCube3x3()
	c.Apply(R, U)

	_, err := NewSolver().Solve3x3(context.Background(), c)
	assert.ErrorIs(t, err, ErrTablesNotLoaded)

	s := NewSolver(WithTableDir(t.TempDir()))
	assert.ErrorIs(t, s.LoadTables(), ErrTablesNotLoaded)
}

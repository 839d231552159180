package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

func mv(f types.Face, t types.Turn) types.Move {
	return types.Move{Face: f, Turn: t}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		want types.Move
	}{
		{"R", mv(types.FaceR, types.TurnCW)},
		{"R'", mv(types.FaceR, types.TurnCCW)},
		{"R`", mv(types.FaceR, types.TurnCCW)},
		{"u2", mv(types.FaceU, types.Turn180)},
		{"F2'", mv(types.FaceF, types.Turn180)},
		{"B3", mv(types.FaceB, types.TurnCCW)},
	}
	for _, tt := range tests {
		got, ok := ParseMove(tt.in)
		if !ok || got != tt.want {
			t.Errorf("ParseMove(%q) = %v, %v; want %v", tt.in, got, ok, tt.want)
		}
	}

	for _, bad := range []string{"", "X", "R4", "R''"} {
		if _, ok := ParseMove(bad); ok {
			t.Errorf("ParseMove(%q) should fail", bad)
		}
	}
}

func TestParse_Sequence(t *testing.T) {
	moves, err := Parse("R U R' U'")
	require.NoError(t, err)
	assert.Equal(t, "R U R' U'", Format(moves))

	moves, err = Parse("  r2, d`  F3 B0 L1 ")
	require.NoError(t, err)
	assert.Equal(t, "R2 D' F' L", Format(moves))

	moves, err = Parse("")
	require.NoError(t, err)
	assert.Empty(t, moves)
}

func TestParse_Groups(t *testing.T) {
	moves, err := Parse("(R U R' U')6")
	require.NoError(t, err)
	assert.Len(t, moves, 24)

	moves, err = Parse("(R U)' F")
	require.NoError(t, err)
	assert.Equal(t, "U' R' F", Format(moves))

	moves, err = Parse("((R U)2 D)2'")
	require.NoError(t, err)
	assert.Equal(t, "D' U' R' U' R' D' U' R' U' R'", Format(moves))
}

func TestParse_Invalid(t *testing.T) {
	for _, bad := range []string{"R X", "(R U", "R)", "2R"} {
		_, err := Parse(bad)
		assert.ErrorIs(t, err, ErrInvalidNotation, "input %q", bad)
	}
}

func TestParse_RepeatLimit(t *testing.T) {
	for _, bad := range []string{"((R)1000)1000000", "(R U)5001", "(R)99999999"} {
		_, err := Parse(bad)
		assert.ErrorIs(t, err, ErrInvalidNotation, "input %q", bad)
	}

	moves, err := Parse("(R U)5000")
	require.NoError(t, err)
	assert.Len(t, moves, MaxExpandedMoves)

	moves, err = Parse("()1000000000 R")
	require.NoError(t, err)
	assert.Len(t, moves, 1)
}

func TestSimplify(t *testing.T) {
	assert.Equal(t, "R2", Format(Simplify(MustParse("R R"))))
	assert.Equal(t, "", Format(Simplify(MustParse("R R'"))))
	assert.Equal(t, "U", Format(Simplify(MustParse("R U U2 U2 R'"))[1:2]))
	assert.Equal(t, "F", Format(Simplify(MustParse("R R' F"))))
	assert.Equal(t, "R'", Format(Simplify(MustParse("R2 R"))))
	assert.Equal(t, "", Format(Simplify(MustParse("U R R' U'"))))
}

func TestInvert(t *testing.T) {
	assert.Equal(t, "U R U' R'", Format(Invert(MustParse("R U R' U'"))))
	assert.Equal(t, "F2 D", Format(Invert(MustParse("D' F2"))))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "right up", Describe(mv(types.FaceR, types.TurnCW)))
	assert.Equal(t, "top right", Describe(mv(types.FaceU, types.TurnCCW)))
	assert.Equal(t, "back clockwise x 2", Describe(mv(types.FaceB, types.Turn180)))
	assert.Equal(t, "left down, front anti-clockwise", DescribeSequence(MustParse("L F'")))
}

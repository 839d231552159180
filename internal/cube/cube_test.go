package cube

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubesolver/internal/notation"
	"github.com/SeamusWaldron/cubesolver/internal/perm"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

var (
	R      = types.Move{Face: types.FaceR, Turn: types.TurnCW}
	RPrime = types.Move{Face: types.FaceR, Turn: types.TurnCCW}
	U      = types.Move{Face: types.FaceU, Turn: types.TurnCW}
	UPrime = types.Move{Face: types.FaceU, Turn: types.TurnCCW}
	F2     = types.Move{Face: types.FaceF, Turn: types.Turn180}
	L      = types.Move{Face: types.FaceL, Turn: types.TurnCW}
	DPrime = types.Move{Face: types.FaceD, Turn: types.TurnCCW}
	B      = types.Move{Face: types.FaceB, Turn: types.TurnCW}
)

var scramble = []types.Move{R, U, F2, L, DPrime, B, RPrime, U, B, L, F2, UPrime}

func TestNewCubeIsSolved(t *testing.T) {
	if !Solved3().IsSolved() {
		t.Error("New 3x3 cube should be solved")
	}
	if !Solved2().IsSolved() {
		t.Error("New 2x2 cube should be solved")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	for _, m := range types.AllMoves() {
		if Solved3().Apply(m).IsSolved() {
			t.Errorf("3x3 should not be solved after %v", m)
		}
		if Solved2().Apply(m).IsSolved() {
			t.Errorf("2x2 should not be solved after %v", m)
		}
	}
}

func TestRR_ReturnsToSolved_AllFaces(t *testing.T) {
	for _, face := range types.Faces {
		q := types.Move{Face: face, Turn: types.TurnCW}
		c := Solved3().Apply(q).Apply(q).Apply(q).Apply(q)
		if !c.IsSolved() {
			t.Errorf("%v x 4 should return to solved", face)
			t.Log(c.String())
		}

		h := types.Move{Face: face, Turn: types.Turn180}
		if !Solved3().Apply(h).Apply(h).IsSolved() {
			t.Errorf("%v2 %v2 should return to solved", face, face)
		}
	}
}

func TestGeneratorsHaveOrderFour(t *testing.T) {
	for _, p := range []Puzzle{Pocket, Standard} {
		for _, face := range types.Faces {
			g := p.Generator(face)
			assert.False(t, g.IsIdentity(), "%v", face)
			assert.False(t, g.Pow(2).IsIdentity(), "%v", face)
			assert.True(t, g.Pow(4).IsIdentity(), "%v", face)
			assert.Equal(t, p.Solved(), g.Multiply(g.Inverse()))
			assert.Equal(t, p.Solved(), g.Inverse().Multiply(g))
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	sexy := []types.Move{R, U, RPrime, UPrime}
	c := Solved3()
	for i := 0; i < 6; i++ {
		c = c.ApplyMoves(sexy)
		if i < 5 && c.IsSolved() {
			t.Fatalf("cube solved after only %d sexy moves", i+1)
		}
	}
	if !c.IsSolved() {
		t.Error("(R U R' U') x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestScrambleRoundTrip(t *testing.T) {
	c3 := Solved3().ApplyMoves(scramble)
	require.False(t, c3.IsSolved())
	assert.True(t, c3.ApplyMoves(types.InvertSequence(scramble)).IsSolved())

	c2 := Solved2().ApplyMoves(scramble)
	require.False(t, c2.IsSolved())
	assert.True(t, c2.ApplyMoves(types.InvertSequence(scramble)).IsSolved())
}

func TestPocketMatchesStandardCorners(t *testing.T) {
	c2 := Solved2().ApplyMoves(scramble).Matrix()
	c3 := Solved3().ApplyMoves(scramble).Matrix()
	for i := 0; i < perm.NumCorners; i++ {
		assert.Equal(t, c3.Position(i), c2.Position(i))
		assert.Equal(t, c3.Value(i), c2.Value(i))
	}
}

func TestR_MovesFrontStickersUp(t *testing.T) {
	n := Solved3().Apply(R).Net()
	for r := 0; r < 3; r++ {
		assert.Equal(t, Red, n.Row(NetUp, r)[2], "row %d", r)
		assert.Equal(t, White, n.Row(NetUp, r)[0], "row %d", r)
	}
	for _, c := range n.Facelets[NetRight] {
		assert.Equal(t, Blue, c)
	}
}

func TestSolvedNet(t *testing.T) {
	for _, n := range []Net{Solved3().Net(), Solved2().Net()} {
		for f, face := range n.Facelets {
			for _, c := range face {
				assert.Equal(t, centerColors[f], c)
			}
		}
	}
	s := Solved2().String()
	assert.Contains(t, s, "G G W W B B Y Y")
	assert.Contains(t, s, "    O O")
}

func TestKey3_DecodeRoundTrip(t *testing.T) {
	c := Solved3()
	for _, m := range scramble {
		c = c.Apply(m)
		k := c.Key()
		assert.Equal(t, c, k.Decode())
	}
	assert.NotEqual(t, Solved3().Key(), c.Key())
	assert.Equal(t, Solved3().Key(), Solved3().Key().Decode().Key())
}

func TestKey2_DecodeRoundTrip(t *testing.T) {
	c := Solved2()
	for _, m := range scramble {
		c = c.Apply(m)
		k := c.Key()
		assert.Equal(t, c.RotateToFixed(), k.Decode())
		assert.Equal(t, k, k.Decode().Key())
	}
}

func TestRotateToFixed_IgnoresWholeCubeRotation(t *testing.T) {
	c := Solved2().ApplyMoves(scramble)
	for w := Rotation(0); w < NumRotations; w++ {
		rotated := c.ApplyTransformation(w.Matrix())
		assert.Equal(t, c.Key(), rotated.Key(), "rotation %q", w)
		assert.True(t, Solved2().ApplyTransformation(w.Matrix()).IsSolved())
	}
}

func TestRotations(t *testing.T) {
	names := map[string]bool{}
	for w := Rotation(0); w < NumRotations; w++ {
		names[w.String()] = true
		got, ok := RotationOf(w.Matrix())
		require.True(t, ok)
		assert.Equal(t, w, got)
	}
	assert.Len(t, names, NumRotations)
	assert.Equal(t, "", Rotation(0).String())
	assert.True(t, Rotation(0).Matrix().IsIdentity())
}

func TestRelabel(t *testing.T) {
	c := Solved2().ApplyMoves(scramble)
	for w := Rotation(0); w < NumRotations; w++ {
		for _, m := range types.AllMoves() {
			want := c.Apply(m).ApplyTransformation(w.Matrix()).Matrix()
			got := c.ApplyTransformation(w.Matrix()).Apply(w.Relabel(m)).Matrix()
			require.Equal(t, want, got, "rotation %q move %v", w, m)
		}
	}
}

func TestPatternIndexes_Solved(t *testing.T) {
	s := Solved3()
	assert.Equal(t, s, CornerPattern(s.CornerIndex()))
	assert.Equal(t, s, EdgePattern(FirstEdges, s.EdgeIndex(FirstEdges)))
	assert.Equal(t, s, EdgePattern(LastEdges, s.EdgeIndex(LastEdges)))
}

func TestCornerPattern_RoundTrip(t *testing.T) {
	for _, idx := range []int{0, 1, 2186, 2187, 123456, CornerPatternSize / 2, CornerPatternSize - 1} {
		assert.Equal(t, idx, CornerPattern(idx).CornerIndex())
	}
	c := Solved3().ApplyMoves(scramble)
	p := CornerPattern(c.CornerIndex())
	for i := 0; i < perm.NumCorners; i++ {
		assert.Equal(t, c.Matrix().Position(i), p.Matrix().Position(i))
		assert.Equal(t, c.Matrix().Value(i), p.Matrix().Value(i))
	}
}

func TestEdgePattern_RoundTrip(t *testing.T) {
	for _, first := range []int{FirstEdges, LastEdges} {
		for _, idx := range []int{0, 1, 63, 64, 99999, EdgePatternSize - 1} {
			assert.Equal(t, idx, EdgePattern(first, idx).EdgeIndex(first))
		}
		c := Solved3().ApplyMoves(scramble)
		p := EdgePattern(first, c.EdgeIndex(first))
		for i := first; i < first+6; i++ {
			assert.Equal(t, c.Matrix().Position(i), p.Matrix().Position(i))
			assert.Equal(t, c.Matrix().Value(i), p.Matrix().Value(i))
		}
	}
}

func TestPatternIndex_FollowsMoves(t *testing.T) {
	// A move applied to a pattern representative moves the tracked pieces
	// exactly as it moves them on the full cube.
	c := Solved3().ApplyMoves(scramble)
	for _, m := range types.AllMoves() {
		want := c.Apply(m)
		assert.Equal(t, want.CornerIndex(), CornerPattern(c.CornerIndex()).Apply(m).CornerIndex())
		assert.Equal(t, want.EdgeIndex(LastEdges), EdgePattern(LastEdges, c.EdgeIndex(LastEdges)).Apply(m).EdgeIndex(LastEdges))
	}
}

func TestPatternIndexPanics(t *testing.T) {
	assert.Panics(t, func() { CornerPattern(CornerPatternSize) })
	assert.Panics(t, func() { EdgePattern(FirstEdges, -1) })
	assert.Panics(t, func() { Solved3().EdgeIndex(9) })
}

func TestSuperflip_FlipsEveryEdgeInPlace(t *testing.T) {
	c := Solved3().ApplyMoves(notation.MustParse("U R2 F B R B2 R U2 L B2 R U' D' R2 F R' L B2 U2 F2"))
	m := c.Matrix()
	for i := 0; i < perm.NumPieces; i++ {
		assert.Equal(t, i, m.Position(i), "%s", m.Value(i).Name())
		want := 0
		if i >= perm.NumCorners {
			want = 1
		}
		assert.Equal(t, want, m.Value(i).Orientation(), "%s", m.Value(i).Name())
	}

	// Every edge shows the colour of the neighbouring centre.
	n := c.Net()
	assert.Equal(t, []Color{White, Orange, White}, n.Row(NetUp, 0))
	assert.Equal(t, []Color{Green, White, Blue}, n.Row(NetUp, 1))
	assert.Equal(t, []Color{White, Red, White}, n.Row(NetUp, 2))
}

func TestHalfTurnsKeepEdgeOrientation(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for n := 0; n < 50; n++ {
		c := Solved3()
		for i := 0; i < 25; i++ {
			c = c.Apply(types.Move{Face: types.Faces[r.Intn(len(types.Faces))], Turn: types.Turn180})
		}
		m := c.Matrix()
		for i := perm.NumCorners; i < perm.NumPieces; i++ {
			require.Equal(t, 0, m.Value(i).Orientation(), "%s", m.Value(i))
		}
	}
}

func TestOnlyFrontAndBackFlipEdges(t *testing.T) {
	for _, face := range types.Faces {
		g := Standard.Generator(face)
		flipped := 0
		for i := perm.NumCorners; i < perm.NumPieces; i++ {
			flipped += g.Value(i).Orientation()
		}
		switch face {
		case types.FaceF, types.FaceB:
			assert.Equal(t, 4, flipped, "%v", face)
		default:
			assert.Equal(t, 0, flipped, "%v", face)
		}
	}
}

func TestOrientationSumsAreInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	moves := types.AllMoves()
	c := Solved3()
	for i := 0; i < 500; i++ {
		c = c.Apply(moves[r.Intn(len(moves))])
		twist, flip := 0, 0
		for p := 0; p < perm.NumPieces; p++ {
			if p < perm.NumCorners {
				twist += c.Matrix().Value(p).Orientation()
			} else {
				flip += c.Matrix().Value(p).Orientation()
			}
		}
		require.Zero(t, twist%3)
		require.Zero(t, flip%2)
	}
}

func TestNet_EveryColourNineTimes(t *testing.T) {
	n := Solved3().ApplyMoves(scramble).Net()
	counts := map[Color]int{}
	for _, face := range n.Facelets {
		for _, c := range face {
			counts[c]++
		}
	}
	for _, c := range centerColors {
		assert.Equal(t, 9, counts[c], "%v", c)
	}
}

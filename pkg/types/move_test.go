package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToken_RoundTrip(t *testing.T) {
	seen := map[uint8]bool{}
	for _, m := range AllMoves() {
		tok := m.Token()
		assert.Less(t, tok, uint8(NumMoves))
		assert.False(t, seen[tok], "duplicate token %d", tok)
		seen[tok] = true
		assert.Equal(t, m, MoveFromToken(tok))
	}
	assert.Len(t, seen, NumMoves)
	assert.Equal(t, uint8(1), Move{Face: FaceR, Turn: TurnCW}.Token())
	assert.Equal(t, uint8(17), Move{Face: FaceB, Turn: Turn180}.Token())
	assert.Panics(t, func() { MoveFromToken(NumMoves) })
}

func TestFace_Opposite(t *testing.T) {
	assert.Equal(t, FaceL, FaceR.Opposite())
	assert.Equal(t, FaceU, FaceD.Opposite())
	assert.Equal(t, FaceB, FaceF.Opposite())
	assert.Equal(t, -1, Face("X").Index())
}

func TestMove_Inverse(t *testing.T) {
	r := Move{Face: FaceR, Turn: TurnCW}
	assert.Equal(t, "R'", r.Inverse().Notation())
	assert.Equal(t, r, r.Inverse().Inverse())
	assert.Equal(t, "U2", Move{Face: FaceU, Turn: Turn180}.Inverse().Notation())
	assert.True(t, r.IsCancellation(r.Inverse()))
	assert.False(t, r.IsCancellation(r))
}

func TestMove_Merge(t *testing.T) {
	r := Move{Face: FaceR, Turn: TurnCW}
	r2 := Move{Face: FaceR, Turn: Turn180}
	rp := Move{Face: FaceR, Turn: TurnCCW}

	assert.Equal(t, &r2, r.Merge(r))
	assert.Equal(t, &rp, r.Merge(r2))
	assert.Equal(t, &r, rp.Merge(r2))
	assert.Nil(t, r.Merge(rp))
	assert.Nil(t, r2.Merge(r2))
	assert.Nil(t, r.Merge(Move{Face: FaceL, Turn: TurnCW}))
}

func TestMove_SameAxis(t *testing.T) {
	r := Move{Face: FaceR, Turn: TurnCW}
	assert.True(t, r.SameAxis(Move{Face: FaceL, Turn: TurnCCW}))
	assert.True(t, r.SameAxis(r))
	assert.False(t, r.SameAxis(Move{Face: FaceU, Turn: TurnCW}))
}

func TestInvertSequence(t *testing.T) {
	seq := []Move{{FaceR, TurnCW}, {FaceU, TurnCW}, {FaceF, Turn180}}
	assert.Equal(t, []Move{{FaceF, Turn180}, {FaceU, TurnCCW}, {FaceR, TurnCCW}}, InvertSequence(seq))
	assert.Empty(t, InvertSequence(nil))
}

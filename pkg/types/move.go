// Package types contains shared type definitions for the cube solver.
package types

import "fmt"

// Face represents a cube face in standard notation.
type Face string

const (
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
)

// Faces lists the six faces in token order.
var Faces = [6]Face{FaceR, FaceL, FaceU, FaceD, FaceF, FaceB}

// Index returns the face code used by Token (R=0 ... B=5), or -1 if unknown.
func (f Face) Index() int {
	for i, face := range Faces {
		if face == f {
			return i
		}
	}
	return -1
}

// Opposite returns the face on the other side of the cube.
func (f Face) Opposite() Face {
	i := f.Index()
	if i < 0 {
		return f
	}
	return Faces[i^1]
}

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	TurnCW  Turn = 1  // Clockwise quarter turn
	TurnCCW Turn = -1 // Counter-clockwise quarter turn
	Turn180 Turn = 2  // 180 degree turn (half turn)
)

// QuarterTurns returns how many clockwise quarter turns make up t.
func (t Turn) QuarterTurns() int {
	switch t {
	case TurnCCW:
		return 3
	case Turn180:
		return 2
	}
	return 1
}

// NumMoves is the size of the move catalog: six faces times three turns.
const NumMoves = 18

// Move represents a single cube move with face and turn direction.
type Move struct {
	Face Face `json:"face"`
	Turn Turn `json:"turn"`
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case TurnCCW:
		suffix = "'"
	case Turn180:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case TurnCW:
		inv.Turn = TurnCCW
	case TurnCCW:
		inv.Turn = TurnCW
		// Turn180 is its own inverse
	}
	return inv
}

// IsCancellation returns true if the other move cancels this move.
func (m Move) IsCancellation(other Move) bool {
	if m.Face != other.Face {
		return false
	}
	return m.Turn == -other.Turn ||
		(m.Turn == Turn180 && other.Turn == Turn180)
}

// SameAxis reports whether both moves turn the same or opposite faces.
func (m Move) SameAxis(other Move) bool {
	return m.Face == other.Face || m.Face == other.Face.Opposite()
}

// Merge combines two same-face moves into one (or returns nil if they cancel).
// Returns nil if the moves cannot be merged or if they cancel out completely.
func (m Move) Merge(other Move) *Move {
	if m.Face != other.Face {
		return nil
	}

	quarters := (m.Turn.QuarterTurns() + other.Turn.QuarterTurns()) % 4
	if quarters == 0 {
		return nil // Moves cancel out
	}

	return &Move{Face: m.Face, Turn: turnFromQuarters(quarters)}
}

func turnFromQuarters(q int) Turn {
	switch q {
	case 2:
		return Turn180
	case 3:
		return TurnCCW
	}
	return TurnCW
}

// Token encodes the move as a single byte. Tokens index the move catalog.
// Encoding: face*3 + turn_code where:
//   - face: R=0, L=1, U=2, D=3, F=4, B=5
//   - turn_code: CCW=0, CW=1, 180=2
func (m Move) Token() uint8 {
	faceCode := uint8(m.Face.Index())

	var turnCode uint8
	switch m.Turn {
	case TurnCCW:
		turnCode = 0
	case TurnCW:
		turnCode = 1
	case Turn180:
		turnCode = 2
	}

	return faceCode*3 + turnCode
}

// MoveFromToken decodes a token back into a Move.
func MoveFromToken(token uint8) Move {
	if token >= NumMoves {
		panic(fmt.Sprintf("types: move token %d out of range", token))
	}
	face := Faces[token/3]

	var turn Turn
	switch token % 3 {
	case 0:
		turn = TurnCCW
	case 1:
		turn = TurnCW
	case 2:
		turn = Turn180
	}

	return Move{Face: face, Turn: turn}
}

// AllMoves returns the 18 moves in token order.
func AllMoves() []Move {
	moves := make([]Move, NumMoves)
	for t := range moves {
		moves[t] = MoveFromToken(uint8(t))
	}
	return moves
}

// InvertSequence returns the moves that undo seq: reversed, each inverted.
func InvertSequence(seq []Move) []Move {
	out := make([]Move, len(seq))
	for i, m := range seq {
		out[len(seq)-1-i] = m.Inverse()
	}
	return out
}

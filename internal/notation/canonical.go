// Package notation parses, formats and simplifies move sequences written in
// standard cube notation.
package notation

import (
	"strings"

	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// ParseMove parses a single move such as R, R', R2 or R2'.
func ParseMove(s string) (types.Move, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return types.Move{}, false
	}

	face, ok := faceFromChar(s[0])
	if !ok {
		return types.Move{}, false
	}

	// Extract turn
	turn := types.TurnCW // Default is clockwise
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = types.TurnCCW
		case "2", "2'":
			turn = types.Turn180
		case "3":
			turn = types.TurnCCW
		default:
			return types.Move{}, false
		}
	}

	return types.Move{Face: face, Turn: turn}, true
}

func faceFromChar(c byte) (types.Face, bool) {
	switch c {
	case 'R', 'r':
		return types.FaceR, true
	case 'L', 'l':
		return types.FaceL, true
	case 'U', 'u':
		return types.FaceU, true
	case 'D', 'd':
		return types.FaceD, true
	case 'F', 'f':
		return types.FaceF, true
	case 'B', 'b':
		return types.FaceB, true
	}
	return "", false
}

// Format formats a slice of moves as a space-separated string.
func Format(moves []types.Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// Simplify merges adjacent turns of the same face and drops turns that
// cancel out.
func Simplify(moves []types.Move) []types.Move {
	out := make([]types.Move, 0, len(moves))
	for _, m := range moves {
		if n := len(out); n > 0 && out[n-1].Face == m.Face {
			if merged := out[n-1].Merge(m); merged != nil {
				out[n-1] = *merged
			} else {
				out = out[:n-1]
			}
			continue
		}
		out = append(out, m)
	}
	return out
}

// Invert returns the sequence that undoes moves.
func Invert(moves []types.Move) []types.Move {
	return types.InvertSequence(moves)
}

// normalizeQuarters maps a count of clockwise quarter turns to a turn.
// It reports false when the turns cancel out.
func normalizeQuarters(q int) (types.Turn, bool) {
	switch ((q % 4) + 4) % 4 {
	case 1:
		return types.TurnCW, true
	case 2:
		return types.Turn180, true
	case 3:
		return types.TurnCCW, true
	}
	return 0, false
}

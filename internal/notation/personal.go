package notation

import (
	"strings"

	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// Describe spells a move out for someone holding the cube white on top and
// red in front.
//
// Mapping:
//
//	R  -> "right up"          R' -> "right down"
//	L  -> "left down"         L' -> "left up"
//	U  -> "top left"          U' -> "top right"
//	D  -> "bottom right"      D' -> "bottom left"
//	F  -> "front clockwise"   F' -> "front anti-clockwise"
//	B  -> "back clockwise"    B' -> "back anti-clockwise"
//
// Half turns append " x 2" to the clockwise description.
func Describe(m types.Move) string {
	var cw, ccw string
	switch m.Face {
	case types.FaceR:
		cw, ccw = "right up", "right down"
	case types.FaceL:
		cw, ccw = "left down", "left up"
	case types.FaceU:
		cw, ccw = "top left", "top right"
	case types.FaceD:
		cw, ccw = "bottom right", "bottom left"
	case types.FaceF:
		cw, ccw = "front clockwise", "front anti-clockwise"
	case types.FaceB:
		cw, ccw = "back clockwise", "back anti-clockwise"
	default:
		return m.Notation() // Fallback to standard notation
	}

	switch m.Turn {
	case types.TurnCCW:
		return ccw
	case types.Turn180:
		return cw + " x 2"
	}
	return cw
}

// DescribeSequence formats moves as a comma-separated description.
func DescribeSequence(moves []types.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = Describe(m)
	}
	return strings.Join(parts, ", ")
}

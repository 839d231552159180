package cube

import (
	"fmt"
	"strings"

	"github.com/SeamusWaldron/cubesolver/internal/perm"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// NumRotations is the number of whole-cube orientations.
const NumRotations = 24

// Rotation indexes one of the 24 whole-cube rotations of the 2x2x2 cube.
// Rotation 0 is the identity.
type Rotation int

var (
	rotations [NumRotations]perm.Matrix

	// unrotations[slot*3+twist] turns a cube whose WBR corner sits in slot
	// with that twist back into the reference orientation.
	unrotations [perm.NumCorners * 3]perm.Matrix

	// relabel[w][t] is the move token h with W⁻¹·g·W == h for move token t.
	relabel [NumRotations][types.NumMoves]uint8

	rotationNames [NumRotations]string
)

var axisNames = []string{"x", "x'", "x2", "y", "y'", "y2", "z", "z'", "z2"}

func init() {
	x := Pocket.Generator(types.FaceR).Multiply(Pocket.Generator(types.FaceL).Pow(3))
	y := Pocket.Generator(types.FaceU).Multiply(Pocket.Generator(types.FaceD).Pow(3))
	z := Pocket.Generator(types.FaceF).Multiply(Pocket.Generator(types.FaceB).Pow(3))

	// Closure of the three axis rotations.
	found := []perm.Matrix{Pocket.Solved()}
	seen := map[perm.Matrix]bool{Pocket.Solved(): true}
	for i := 0; i < len(found); i++ {
		for _, axis := range []perm.Matrix{x, y, z} {
			r := found[i].Multiply(axis)
			if !seen[r] {
				seen[r] = true
				found = append(found, r)
			}
		}
	}
	if len(found) != NumRotations {
		panic(fmt.Sprintf("cube: %d whole-cube rotations, want %d", len(found), NumRotations))
	}
	copy(rotations[:], found)

	var filled [len(unrotations)]bool
	for _, w := range rotations {
		for s := 0; s < perm.NumCorners; s++ {
			if w.Position(s) != WBR {
				continue
			}
			idx := s*3 + (3-w.Value(s).Orientation())%3
			unrotations[idx] = w
			filled[idx] = true
		}
	}
	for idx, ok := range filled {
		if !ok {
			panic(fmt.Sprintf("cube: no unrotation for slot %d twist %d", idx/3, idx%3))
		}
	}

	for wi, w := range rotations {
		winv := w.Inverse()
		for t := uint8(0); t < types.NumMoves; t++ {
			conj := winv.Multiply(pocketMoves.Token(t)).Multiply(w)
			h, ok := findToken(pocketMoves, conj)
			if !ok {
				panic(fmt.Sprintf("cube: rotation %d does not map move %v onto a face move", wi, types.MoveFromToken(t)))
			}
			relabel[wi][t] = h
		}
	}

	solvedKey2 = Solved2().Key()

	factors := []perm.Matrix{x, x.Pow(3), x.Pow(2), y, y.Pow(3), y.Pow(2), z, z.Pow(3), z.Pow(2)}
	for wi, w := range rotations {
		seq, ok := w.Decompose(factors)
		if !ok {
			panic(fmt.Sprintf("cube: rotation %d is not generated by x, y and z", wi))
		}
		names := make([]string, len(seq))
		for i, f := range seq {
			names[i] = axisNames[f]
		}
		rotationNames[wi] = strings.Join(names, " ")
	}
}

func findToken(c *Catalog, m perm.Matrix) (uint8, bool) {
	for t := uint8(0); t < types.NumMoves; t++ {
		if c.Token(t) == m {
			return t, true
		}
	}
	return 0, false
}

// Matrix returns the permutation of the rotation.
func (r Rotation) Matrix() perm.Matrix {
	return rotations[r]
}

// Relabel returns the move h such that turning m and then rotating by r
// equals rotating by r and then turning h.
func (r Rotation) Relabel(m types.Move) types.Move {
	return types.MoveFromToken(relabel[r][m.Token()])
}

// RelabelSequence relabels every move of seq through r.
func (r Rotation) RelabelSequence(seq []types.Move) []types.Move {
	out := make([]types.Move, len(seq))
	for i, m := range seq {
		out[i] = r.Relabel(m)
	}
	return out
}

// String names the rotation in x/y/z notation; the identity is empty.
func (r Rotation) String() string {
	return rotationNames[r]
}

// RotationOf returns the rotation equal to m.
func RotationOf(m perm.Matrix) (Rotation, bool) {
	for i, w := range rotations {
		if w == m {
			return Rotation(i), true
		}
	}
	return 0, false
}

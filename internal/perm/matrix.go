package perm

import (
	"fmt"
	"strings"
)

// MaxSize is the largest supported matrix: 8 corners plus 12 edges.
const MaxSize = NumPieces

// Matrix is a permutation of piece slots together with each piece's value.
// Row i describes piece i: pos[i] is the slot it occupies and val[i] is the
// piece with its current orientation.
//
// Matrices are values. Unused rows beyond the size stay zero so that == and
// map keys compare only meaningful data.
type Matrix struct {
	n   uint8
	pos [MaxSize]uint8
	val [MaxSize]Piece
}

// Identity returns the solved arrangement of the first size pieces.
func Identity(size int) Matrix {
	checkSize(size)
	m := Matrix{n: uint8(size)}
	for i := 0; i < size; i++ {
		m.pos[i] = uint8(i)
		m.val[i] = NewPiece(i, 0)
	}
	return m
}

// New builds a matrix from explicit rows. It panics if positions is not a
// bijection on [0, len(positions)) or the slices differ in length.
func New(positions []int, values []Piece) Matrix {
	if len(positions) != len(values) {
		panic(fmt.Sprintf("perm: %d positions but %d values", len(positions), len(values)))
	}
	checkSize(len(positions))
	m := Matrix{n: uint8(len(positions))}
	var seen [MaxSize]bool
	for i, p := range positions {
		if p < 0 || p >= len(positions) || seen[p] {
			panic(fmt.Sprintf("perm: positions %v is not a permutation", positions))
		}
		seen[p] = true
		m.pos[i] = uint8(p)
		m.val[i] = values[i]
	}
	return m
}

// Generator builds a move matrix from the destination slot of every piece
// and the orientation each piece gains.
func Generator(positions []int, twists []int) Matrix {
	values := make([]Piece, len(positions))
	for i := range values {
		t := 0
		if twists != nil {
			t = twists[i]
		}
		values[i] = NewPiece(i, t)
	}
	return New(positions, values)
}

func checkSize(size int) {
	if size != NumCorners && size != MaxSize {
		panic(fmt.Sprintf("perm: unsupported matrix size %d", size))
	}
}

func (m Matrix) Size() int {
	return int(m.n)
}

// Position returns the slot occupied by piece row.
func (m Matrix) Position(row int) int {
	return int(m.pos[row])
}

// Value returns piece row with its orientation.
func (m Matrix) Value(row int) Piece {
	return m.val[row]
}

// ColumnValue returns the piece sitting in slot.
func (m Matrix) ColumnValue(slot int) Piece {
	for i := 0; i < int(m.n); i++ {
		if int(m.pos[i]) == slot {
			return m.val[i]
		}
	}
	panic(fmt.Sprintf("perm: slot %d out of range", slot))
}

// Multiply applies m first and then o.
func (m Matrix) Multiply(o Matrix) Matrix {
	if m.n != o.n {
		panic(fmt.Sprintf("perm: cannot multiply size %d by size %d", m.n, o.n))
	}
	r := Matrix{n: m.n}
	for i := 0; i < int(m.n); i++ {
		p := m.pos[i]
		r.pos[i] = o.pos[p]
		r.val[i] = m.val[i].Compose(o.val[p])
	}
	return r
}

// Inverse returns the matrix that undoes m.
func (m Matrix) Inverse() Matrix {
	r := Matrix{n: m.n}
	for i := 0; i < int(m.n); i++ {
		p := m.pos[i]
		r.pos[p] = uint8(i)
		r.val[p] = NewPiece(int(p), m.val[i].Inverse().Orientation())
	}
	return r
}

// Pow returns m multiplied by itself n times. Negative n inverts first.
func (m Matrix) Pow(n int) Matrix {
	switch {
	case n < 0:
		return m.Inverse().Pow(-n)
	case n == 0:
		return Identity(int(m.n))
	case n == 1:
		return m
	}
	r := m.Multiply(m).Pow(n >> 1)
	if n&1 == 1 {
		r = r.Multiply(m)
	}
	return r
}

func (m Matrix) Equal(o Matrix) bool {
	return m == o
}

func (m Matrix) IsIdentity() bool {
	return m == Identity(int(m.n))
}

func (m Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < int(m.n); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s>%d", m.val[i], m.pos[i])
	}
	return sb.String()
}

// Package perm implements cube states and moves as elements of a permutation
// group: a permutation of piece slots paired with a per-piece orientation.
package perm

import "fmt"

// Kind distinguishes corner pieces from edge pieces.
type Kind uint8

const (
	Corner Kind = iota
	Edge
)

const (
	NumCorners = 8
	NumEdges   = 12
	NumPieces  = NumCorners + NumEdges
)

// Piece identifies one physical piece and its orientation.
// The identity lives in the high bits, the orientation in the low two.
type Piece uint8

var pieceNames = [NumPieces]string{
	"WBR", "WRG", "WGO", "WOB", "YBO", "YRB", "YGR", "YOG",
	"WR", "WG", "WO", "WB", "RB", "RG", "OG", "OB", "YB", "YR", "YG", "YO",
}

// NewPiece returns piece id with the given orientation, reduced mod the
// piece's orientation count.
func NewPiece(id, orientation int) Piece {
	if id < 0 || id >= NumPieces {
		panic(fmt.Sprintf("perm: piece id %d out of range", id))
	}
	p := Piece(id << 2)
	return p.Rotate(orientation)
}

// ID returns the piece identity. Corners are 0-7, edges 8-19.
func (p Piece) ID() int {
	return int(p >> 2)
}

// Orientation returns the twist (corners, 0-2) or flip (edges, 0-1).
func (p Piece) Orientation() int {
	return int(p & 3)
}

func (p Piece) Kind() Kind {
	if p.ID() < NumCorners {
		return Corner
	}
	return Edge
}

// Modulus is the number of distinct orientations: 3 for corners, 2 for edges.
func (p Piece) Modulus() int {
	if p.Kind() == Corner {
		return 3
	}
	return 2
}

// Rotate returns the same piece with n added to its orientation.
func (p Piece) Rotate(n int) Piece {
	m := p.Modulus()
	o := ((p.Orientation()+n)%m + m) % m
	return p&^3 | Piece(o)
}

// Compose keeps p's identity and adds q's orientation.
func (p Piece) Compose(q Piece) Piece {
	return p.Rotate(q.Orientation())
}

// Inverse negates the orientation.
func (p Piece) Inverse() Piece {
	return p.Rotate(-2 * p.Orientation())
}

// Name returns the sticker colours of the piece, e.g. "WBR" or "YO".
func (p Piece) Name() string {
	return pieceNames[p.ID()]
}

func (p Piece) String() string {
	if o := p.Orientation(); o != 0 {
		return fmt.Sprintf("%s+%d", p.Name(), o)
	}
	return p.Name()
}

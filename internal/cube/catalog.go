// Package cube models 2x2x2 and 3x3x3 cube states as permutation matrices
// and provides the face-turn generators that act on them.
package cube

import (
	"fmt"

	"github.com/SeamusWaldron/cubesolver/internal/perm"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// Puzzle supplies the clockwise quarter-turn generator of every face and
// the solved arrangement for one cube size.
type Puzzle interface {
	Solved() perm.Matrix
	Generator(face types.Face) perm.Matrix
}

// Piece identities. Corners are named by their stickers starting with the
// white or yellow one. Edges start with their white or yellow sticker, or
// with red or orange for the four middle-layer edges; that first sticker
// is the one edge orientation is measured by.
const (
	WBR = iota
	WRG
	WGO
	WOB
	YBO
	YRB
	YGR
	YOG
	WR
	WG
	WO
	WB
	RB
	RG
	OG
	OB
	YB
	YR
	YG
	YO
)

type generatorRows struct {
	corners, cornerTwists []int
	edges, edgeFlips      []int
}

// Destination slot of each piece under a clockwise turn, and the
// orientation it gains. An edge has orientation 0 when its first sticker
// lies on the U or D facelet of its slot, or the F or B facelet of a
// middle-layer slot. Only F and B turns change it.
var generatorTable = map[types.Face]generatorRows{
	types.FaceR: {
		corners:      []int{WOB, WRG, WGO, YBO, YRB, WBR, YGR, YOG},
		cornerTwists: []int{2, 0, 0, 1, 2, 1, 0, 0},
		edges:        []int{WR, WG, WO, OB, WB, RG, OG, YB, RB, YR, YG, YO},
	},
	types.FaceL: {
		corners:      []int{WBR, YGR, WRG, WOB, YBO, YRB, YOG, WGO},
		cornerTwists: []int{0, 1, 2, 0, 0, 0, 2, 1},
		edges:        []int{WR, RG, WO, WB, RB, YG, WG, OB, YB, YR, OG, YO},
	},
	types.FaceU: {
		corners: []int{WRG, WGO, WOB, WBR, YBO, YRB, YGR, YOG},
		edges:   []int{WG, WO, WB, WR, RB, RG, OG, OB, YB, YR, YG, YO},
	},
	types.FaceD: {
		corners: []int{WBR, WRG, WGO, WOB, YOG, YBO, YRB, YGR},
		edges:   []int{WR, WG, WO, WB, RB, RG, OG, OB, YO, YB, YR, YG},
	},
	types.FaceF: {
		corners:      []int{YRB, WBR, WGO, WOB, YBO, YGR, WRG, YOG},
		cornerTwists: []int{1, 2, 0, 0, 0, 2, 1, 0},
		edges:        []int{RB, WG, WO, WB, YR, WR, OG, OB, YB, RG, YG, YO},
		edgeFlips:    []int{1, 0, 0, 0, 1, 1, 0, 0, 0, 1, 0, 0},
	},
	types.FaceB: {
		corners:      []int{WBR, WRG, YOG, WGO, WOB, YRB, YGR, YBO},
		cornerTwists: []int{0, 0, 1, 2, 1, 0, 0, 2},
		edges:        []int{WR, WG, OG, WB, RB, RG, YO, WO, YB, YR, YG, OB},
		edgeFlips:    []int{0, 0, 1, 0, 0, 0, 1, 1, 0, 0, 0, 1},
	},
}

type puzzle struct {
	size       int
	generators map[types.Face]perm.Matrix
}

func newPuzzle(size int) *puzzle {
	p := &puzzle{size: size, generators: make(map[types.Face]perm.Matrix, 6)}
	for face, rows := range generatorTable {
		positions := append([]int(nil), rows.corners...)
		twists := make([]int, size)
		copy(twists, rows.cornerTwists)
		if size == perm.NumPieces {
			positions = append(positions, rows.edges...)
			copy(twists[perm.NumCorners:], rows.edgeFlips)
		}
		p.generators[face] = perm.Generator(positions, twists)
	}
	return p
}

func (p *puzzle) Solved() perm.Matrix {
	return perm.Identity(p.size)
}

func (p *puzzle) Generator(face types.Face) perm.Matrix {
	g, ok := p.generators[face]
	if !ok {
		panic(fmt.Sprintf("cube: unknown face %q", face))
	}
	return g
}

var (
	// Pocket is the 2x2x2 cube: eight corners.
	Pocket Puzzle = newPuzzle(perm.NumCorners)
	// Standard is the 3x3x3 cube: eight corners and twelve edges.
	Standard Puzzle = newPuzzle(perm.NumPieces)
)

// Catalog holds the 18 move matrices of a puzzle indexed by move token.
// Anti-clockwise and half turns are powers of the clockwise generator.
type Catalog struct {
	moves [types.NumMoves]perm.Matrix
}

func NewCatalog(p Puzzle) *Catalog {
	c := &Catalog{}
	for t := range c.moves {
		m := types.MoveFromToken(uint8(t))
		c.moves[t] = p.Generator(m.Face).Pow(m.Turn.QuarterTurns())
	}
	return c
}

// Token returns the matrix for move token t.
func (c *Catalog) Token(t uint8) perm.Matrix {
	return c.moves[t]
}

// Move returns the matrix for m.
func (c *Catalog) Move(m types.Move) perm.Matrix {
	return c.moves[m.Token()]
}

// Sequence returns the product of moves in order.
func (c *Catalog) Sequence(start perm.Matrix, moves []types.Move) perm.Matrix {
	for _, m := range moves {
		start = start.Multiply(c.Move(m))
	}
	return start
}

var (
	pocketMoves   = NewCatalog(Pocket)
	standardMoves = NewCatalog(Standard)
)

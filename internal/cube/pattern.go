package cube

import (
	"fmt"

	"github.com/SeamusWaldron/cubesolver/internal/perm"
)

// Pattern index space sizes.
const (
	cornerTwistRanks = 2187 // 3^7

	// CornerPatternSize is 8! permutations times 3^7 orientations.
	CornerPatternSize = 40320 * cornerTwistRanks

	edgePatternPieces = 6
	// EdgePatternSize is 12!/6! placements times 2^6 orientations.
	EdgePatternSize = 665280 << edgePatternPieces

	// FirstEdges and LastEdges are the first piece of each tracked edge half.
	FirstEdges = perm.NumCorners
	LastEdges  = perm.NumCorners + edgePatternPieces
)

// CornerIndex ranks the corner permutation and orientation.
func (c Cube3) CornerIndex() int {
	var used [perm.NumCorners]bool

	rank := c.m.Position(7)
	twist := c.m.Value(7).Orientation()
	used[rank] = true
	rank *= 7
	for i := 6; i > 0; i-- {
		pos := c.m.Position(i)
		rank += pos - countUsed(used[:pos])
		rank *= i
		used[pos] = true

		twist = twist*3 + c.m.Value(i).Orientation()
	}
	return rank*cornerTwistRanks + twist
}

// EdgeIndex ranks the placement and flips of the six edges starting at
// piece first, which must be FirstEdges or LastEdges.
func (c Cube3) EdgeIndex(first int) int {
	checkEdgeHalf(first)
	var used [perm.NumEdges]bool

	rank, flips := 0, 0
	for i := 0; i < edgePatternPieces; i++ {
		pos := c.m.Position(first+i) - perm.NumCorners
		rank = rank*(perm.NumEdges-i) + pos - countUsed(used[:pos])
		used[pos] = true

		flips = flips<<1 | c.m.Value(first+i).Orientation()
	}
	return rank<<edgePatternPieces | flips
}

// CornerPattern returns a state whose CornerIndex is index, with every
// edge solved.
func CornerPattern(index int) Cube3 {
	if index < 0 || index >= CornerPatternSize {
		panic(fmt.Sprintf("cube: corner pattern index %d out of range", index))
	}
	rank, twist := index/cornerTwistRanks, index%cornerTwistRanks

	var digits [perm.NumCorners]int
	for i := 1; i < perm.NumCorners-1; i++ {
		digits[i] = rank % (i + 1)
		rank /= i + 1
	}
	digits[7] = rank

	positions := make([]int, perm.NumPieces)
	values := make([]perm.Piece, perm.NumPieces)
	var used [perm.NumCorners]bool
	for i := perm.NumCorners - 1; i > 0; i-- {
		positions[i] = nthUnused(used[:], digits[i])
		used[positions[i]] = true
	}
	positions[0] = nthUnused(used[:], 0)

	sum := 0
	for i := 1; i < perm.NumCorners; i++ {
		o := twist % 3
		twist /= 3
		sum += o
		values[i] = perm.NewPiece(i, o)
	}
	values[0] = perm.NewPiece(0, (3-sum%3)%3)

	for i := perm.NumCorners; i < perm.NumPieces; i++ {
		positions[i] = i
		values[i] = perm.NewPiece(i, 0)
	}
	return Cube3{m: perm.New(positions, values)}
}

// EdgePattern returns a state whose EdgeIndex(first) is index. Corners are
// solved and the untracked edges fill the free slots in order.
func EdgePattern(first, index int) Cube3 {
	checkEdgeHalf(first)
	if index < 0 || index >= EdgePatternSize {
		panic(fmt.Sprintf("cube: edge pattern index %d out of range", index))
	}
	rank, flips := index>>edgePatternPieces, index&(1<<edgePatternPieces-1)

	var digits [edgePatternPieces]int
	for i := edgePatternPieces - 1; i >= 0; i-- {
		radix := perm.NumEdges - i
		digits[i] = rank % radix
		rank /= radix
	}

	positions := make([]int, perm.NumPieces)
	values := make([]perm.Piece, perm.NumPieces)
	for i := 0; i < perm.NumCorners; i++ {
		positions[i] = i
		values[i] = perm.NewPiece(i, 0)
	}

	var used [perm.NumEdges]bool
	var tracked [perm.NumPieces]bool
	for i := 0; i < edgePatternPieces; i++ {
		slot := nthUnused(used[:], digits[i])
		used[slot] = true
		piece := first + i
		tracked[piece] = true
		positions[piece] = slot + perm.NumCorners
		values[piece] = perm.NewPiece(piece, flips>>(edgePatternPieces-1-i)&1)
	}
	for piece := perm.NumCorners; piece < perm.NumPieces; piece++ {
		if tracked[piece] {
			continue
		}
		slot := nthUnused(used[:], 0)
		used[slot] = true
		positions[piece] = slot + perm.NumCorners
		values[piece] = perm.NewPiece(piece, 0)
	}
	return Cube3{m: perm.New(positions, values)}
}

func checkEdgeHalf(first int) {
	if first != FirstEdges && first != LastEdges {
		panic(fmt.Sprintf("cube: no edge pattern starts at piece %d", first))
	}
}

func countUsed(used []bool) int {
	n := 0
	for _, u := range used {
		if u {
			n++
		}
	}
	return n
}

// nthUnused returns the n-th false entry of used, counting from zero.
func nthUnused(used []bool, n int) int {
	for i, u := range used {
		if u {
			continue
		}
		if n == 0 {
			return i
		}
		n--
	}
	panic("cube: pattern digit out of range")
}

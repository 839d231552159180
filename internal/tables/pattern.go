// Package tables stores pattern distance tables: for every index of a
// reduced cube pattern, the fewest moves that solve that pattern, packed
// two entries per byte.
package tables

import "github.com/SeamusWaldron/cubesolver/internal/cube"

// Pattern is a projection of the 3x3x3 cube onto a subset of its pieces.
type Pattern struct {
	Name string
	// File is the table's file name inside a table directory.
	File string
	// Size is the number of pattern indexes.
	Size int
	// Index ranks the tracked pieces of a cube.
	Index func(cube.Cube3) int
	// State returns a cube whose tracked pieces have the given index.
	State func(index int) cube.Cube3
}

// SolvedIndex is the index of the solved cube.
func (p Pattern) SolvedIndex() int {
	return p.Index(cube.Solved3())
}

// Bytes is the table size on disk.
func (p Pattern) Bytes() int {
	return (p.Size + 1) / 2
}

var (
	Corners = Pattern{
		Name:  "corners",
		File:  "3x3CornerDistances",
		Size:  cube.CornerPatternSize,
		Index: cube.Cube3.CornerIndex,
		State: cube.CornerPattern,
	}
	FirstEdges = Pattern{
		Name:  "first-edges",
		File:  "3x3FirstSixEdgeDistances",
		Size:  cube.EdgePatternSize,
		Index: func(c cube.Cube3) int { return c.EdgeIndex(cube.FirstEdges) },
		State: func(i int) cube.Cube3 { return cube.EdgePattern(cube.FirstEdges, i) },
	}
	LastEdges = Pattern{
		Name:  "last-edges",
		File:  "3x3LastSixEdgeDistances",
		Size:  cube.EdgePatternSize,
		Index: func(c cube.Cube3) int { return c.EdgeIndex(cube.LastEdges) },
		State: func(i int) cube.Cube3 { return cube.EdgePattern(cube.LastEdges, i) },
	}
)

// Patterns lists the tables the 3x3x3 heuristic needs.
var Patterns = []Pattern{Corners, FirstEdges, LastEdges}

// ByName returns the pattern called name.
func ByName(name string) (Pattern, bool) {
	for _, p := range Patterns {
		if p.Name == name {
			return p, true
		}
	}
	return Pattern{}, false
}

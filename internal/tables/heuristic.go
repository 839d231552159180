package tables

import (
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
)

// Heuristic is an admissible lower bound on the moves needed to solve a
// 3x3x3 cube: the largest of its three pattern distances.
type Heuristic struct {
	corners, first, last *Table
}

func NewHeuristic(corners, first, last *Table) *Heuristic {
	return &Heuristic{corners: corners, first: first, last: last}
}

// LoadDir loads the three tables from dir. Tables left partial by a
// depth-limited generation run are rejected with ErrTableCorrupt.
func LoadDir(dir string) (*Heuristic, error) {
	loaded := make([]*Table, len(Patterns))
	for i, p := range Patterns {
		t, err := Load(filepath.Join(dir, p.File), p)
		if err != nil {
			return nil, errors.Wrap(err, "load heuristic")
		}
		if err := t.Verify(); err != nil {
			return nil, errors.Wrap(err, "load heuristic")
		}
		loaded[i] = t
	}
	return NewHeuristic(loaded[0], loaded[1], loaded[2]), nil
}

func (h *Heuristic) LowerBound(c cube.Cube3) int {
	return max(h.corners.Lookup(c), h.first.Lookup(c), h.last.Lookup(c))
}

package tables

import (
	"os"

	"github.com/pkg/errors"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
)

var (
	ErrTableSize    = errors.New("tables: table size does not match pattern")
	ErrTableCorrupt = errors.New("tables: table is corrupt")
)

// Unvisited marks entries a generation run did not reach.
const Unvisited = 0xf

// Table is a read-only pattern distance table. The low nibble of byte i
// holds entry 2i and the high nibble entry 2i+1. It is safe for concurrent
// use.
type Table struct {
	pattern Pattern
	solved  int
	data    []byte
}

// New wraps packed table data for p.
func New(p Pattern, data []byte) (*Table, error) {
	if len(data) != p.Bytes() {
		return nil, errors.Wrapf(ErrTableSize, "%s: %d bytes, want %d", p.Name, len(data), p.Bytes())
	}
	return &Table{pattern: p, solved: p.SolvedIndex(), data: data}, nil
}

// Load reads the table for p from path.
func Load(path string, p Pattern) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s table", p.Name)
	}
	t, err := New(p, data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return t, nil
}

// Save writes the packed table to path.
func (t *Table) Save(path string) error {
	if err := os.WriteFile(path, t.data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s table", t.pattern.Name)
	}
	return nil
}

func (t *Table) Pattern() Pattern {
	return t.pattern
}

// Distance returns the stored distance of index. The solved index always
// reads 0.
func (t *Table) Distance(index int) int {
	if index == t.solved {
		return 0
	}
	return nibble(t.data, index)
}

// Lookup returns the distance of c's pattern.
func (t *Table) Lookup(c cube.Cube3) int {
	return t.Distance(t.pattern.Index(c))
}

// Histogram counts entries per stored distance, Unvisited included.
func (t *Table) Histogram() [16]int {
	var h [16]int
	for i := 0; i < t.pattern.Size; i++ {
		h[t.Distance(i)]++
	}
	return h
}

// Verify checks that every entry was reached and the solved index is the
// only entry at distance 0.
func (t *Table) Verify() error {
	h := t.Histogram()
	if h[Unvisited] != 0 {
		return errors.Wrapf(ErrTableCorrupt, "%s: %d unvisited entries", t.pattern.Name, h[Unvisited])
	}
	if h[0] != 1 {
		return errors.Wrapf(ErrTableCorrupt, "%s: %d entries at distance 0", t.pattern.Name, h[0])
	}
	return nil
}

func nibble(data []byte, i int) int {
	return int(data[i>>1]>>((i&1)<<2)) & 0xf
}

func setNibble(data []byte, i int, v byte) {
	shift := (i & 1) << 2
	b := &data[i>>1]
	*b = *b&^(0xf<<shift) | v<<shift
}

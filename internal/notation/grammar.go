package notation

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// ErrInvalidNotation is returned for text that is not a move sequence.
var ErrInvalidNotation = errors.New("notation: invalid move notation")

// MaxExpandedMoves caps the length of a parsed sequence once groups are
// repeated out.
const MaxExpandedMoves = 10000

// An algorithm is a list of moves and parenthesised groups. A suffix of a
// count repeats, a prime inverts: "(R U R' U')6", "(R U)2'", "R2'".
type algorithm struct {
	Items []*item `parser:"@@*"`
}

type item struct {
	Group *group `parser:"  @@"`
	Move  *move  `parser:"| @@"`
}

type group struct {
	Items []*item `parser:"'(' @@* ')'"`
	Count *int    `parser:"@Count?"`
	Prime bool    `parser:"@Prime?"`
}

type move struct {
	Face  string `parser:"@Face"`
	Count *int   `parser:"@Count?"`
	Prime bool   `parser:"@Prime?"`
}

var algLexer = lexer.MustSimple([]lexer.SimpleRule{
	{"Face", `[RLUDFBrludfb]`},
	{"Count", `[0-9]+`},
	{"Prime", "['`’]"},
	{"Punct", `[()]`},
	{"whitespace", `[ \t\r\n,]+`},
})

var algParser = participle.MustBuild[algorithm](
	participle.Lexer(algLexer),
)

// Parse reads a move sequence. Groups are expanded, so the result holds
// only face turns.
func Parse(s string) ([]types.Move, error) {
	alg, err := algParser.ParseString("", s)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidNotation, "%q: %v", s, err)
	}
	moves, err := expand(alg.Items)
	if err != nil {
		return nil, errors.Wrapf(err, "%q", s)
	}
	return moves, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) []types.Move {
	moves, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return moves
}

func expand(items []*item) ([]types.Move, error) {
	var out []types.Move
	for _, it := range items {
		switch {
		case it.Move != nil:
			face, _ := faceFromChar(it.Move.Face[0])
			q := count(it.Move.Count)
			if it.Move.Prime {
				q = -q
			}
			if turn, ok := normalizeQuarters(q); ok {
				out = append(out, types.Move{Face: face, Turn: turn})
			}
		case it.Group != nil:
			body, err := expand(it.Group.Items)
			if err != nil {
				return nil, err
			}
			if len(body) == 0 {
				continue
			}
			if it.Group.Prime {
				body = types.InvertSequence(body)
			}
			n := count(it.Group.Count)
			if n > (MaxExpandedMoves-len(out))/len(body) {
				return nil, errors.Wrapf(ErrInvalidNotation, "expands to more than %d moves", MaxExpandedMoves)
			}
			for i := n; i > 0; i-- {
				out = append(out, body...)
			}
		}
		if len(out) > MaxExpandedMoves {
			return nil, errors.Wrapf(ErrInvalidNotation, "expands to more than %d moves", MaxExpandedMoves)
		}
	}
	return out, nil
}

func count(c *int) int {
	if c == nil {
		return 1
	}
	return *c
}

package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver/internal/notation"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

var (
	scrambleLength int
	scrambleSeed   uint64
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Print a random scramble",
	Long: `Print a random move sequence. No move turns the same face as the one
before it. Use --seed to repeat a scramble.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "n", 20, "Number of moves")
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "Random seed (0 = random)")
}

func runScramble(cmd *cobra.Command, args []string) error {
	if scrambleLength < 0 {
		return fmt.Errorf("--length must not be negative")
	}
	var r *rand.Rand
	if scrambleSeed != 0 {
		r = rand.New(rand.NewPCG(scrambleSeed, scrambleSeed))
	} else {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	fmt.Println(notation.Format(randomScramble(r, scrambleLength)))
	return nil
}

// randomScramble returns n moves where no move shares a face with the
// move before it.
func randomScramble(r *rand.Rand, n int) []types.Move {
	moves := make([]types.Move, 0, n)
	last := -1
	for len(moves) < n {
		t := r.IntN(types.NumMoves)
		if t/3 == last {
			continue
		}
		last = t / 3
		moves = append(moves, types.MoveFromToken(uint8(t)))
	}
	return moves
}

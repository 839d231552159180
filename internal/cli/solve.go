package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver"
)

var (
	solveSize      int
	solveNearDepth int
	solveTimeout   time.Duration
	solveShow      bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <moves>",
	Short: "Solve a scrambled cube",
	Long: `Apply a scramble to a solved cube and print a solution.

The scramble uses standard notation, with groups and repetitions:

  cubesolver solve "R U R' U' F2"
  cubesolver solve --size 3 "(R U R' U')3 F"

The 3x3x3 needs the pattern tables in --tables.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntVar(&solveSize, "size", 2, "Cube size, 2 or 3")
	solveCmd.Flags().IntVar(&solveNearDepth, "near-depth", 1, "Moves from solved finished by lookup (3x3x3)")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0, "Give up after this long (0 = no limit)")
	solveCmd.Flags().BoolVar(&solveShow, "show", false, "Print the cube before and after")
}

func runSolve(cmd *cobra.Command, args []string) error {
	c, err := cubesolver.NewCube(solveSize)
	if err != nil {
		return errors.Wrapf(err, "--size %d", solveSize)
	}
	scramble := strings.Join(args, " ")
	if err := c.ApplyNotation(scramble); err != nil {
		return err
	}
	if solveShow {
		fmt.Println(c.String())
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if solveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, solveTimeout)
		defer cancel()
	}

	s := cubesolver.NewSolver(
		cubesolver.WithTableDir(tableDir),
		cubesolver.WithWorkers(workers),
		cubesolver.WithNearDepth(solveNearDepth),
	)
	res, err := s.Solve(ctx, c)
	if err != nil {
		if errors.Is(err, cubesolver.ErrTablesNotLoaded) {
			return errors.Wrap(err, "run 'cubesolver tables generate' first")
		}
		return err
	}

	fmt.Printf("Scramble: %s\n", scramble)
	if len(res.Moves) == 0 {
		fmt.Println("Solution: (already solved)")
	} else {
		fmt.Printf("Solution: %s\n", cubesolver.FormatMoves(res.Moves))
	}
	fmt.Printf("Moves:    %d\n", len(res.Moves))
	if res.Reorientation != "" {
		fmt.Printf("Rotation: %s\n", res.Reorientation)
	}
	fmt.Printf("Nodes:    %d\n", res.Nodes)
	fmt.Printf("Time:     %v\n", res.Elapsed.Round(time.Millisecond))

	if solveShow {
		c.Apply(res.Moves...)
		fmt.Println()
		fmt.Println(c.String())
	}
	return nil
}

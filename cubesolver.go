// Package cubesolver solves 2x2x2 and 3x3x3 twisty cubes.
//
// # Features
//
//   - Cube state as a permutation of pieces with orientations
//   - Standard move notation with groups and repetitions
//   - Optimal 2x2x2 solving by bidirectional breadth-first search
//   - 3x3x3 solving by iterative-deepening A* over pattern tables
//
// # Quick Start
//
// Scramble a cube and solve it:
//
//	cube := cubesolver.NewCube2x2()
//	if err := cube.ApplyNotation("R U R' U' F2"); err != nil {
//	    log.Fatal(err)
//	}
//
//	solver := cubesolver.NewSolver()
//	res, err := solver.Solve2x2(context.Background(), cube)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Solution:", cubesolver.FormatMoves(res.Moves))
//
// # 3x3x3 Solving
//
// The 3x3x3 solver needs the three pattern distance tables written by
// "cubesolver tables generate":
//
//	solver := cubesolver.NewSolver(cubesolver.WithTableDir("./tables"))
//	cube := cubesolver.NewCube3x3()
//	cube.Apply(cubesolver.TPerm...)
//	res, err := solver.Solve3x3(ctx, cube)
//
// # Predefined Moves
//
// The package provides predefined moves for convenience:
//
//	cubesolver.R      // Right clockwise
//	cubesolver.RPrime // Right counter-clockwise
//	cubesolver.R2     // Right 180
//	// ... and similarly for L, U, D, F, B
package cubesolver

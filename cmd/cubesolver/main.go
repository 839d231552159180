// Cube Solver - CLI application for solving 2x2x2 and 3x3x3 Rubik's cubes.
package main

import (
	"github.com/SeamusWaldron/cubesolver/internal/cli"
)

func main() {
	cli.Execute()
}

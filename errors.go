package cubesolver

import (
	"github.com/pkg/errors"

	"github.com/SeamusWaldron/cubesolver/internal/notation"
	"github.com/SeamusWaldron/cubesolver/internal/solver"
)

// Sentinel errors for the cubesolver package.
var (
	// Parsing errors
	ErrInvalidNotation = notation.ErrInvalidNotation

	// Solver errors
	ErrTablesNotLoaded = errors.New("cubesolver: pattern tables not loaded")
	ErrUnsupportedSize = errors.New("cubesolver: unsupported cube size")
	ErrNoSolution      = solver.ErrNoSolution
)

// SPDX-License-Identifier: MIT

package lu

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lusolve/matrix"
)

// The lu package re-exports the matrix sentinels it can return so callers do
// not need to import matrix just to match errors. They are the same values:
// errors.Is(err, lu.ErrDimension) == errors.Is(err, matrix.ErrDimensionMismatch).
var (
	// ErrDimension is returned when a matrix is not square or a vector length
	// does not match the matrix order. Always detected before any computation.
	ErrDimension = matrix.ErrDimensionMismatch

	// ErrSingular is returned by BackSubstitute (and therefore Solve) when
	// U has an exact zero on its diagonal.
	ErrSingular = matrix.ErrSingular

	// ErrNilMatrix is returned when a nil matrix is passed in.
	ErrNilMatrix = matrix.ErrNilMatrix

	// ErrInPlaceNeedsDense is returned when WithInPlace is requested for a
	// matrix that is not a *matrix.Dense.
	ErrInPlaceNeedsDense = errors.New("lu: in-place factorization requires *matrix.Dense")
)

// Operation tags for error wrapping.
const (
	opFactorize = "Factorize"
	opForward   = "ForwardSubstitute"
	opBack      = "BackSubstitute"
	opSolve     = "Solve"
	opSolveMany = "SolveMany"
	opResidual  = "Residual"
	opApply     = "Permutation.Apply"
)

// luErrorf wraps err with an operation tag; errors.Is still reaches the sentinel.
func luErrorf(tag string, err error) error {
	return fmt.Errorf("lu: %s: %w", tag, err)
}

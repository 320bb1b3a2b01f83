// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lusolve/matrix"
)

// Solve returns x with A·x = b.
//
// Protocol: Factorize(a) → b'[i] = b[P[i]] → ForwardSubstitute(L, b') →
// BackSubstitute(U, y). Dimension problems with a or b are reported before
// the factorization starts.
//
// Errors: ErrNilMatrix, ErrDimension, ErrSingular, ErrInPlaceNeedsDense.
// Complexity: Time O(n³), Space O(n²).
func Solve(a matrix.Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, luErrorf(opSolve, err)
	}
	f, err := Factorize(a, opts...)
	if err != nil {
		return nil, err
	}

	return f.Solve(b)
}

// Solve reuses the factorization for one right-hand side in O(n²).
func (f *Factorization) Solve(b []float64) ([]float64, error) {
	bp, err := f.p.Apply(b)
	if err != nil {
		return nil, luErrorf(opSolve, err)
	}
	y, err := ForwardSubstitute(f.l, bp)
	if err != nil {
		return nil, luErrorf(opSolve, err)
	}
	x, err := BackSubstitute(f.u, y)
	if err != nil {
		return nil, luErrorf(opSolve, err)
	}

	return x, nil
}

// SolveMany solves A·x = b for every b in bs against the same factorization.
// The first failure aborts the batch and names the offending index.
func (f *Factorization) SolveMany(bs [][]float64) ([][]float64, error) {
	xs := make([][]float64, len(bs))
	var err error
	for i, b := range bs {
		if xs[i], err = f.Solve(b); err != nil {
			return nil, luErrorf(opSolveMany, fmt.Errorf("rhs %d: %w", i, err))
		}
	}

	return xs, nil
}

// Residual returns max_i |(A·x − b)[i]|, the ∞-norm of the residual.
//
// Errors: ErrNilMatrix, ErrDimension (len(x) != Cols or len(b) != Rows).
func Residual(a matrix.Matrix, x, b []float64) (float64, error) {
	ax, err := matrix.MatVec(a, x)
	if err != nil {
		return 0, luErrorf(opResidual, err)
	}
	if len(b) != len(ax) {
		return 0, luErrorf(opResidual, fmt.Errorf("len(b)=%d, rows=%d: %w", len(b), len(ax), ErrDimension))
	}

	return floats.Distance(ax, b, math.Inf(1)), nil
}

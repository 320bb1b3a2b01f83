// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"

	"github.com/katalvlaran/lusolve/matrix"
)

// Factorization is the result of Factorize: P·A = L·U.
//
// L, U and the pivot record are derived from a single elimination buffer and
// are not mutable afterwards; accessors hand out copies.
type Factorization struct {
	n      int
	packed *matrix.Dense // multipliers below the diagonal, U on/above it
	l, u   *matrix.Dense
	p      Permutation
}

// Factorize computes the LU factorization of a square matrix with partial pivoting.
// Implementation:
//   - Stage 1: validate a (not nil, square); nothing is computed on failure.
//   - Stage 2: copy a into a row-major work buffer (or use it directly under WithInPlace).
//   - Stage 3: eliminate column by column, recording swaps in the pivot record.
//   - Stage 4: split the buffer into unit-lower L and upper U.
//
// Behavior highlights:
//   - The caller's matrix is left untouched unless WithInPlace is given.
//   - An exact zero pivot column is skipped, not rejected; the singularity
//     surfaces later as ErrSingular from BackSubstitute.
//   - NaN/Inf entries propagate per IEEE 754; no numeric policy is applied.
//   - Deterministic: identical input yields bit-identical L, U and pivots,
//     with or without WithWorkers.
//
// Inputs:
//   - a: square Matrix (n×n, n ≥ 1).
//   - opts: WithInPlace, WithWorkers, WithParallelThreshold.
//
// Returns:
//   - *Factorization, or nil on any error.
//
// Errors:
//   - ErrNilMatrix, ErrDimension (non-square), ErrInPlaceNeedsDense.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Factorize(a matrix.Matrix, opts ...Option) (*Factorization, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, luErrorf(opFactorize, err)
	}
	o := gatherOptions(opts...)
	n := a.Rows()

	work, err := workBuffer(a, o.inPlace)
	if err != nil {
		return nil, luErrorf(opFactorize, err)
	}

	p := IdentityPermutation(n)
	if err = eliminate(work, p, o); err != nil {
		return nil, luErrorf(opFactorize, err)
	}

	return newFactorization(work, p)
}

// Decompose is the triple-returning form of Factorize: (L, U, pivot record).
func Decompose(a matrix.Matrix, opts ...Option) (l, u matrix.Matrix, p Permutation, err error) {
	f, err := Factorize(a, opts...)
	if err != nil {
		return nil, nil, nil, err
	}

	return f.L(), f.U(), f.Pivots(), nil
}

// workBuffer returns the Dense the elimination will run on.
// In-place mode hands back the caller's *Dense itself.
func workBuffer(a matrix.Matrix, inPlace bool) (*matrix.Dense, error) {
	d, isDense := a.(*matrix.Dense)
	if inPlace {
		if !isDense {
			return nil, ErrInPlaceNeedsDense
		}

		return d, nil
	}
	if isDense {
		return d.Copy(), nil
	}

	// Generic fallback: read through the interface.
	n := a.Rows()
	w, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	raw := w.Raw()
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			raw[i*n+j] = v
		}
	}

	return w, nil
}

// newFactorization splits the packed buffer into L and U and takes ownership
// of a private copy, so in-place callers may keep mutating their matrix.
func newFactorization(work *matrix.Dense, p Permutation) (*Factorization, error) {
	n := work.Rows()
	l, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, luErrorf(opFactorize, err)
	}
	u, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, luErrorf(opFactorize, err)
	}

	src, lr, ur := work.Raw(), l.Raw(), u.Raw()
	var i, j, base int
	for i = 0; i < n; i++ {
		base = i * n
		for j = 0; j < i; j++ {
			lr[base+j] = src[base+j] // multipliers
		}
		for j = i; j < n; j++ {
			ur[base+j] = src[base+j] // upper triangle incl. diagonal
		}
	}

	return &Factorization{n: n, packed: work.Copy(), l: l, u: u, p: p}, nil
}

// N returns the order of the factorized matrix.
func (f *Factorization) N() int { return f.n }

// L returns a copy of the unit lower-triangular factor.
func (f *Factorization) L() matrix.Matrix { return f.l.Clone() }

// U returns a copy of the upper-triangular factor.
func (f *Factorization) U() matrix.Matrix { return f.u.Clone() }

// Pivots returns a copy of the pivot record.
func (f *Factorization) Pivots() Permutation { return f.p.Clone() }

// Packed returns a copy of the combined elimination buffer: multipliers
// strictly below the diagonal, U on and above it.
func (f *Factorization) Packed() matrix.Matrix { return f.packed.Clone() }

// Det returns det(A) = sign(P)·Π U[i,i]. A zero pivot yields 0.
func (f *Factorization) Det() float64 {
	det := f.p.Sign()
	raw := f.u.Raw()
	for i := 0; i < f.n; i++ {
		det *= raw[i*f.n+i]
	}

	return det
}

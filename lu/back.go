// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"

	"github.com/katalvlaran/lusolve/matrix"
)

// BackSubstitute solves U·x = y for an upper-triangular U.
//
//	x[i] = (y[i] − Σ_{j>i} U[i,j]·x[j]) / U[i,i],  i = n-1..0
//
// Entries below the diagonal are ignored.
//
// Errors:
//   - ErrNilMatrix, ErrDimension (non-square U or len(y) != n).
//   - ErrSingular when U[i,i] == 0 exactly; the error names the row and no
//     partial solution is returned.
//
// Complexity: Time O(n²), Space O(n).
func BackSubstitute(u matrix.Matrix, y []float64) ([]float64, error) {
	if err := matrix.ValidateSystem(u, y); err != nil {
		return nil, luErrorf(opBack, err)
	}
	n := u.Rows()
	x := make([]float64, n)

	var i, j, base int
	var sum, pivot float64
	if d, ok := u.(*matrix.Dense); ok {
		raw := d.Raw()
		for i = n - 1; i >= 0; i-- {
			base = i * n
			pivot = raw[base+i]
			if pivot == matrix.ZeroPivot {
				return nil, luErrorf(opBack, fmt.Errorf("U[%d,%d] is zero: %w", i, i, ErrSingular))
			}
			sum = y[i]
			for j = i + 1; j < n; j++ {
				sum -= raw[base+j] * x[j]
			}
			x[i] = sum / pivot
		}

		return x, nil
	}

	// Fallback: generic interface version
	var v float64
	var err error
	for i = n - 1; i >= 0; i-- {
		if pivot, err = u.At(i, i); err != nil {
			return nil, luErrorf(opBack, fmt.Errorf("At(%d,%d): %w", i, i, err))
		}
		if pivot == matrix.ZeroPivot {
			return nil, luErrorf(opBack, fmt.Errorf("U[%d,%d] is zero: %w", i, i, ErrSingular))
		}
		sum = y[i]
		for j = i + 1; j < n; j++ {
			if v, err = u.At(i, j); err != nil {
				return nil, luErrorf(opBack, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			sum -= v * x[j]
		}
		x[i] = sum / pivot
	}

	return x, nil
}

// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"

	"github.com/katalvlaran/lusolve/matrix"
)

// ForwardSubstitute solves L·x = b for a unit lower-triangular L.
//
//	x[i] = b[i] − Σ_{j<i} L[i,j]·x[j],  i = 0..n-1
//
// The diagonal of L is never read: it is assumed to be all ones, as produced
// by Factorize. A non-unit diagonal silently yields a wrong x; entries above
// the diagonal are ignored.
//
// Errors: ErrNilMatrix, ErrDimension (non-square L or len(b) != n).
// Complexity: Time O(n²), Space O(n).
func ForwardSubstitute(l matrix.Matrix, b []float64) ([]float64, error) {
	if err := matrix.ValidateSystem(l, b); err != nil {
		return nil, luErrorf(opForward, err)
	}
	n := l.Rows()
	x := make([]float64, n)

	var i, j, base int
	var sum float64
	if d, ok := l.(*matrix.Dense); ok {
		raw := d.Raw()
		for i = 0; i < n; i++ {
			sum = b[i]
			base = i * n
			for j = 0; j < i; j++ {
				sum -= raw[base+j] * x[j]
			}
			x[i] = sum
		}

		return x, nil
	}

	// Fallback: generic interface version
	var v float64
	var err error
	for i = 0; i < n; i++ {
		sum = b[i]
		for j = 0; j < i; j++ {
			if v, err = l.At(i, j); err != nil {
				return nil, luErrorf(opForward, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			sum -= v * x[j]
		}
		x[i] = sum
	}

	return x, nil
}

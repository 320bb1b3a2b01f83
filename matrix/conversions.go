// SPDX-License-Identifier: MIT
// Package matrix: conversions between nested [][]float64 rows and Dense.
// System files and reports speak in nested rows; kernels speak in Dense.

package matrix

import "fmt"

// NewDenseFrom builds a Dense from nested rows (rows[i][j] → (i,j)).
// Implementation:
//   - Stage 1: reject empty input (ErrInvalidDimensions) and ragged rows (ErrDimensionMismatch).
//   - Stage 2: resolve the numeric policy and copy values row by row.
//
// Behavior highlights:
//   - The input slices are copied; later mutation of rows does not leak in.
//   - Under the default policy NaN/±Inf entries are rejected with ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	r, c := len(rows), len(rows[0])
	d, err := newDenseWithPolicy(r, c, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}

	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(rows[i]), c, ErrDimensionMismatch))
		}
		for j = 0; j < c; j++ {
			if o.validateNaNInf && isNonFinite(rows[i][j]) {
				return nil, matrixErrorf(opFromRows, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
		}
		copy(d.data[i*c:(i+1)*c], rows[i])
	}

	return d, nil
}

// ToRows exports m as freshly allocated nested rows.
// Fast-path for *Dense; generic fallback via At.
// Complexity: Time O(r*c), Space O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToRows, err)
	}
	r, c := m.Rows(), m.Cols()
	out := make([][]float64, r)

	if d, ok := m.(*Dense); ok {
		for i := 0; i < r; i++ {
			out[i] = make([]float64, c)
			copy(out[i], d.data[i*c:(i+1)*c])
		}

		return out, nil
	}

	var err error
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opToRows, err)
			}
		}
	}

	return out, nil
}

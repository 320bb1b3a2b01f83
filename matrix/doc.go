// Package matrix provides the dense storage and the small set of kernels the
// LU solver is built on.
//
// The matrix package provides:
//
//   - Matrix, a minimal interface over two-dimensional float64 arrays with
//     bounds-checked At/Set and deep Clone.
//   - Dense, a row-major implementation backed by a single flat slice.
//   - Central validators (nil, square, vector length, multiplication shape)
//     that every kernel runs before touching data.
//   - Mul and MatVec kernels with a *Dense fast-path and an interface fallback.
//   - AllClose for tolerance-based comparison in tests and diagnostics.
//
// All user-triggered failures are reported as sentinel errors (see errors.go)
// and are matched with errors.Is. Public methods never panic on bad indices.
//
//	a, _ := matrix.NewDenseFrom([][]float64{{8, 1, 6}, {3, 5, 7}, {4, 9, 2}})
//	y, _ := matrix.MatVec(a, []float64{1, 1, 1})
package matrix

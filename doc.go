// Package lusolve is a small dense linear-algebra toolkit built around one
// job: solving A·x = b through an LU factorization with partial pivoting.
//
// 🚀 What is in the box?
//
//	• matrix/: row-major Dense storage, validators, Mul/MatVec, AllClose
//	• lu/: Factorize (P·A = L·U), ForwardSubstitute, BackSubstitute,
//	       Solve, SolveMany, Residual, the Permutation pivot record
//	• system/: YAML system files in, YAML reports out
//	• cmd/lusolve: `solve`, `factor` and `demo` on the command line
//
// ✨ Guarantees:
//
//   - Dimension errors are reported before any arithmetic happens.
//   - A zero pivot never turns into a silent Inf: BackSubstitute returns ErrSingular.
//   - Identical input gives bit-identical output, sequential or parallel.
//
// Quick example:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{8, 1, 6}, {3, 5, 7}, {4, 9, 2}})
//	x, _ := lu.Solve(a, []float64{1, 2, 3}) // [0.05 0.3 0.05]
//
// Sample systems live in examples/:
//
//	go run ./cmd/lusolve solve -f examples/magic3.yaml
package lusolve

// Package lu solves dense linear systems A·x = b through an LU factorization
// with partial pivoting followed by forward and backward substitution.
//
// 🚀 What is LU with partial pivoting?
//
//	Gaussian elimination rewritten as P·A = L·U, where
//	  • P is a row permutation chosen while eliminating (largest |pivot| first),
//	  • L is unit lower-triangular (the elimination multipliers),
//	  • U is upper-triangular (the reduced matrix).
//	Solving A·x = b then costs one permutation and two triangular solves.
//
// ✨ Key features:
//   - Correct column pivot scan: rows k..n-1 of column k, first maximum wins.
//   - Zero pivots are tolerated during factorization and reported by
//     BackSubstitute as ErrSingular, never as silent Inf/NaN.
//   - The caller's matrix is copied unless WithInPlace() is given.
//   - Optional parallel trailing-row update (WithWorkers) with results
//     bit-identical to the sequential path.
//   - One factorization, many right-hand sides (Factorization.SolveMany).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lusolve/lu"
//
//	f, err := lu.Factorize(a)          // P·A = L·U
//	x, err := f.Solve(b)               // b' = P·b → L·y = b' → U·x = y
//	r, err := lu.Residual(a, x, b)     // max |A·x − b|
//
// Performance:
//
//   - Factorize: O(n³) time, O(n²) memory.
//   - ForwardSubstitute / BackSubstitute / Solve on a factorization: O(n²).
//
// Errors:
//   - ErrDimension: non-square matrix or vector length ≠ n (always before any computation).
//   - ErrSingular: exact zero on the diagonal of U during back substitution.
//   - ErrNilMatrix: nil matrix argument.
package lu

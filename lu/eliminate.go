// SPDX-License-Identifier: MIT

package lu

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lusolve/matrix"
)

// eliminate runs Gaussian elimination with partial pivoting over the
// square buffer work, recording every row swap in p.
//
// Algorithm, for k = 0..n-2:
//  1. m := argmax_{i in k..n-1} |a[i,k]| (first maximum wins).
//  2. a[m,k] == 0 ⇒ the column is singular or already reduced: skip it.
//  3. m != k ⇒ swap rows k and m of a and positions k and m of p.
//  4. a[i,k] /= a[k,k] for i > k (multipliers stay below the diagonal),
//     then a[i,j] -= a[i,k]*a[k,j] for i, j > k.
//
// On return work holds U on and above the diagonal and the multipliers of L
// strictly below it.
func eliminate(work *matrix.Dense, p Permutation, o options) error {
	a, n := work.Raw(), work.Rows()
	var k, m, rows int
	var pivot float64
	for k = 0; k < n-1; k++ {
		m = pivotRow(a, n, k)
		if a[m*n+k] == matrix.ZeroPivot {
			continue
		}
		if m != k {
			if err := work.SwapRows(k, m); err != nil {
				return err
			}
			p.Swap(k, m)
		}
		pivot = a[k*n+k]
		rows = n - k - 1
		if o.workers > 1 && rows >= o.parallelThreshold && rows > 1 {
			eliminateParallel(a, n, k, pivot, o.workers)
			continue
		}
		eliminateRows(a, n, k, pivot, k+1, n)
	}

	return nil
}

// pivotRow scans column k over rows k..n-1 and returns the row holding the
// largest magnitude. Ties keep the lowest row index (strict >).
func pivotRow(a []float64, n, k int) int {
	m := k
	best := math.Abs(a[k*n+k])
	var v float64
	for i := k + 1; i < n; i++ {
		v = math.Abs(a[i*n+k])
		if v > best {
			best, m = v, i
		}
	}

	return m
}

// eliminateRows applies step k to rows lo..hi-1: store the multiplier in
// column k and update columns k+1..n-1. Rows are independent of each other.
func eliminateRows(a []float64, n, k int, pivot float64, lo, hi int) {
	rowK := a[k*n : (k+1)*n]
	var i, j int
	var f float64
	for i = lo; i < hi; i++ {
		row := a[i*n : (i+1)*n]
		f = row[k] / pivot
		row[k] = f
		for j = k + 1; j < n; j++ {
			row[j] -= f * rowK[j]
		}
	}
}

// eliminateParallel fans step k out over contiguous row chunks. Wait is the
// barrier that completes step k before the next pivot search reads column k+1.
func eliminateParallel(a []float64, n, k int, pivot float64, workers int) {
	lo := k + 1
	chunk := (n - lo + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for start := lo; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			eliminateRows(a, n, k, pivot, start, end)
			return nil
		})
	}
	_ = g.Wait() // workers never fail; Wait is only the barrier
}

// SPDX-License-Identifier: MIT
package lu_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lusolve/matrix"
)

// hide masks *matrix.Dense so code under test takes the interface fallback.
type hide struct{ matrix.Matrix }

// magic3 is the 3×3 magic square used as the reference system throughout.
var magic3 = [][]float64{
	{8, 1, 6},
	{3, 5, 7},
	{4, 9, 2},
}

// magicB is the right-hand side paired with magic3; x = [0.05, 0.3, 0.05].
var magicB = []float64{1, 2, 3}

// MustFrom builds a Dense from rows or fails the test.
func MustFrom(t testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFrom(rows, opts...)
	require.NoError(t, err)

	return d
}

// MustRows exports m as nested rows or fails the test.
func MustRows(t testing.TB, m matrix.Matrix) [][]float64 {
	t.Helper()
	rows, err := matrix.ToRows(m)
	require.NoError(t, err)

	return rows
}

// RandSystem returns a deterministic n×n system with U(-1,1) entries.
// diagBoost is added to the diagonal to steer conditioning.
func RandSystem(t testing.TB, n int, seed int64, diagBoost float64) (*matrix.Dense, []float64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	a, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	raw := a.Raw()
	for i := range raw {
		raw[i] = rng.Float64()*2 - 1
	}
	for i := 0; i < n; i++ {
		raw[i*n+i] += diagBoost
	}
	b := make([]float64, n)
	for i := range b {
		b[i] = rng.Float64()*2 - 1
	}

	return a, b
}

// propUnitLowerTriangular checks diag(L) == 1 and zeros above the diagonal, exactly.
func propUnitLowerTriangular(t *testing.T, l matrix.Matrix) {
	t.Helper()
	rows := MustRows(t, l)
	for i := range rows {
		require.Equalf(t, 1.0, rows[i][i], "diag(L)[%d]", i)
		for j := i + 1; j < len(rows); j++ {
			require.Equalf(t, 0.0, rows[i][j], "upper(L)[%d,%d]", i, j)
		}
	}
}

// propUpperTriangular checks U[i,j] == 0 for i > j, exactly.
func propUpperTriangular(t *testing.T, u matrix.Matrix) {
	t.Helper()
	rows := MustRows(t, u)
	for i := range rows {
		for j := 0; j < i; j++ {
			require.Equalf(t, 0.0, rows[i][j], "lower(U)[%d,%d]", i, j)
		}
	}
}

// propReconstruction checks P·A ≈ L·U.
func propReconstruction(t *testing.T, a *matrix.Dense, l, u matrix.Matrix, p []int, rtol, atol float64) {
	t.Helper()
	cols := make([]int, a.Cols())
	for j := range cols {
		cols[j] = j
	}
	pa, err := a.Induced(p, cols)
	require.NoError(t, err)
	lu, err := matrix.Mul(l, u)
	require.NoError(t, err)
	ok, err := matrix.AllClose(pa, lu, rtol, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "P·A != L·U\nP·A=\n%v\nL·U=\n%v", pa, lu)
}

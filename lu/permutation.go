// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"

	"github.com/katalvlaran/lusolve/matrix"
)

// Permutation is the pivot record of a factorization.
//
// P[i] is the original row index now occupying position i, so the permuted
// right-hand side is b'[i] = b[P[i]] and (P·A)[i,:] = A[P[i],:].
// A Permutation produced by Factorize is always a bijection on {0..n-1}.
type Permutation []int

// IdentityPermutation returns [0, 1, ..., n-1].
func IdentityPermutation(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// Swap exchanges positions i and j. Callers keep it in lockstep with the
// matching row swap of the elimination buffer.
func (p Permutation) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

// Len returns the order of the permutation.
func (p Permutation) Len() int { return len(p) }

// Clone returns an independent copy.
func (p Permutation) Clone() Permutation {
	cp := make(Permutation, len(p))
	copy(cp, p)

	return cp
}

// Valid reports whether p is a bijection on {0..len(p)-1}:
// every index in range and none repeated.
// Complexity: O(n) time, O(n) space.
func (p Permutation) Valid() bool {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}

// Inverse returns q with q[p[i]] = i.
// Assumes p is valid.
func (p Permutation) Inverse() Permutation {
	q := make(Permutation, len(p))
	for i, v := range p {
		q[v] = i
	}

	return q
}

// Apply returns b' with b'[i] = b[p[i]], the direction Solve needs to line
// b up with the rows of L·U.
//
// Errors: ErrDimension when len(b) != len(p).
func (p Permutation) Apply(b []float64) ([]float64, error) {
	if len(b) != len(p) {
		return nil, luErrorf(opApply, fmt.Errorf("len(b)=%d, n=%d: %w", len(b), len(p), ErrDimension))
	}
	out := make([]float64, len(p))
	for i, src := range p {
		out[i] = b[src]
	}

	return out, nil
}

// ApplyInverse undoes Apply: out[p[i]] = b[i].
//
// Errors: ErrDimension when len(b) != len(p).
func (p Permutation) ApplyInverse(b []float64) ([]float64, error) {
	if len(b) != len(p) {
		return nil, luErrorf(opApply, fmt.Errorf("len(b)=%d, n=%d: %w", len(b), len(p), ErrDimension))
	}
	out := make([]float64, len(p))
	for i, dst := range p {
		out[dst] = b[i]
	}

	return out, nil
}

// Sign returns +1 for an even permutation and -1 for an odd one.
// Computed from the cycle decomposition: parity = (n - cycles) mod 2.
// Assumes p is valid.
func (p Permutation) Sign() float64 {
	visited := make([]bool, len(p))
	cycles := 0
	for i := range p {
		if visited[i] {
			continue
		}
		cycles++
		for j := i; !visited[j]; j = p[j] {
			visited[j] = true
		}
	}
	if (len(p)-cycles)%2 == 0 {
		return 1
	}

	return -1
}

// Matrix materializes P as a dense 0/1 matrix with P[i, p[i]] = 1,
// so that Mul(P, A) equals A with its rows reordered by p.
// Assumes p is valid.
func (p Permutation) Matrix() (*matrix.Dense, error) {
	m, err := matrix.NewDense(len(p), len(p))
	if err != nil {
		return nil, err
	}
	raw := m.Raw()
	for i, v := range p {
		raw[i*len(p)+v] = 1
	}

	return m, nil
}

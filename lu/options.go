// SPDX-License-Identifier: MIT

// Package lu: functional options for Factorize/Solve.
//
// Design goals:
//   - Deterministic behavior: no global state; every option yields the same
//     factors bit for bit, only the execution strategy changes.
//   - Safe by construction: constructors panic only on nonsensical values
//     (programmer error), never on data.
package lu

// Defaults (single source of truth).
const (
	// DefaultWorkers keeps elimination sequential.
	DefaultWorkers = 1

	// DefaultParallelThreshold is the minimum number of trailing rows in an
	// elimination step before the update is fanned out to workers.
	DefaultParallelThreshold = 64
)

const (
	panicWorkersInvalid   = "lu: WithWorkers: n must be >= 1"
	panicThresholdInvalid = "lu: WithParallelThreshold: n must be >= 0"
)

// Option configures Factorize and Solve.
type Option func(*options)

type options struct {
	inPlace           bool // overwrite the caller's *Dense with packed LU
	workers           int  // >= 1
	parallelThreshold int  // >= 0
}

// WithInPlace makes Factorize overwrite the caller's *matrix.Dense with the
// packed factorization: multipliers strictly below the diagonal, U on and
// above it, rows in pivot order. The returned Factorization keeps its own copy.
//
// Non-Dense inputs fail with ErrInPlaceNeedsDense.
func WithInPlace() Option {
	return func(o *options) { o.inPlace = true }
}

// WithWorkers splits the trailing-row update of every elimination step across
// n goroutines. Pivot search and row swaps stay sequential, so each step k
// sees the fully updated column k. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// WithParallelThreshold sets the minimum trailing-row count for the parallel
// path. Zero parallelizes every step when WithWorkers(n>1) is set. Panics if n < 0.
func WithParallelThreshold(n int) Option {
	if n < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *options) { o.parallelThreshold = n }
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) options {
	o := options{
		workers:           DefaultWorkers,
		parallelThreshold: DefaultParallelThreshold,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

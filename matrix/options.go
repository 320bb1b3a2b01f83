// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public constructors consume ...Option.
//
// Notes:
//   - The numeric policy only guards ingestion (Set, NewDenseFrom). Kernels
//     that write the flat buffer directly (factorization, Mul, MatVec) follow
//     IEEE 754 and let NaN/Inf propagate.
package matrix

import "math"

// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
const DefaultValidateNaNInf = true

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables strict finite-value validation.
//
// Behavior highlights:
//   - NaN and ±Inf are rejected by Set and by NewDenseFrom.
//   - This is the default; use WithNoValidateNaNInf to relax.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
//
// Behavior highlights:
//   - Allows ±Inf/NaN to pass through on newly created matrices.
//   - The flag propagates only on creation; Clone preserves it.
//
// AI-Hints:
//   - System files may legitimately carry non-finite entries to observe IEEE
//     propagation through the factorization; build those with this option.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins; Time O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

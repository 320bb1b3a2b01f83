// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lusolve/matrix"
)

func TestAllClose_Basics(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{0, 0, 0, 0})
	b := NewFilledDense(t, 2, 2, []float64{0, 0, 0, 0})

	// Identical.
	ok, err := matrix.AllClose(a, b, 1e-8, 1e-8)
	if err != nil || !ok {
		t.Fatalf("AllClose identical: ok=%v err=%v", ok, err)
	}

	// Slightly different but within tolerance.
	MustSet(t, b, 1, 1, 1e-10)
	ok, err = matrix.AllClose(a, b, 1e-8, 1e-8)
	if err != nil || !ok {
		t.Fatalf("AllClose within tol: ok=%v err=%v", ok, err)
	}

	// Outside tolerance (tight atol).
	MustSet(t, b, 0, 0, 1e-6)
	ok, err = matrix.AllClose(a, b, 0, 1e-8) // pure absolute tolerance
	if err != nil {
		t.Fatalf("AllClose outside tol err: %v", err)
	}
	if ok {
		t.Fatalf("AllClose outside tol: expected false, got true")
	}
}

// AllClose errors: shape mismatch, nil matrices, bad tolerances.
func TestAllClose_Errors(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{0, 0, 0, 0})
	b3x := NewFilledDense(t, 2, 3, []float64{0, 0, 0, 0, 0, 0})

	if _, err := matrix.AllClose(a, b3x, 1e-6, 1e-6); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("AllClose dim mismatch: want ErrDimensionMismatch, got %v", err)
	}
	if _, err := matrix.AllClose(nil, a, 1e-6, 1e-6); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("AllClose nil a: want ErrNilMatrix, got %v", err)
	}
	if _, err := matrix.AllClose(a, nil, 1e-6, 1e-6); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("AllClose nil b: want ErrNilMatrix, got %v", err)
	}
	if _, err := matrix.AllClose(a, a, math.NaN(), 1e-6); !errors.Is(err, matrix.ErrNaNInf) {
		t.Fatalf("AllClose rtol NaN: want ErrNaNInf, got %v", err)
	}
	if _, err := matrix.AllClose(a, a, 1e-6, math.Inf(-1)); !errors.Is(err, matrix.ErrNaNInf) {
		t.Fatalf("AllClose atol Inf: want ErrNaNInf, got %v", err)
	}
}

// Negative tolerances must be accepted and treated as absolute values.
func TestAllClose_NegativeTolerances_AreNormalized(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 1, 1, []float64{0})
	b := NewFilledDense(t, 1, 1, []float64{5e-6})

	ok, err := matrix.AllClose(a, b, -1e-5, 1e-5)
	if err != nil {
		t.Fatalf("AllClose negative tol err: %v", err)
	}
	if !ok {
		t.Fatalf("AllClose negative tol: expected true, got false")
	}
}

// Fast path (*Dense) and fallback (non-*Dense) must agree on the boolean result.
func TestAllClose_FallbackMatchesFast(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{0, 0, 0, 0})
	b := NewFilledDense(t, 2, 2, []float64{0, 1e-9, 0, 0})

	okFast, err := matrix.AllClose(a, b, 1e-8, 1e-8)
	if err != nil {
		t.Fatalf("AllClose fast err: %v", err)
	}
	okSlow, err := matrix.AllClose(hide{a}, hide{b}, 1e-8, 1e-8)
	if err != nil {
		t.Fatalf("AllClose slow err: %v", err)
	}
	if okFast != okSlow {
		t.Fatalf("AllClose mismatch fast=%v slow=%v", okFast, okSlow)
	}
}

// NaN never compares close; matching infinities do.
func TestAllClose_NonFiniteEntries(t *testing.T) {
	t.Parallel()

	nan, err := matrix.NewDenseFrom([][]float64{{math.NaN()}}, matrix.WithNoValidateNaNInf())
	if err != nil {
		t.Fatalf("NewDenseFrom: %v", err)
	}
	inf, err := matrix.NewDenseFrom([][]float64{{math.Inf(1)}}, matrix.WithNoValidateNaNInf())
	if err != nil {
		t.Fatalf("NewDenseFrom: %v", err)
	}

	if ok, _ := matrix.AllClose(nan, nan, 1, 1); ok {
		t.Fatalf("NaN vs NaN: expected false")
	}
	if ok, _ := matrix.AllClose(inf, inf, 0, 0); !ok {
		t.Fatalf("+Inf vs +Inf: expected true")
	}
}

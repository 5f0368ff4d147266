// SPDX-License-Identifier: MIT
// Package core: machine epsilon, approximate equality and checked division.

package core

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// eqFactor is the fixed multiple of machine epsilon used by approximate equality.
const eqFactor = 5

// Epsilon returns the machine epsilon of T.
func Epsilon[T Float]() T {
	var probe T = 1
	if probe+T(1e-10) == probe {
		// narrower than float64: only float32 rounds 1+1e-10 to 1
		return T(math.Nextafter32(1, 2) - 1)
	}

	return T(math.Nextafter(1, 2) - 1)
}

// ApproxEq reports whether |a−b| < 5·eps(T).
func ApproxEq[T Float](a, b T) bool {
	return scalar.EqualWithinAbs(float64(a), float64(b), float64(eqFactor*Epsilon[T]()))
}

// ApproxEqMixed compares values of two precisions with 5·max(eps(T), eps(U)).
func ApproxEqMixed[T, U Float](a T, b U) bool {
	tol := math.Max(float64(Epsilon[T]()), float64(Epsilon[U]()))

	return scalar.EqualWithinAbs(float64(a), float64(b), eqFactor*tol)
}

// EqMV compares the union of stored slots of a and b with ApproxEq.
func EqMV[T Float](a, b MV[T]) bool {
	for i := 0; i < MaxBlades; i++ {
		if !ApproxEq(a.C[i], b.C[i]) {
			return false
		}
	}

	return true
}

// CheckDivisor returns nil when |d| ≥ threshold or the policy is permissive,
// otherwise an error wrapping ErrDivisionByZero.
func CheckDivisor[T Float](op, operand string, d T, opts ...Option) error {
	return checkValue(op, operand, "divisor", d, ErrDivisionByZero, opts...)
}

// CheckInvertible is CheckDivisor for the denominator of an inverse; the
// error wraps ErrNotInvertible.
func CheckInvertible[T Float](op, operand string, d T, opts ...Option) error {
	return checkValue(op, operand, "nrm_sq", d, ErrNotInvertible, opts...)
}

// CheckUnitizable is CheckDivisor for a weight norm; the error wraps
// ErrNotUnitizable.
func CheckUnitizable[T Float](op, operand string, w T, opts ...Option) error {
	return checkValue(op, operand, "weight_nrm", w, ErrNotUnitizable, opts...)
}

func checkValue[T Float](op, operand, quantity string, d T, sentinel error, opts ...Option) error {
	o := Gather(opts...)
	if !o.strict {
		return nil
	}
	if math.IsNaN(float64(d)) || T(math.Abs(float64(d))) < Threshold[T](o) {
		return numericErrorf(op, operand, quantity, float64(d), sentinel)
	}

	return nil
}

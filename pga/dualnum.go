// SPDX-License-Identifier: MIT
// Package pga: dual numbers s + ps·𝟙 for distances that stay finite at
// infinity.

package pga

import (
	"github.com/Daniel-G-W-Hug/ga-sub005/core"
	"gonum.org/v1/gonum/num/dual"
)

// DualNum pairs a bulk scalar S with a weight PS (the antiscalar
// coefficient). The Euclidean value is S/PS; PS = 0 marks an object at
// infinity. Since the antiscalar squares to zero, DualNum multiplies like a
// dual number.
type DualNum[T core.Float] struct {
	S, PS T
}

// Add returns a+b.
func (a DualNum[T]) Add(b DualNum[T]) DualNum[T] { return DualNum[T]{S: a.S + b.S, PS: a.PS + b.PS} }

// Sub returns a−b.
func (a DualNum[T]) Sub(b DualNum[T]) DualNum[T] { return DualNum[T]{S: a.S - b.S, PS: a.PS - b.PS} }

// Scale returns k·a.
func (a DualNum[T]) Scale(k T) DualNum[T] { return DualNum[T]{S: k * a.S, PS: k * a.PS} }

// Mul returns a·b = a.S·b.S + (a.S·b.PS + a.PS·b.S)·𝟙.
func (a DualNum[T]) Mul(b DualNum[T]) DualNum[T] {
	return DualNum[T]{S: a.S * b.S, PS: a.S*b.PS + a.PS*b.S}
}

// Eq reports componentwise approximate equality.
func (a DualNum[T]) Eq(b DualNum[T]) bool { return core.ApproxEq(a.S, b.S) && core.ApproxEq(a.PS, b.PS) }

// Ratio returns the Euclidean value S/PS.
// Fails with ErrDivisionByZero when the weight vanishes (strict mode).
func (a DualNum[T]) Ratio(opts ...core.Option) (T, error) {
	if err := core.CheckDivisor("Ratio", "dual number", a.PS, opts...); err != nil {
		return 0, err
	}

	return a.S / a.PS, nil
}

// Dual returns a as a gonum dual number Real + Emag·ε.
func (a DualNum[T]) Dual() dual.Number {
	return dual.Number{Real: float64(a.S), Emag: float64(a.PS)}
}

// DualNumFrom is the inverse of DualNum.Dual.
func DualNumFrom[T core.Float](d dual.Number) DualNum[T] {
	return DualNum[T]{S: T(d.Real), PS: T(d.Emag)}
}

// SPDX-License-Identifier: MIT
// Package ega2d: multivector aggregates.

package ega2d

import "github.com/Daniel-G-W-Hug/ga-sub005/core"

// MVecE is an even multivector s + ps·e12.
type MVecE[T core.Float] struct {
	S, PS T
}

// MVec is a full multivector s + x·e1 + y·e2 + ps·e12.
type MVec[T core.Float] struct {
	S, X, Y, PS T
}

// MVecFromParts assembles a multivector from its grade parts.
func MVecFromParts[T core.Float](s Scalar[T], v Vec[T], p PScalar[T]) MVec[T] {
	return MVec[T]{S: s.S, X: v.X, Y: v.Y, PS: p.PS}
}

// Add returns m+o.
func (m MVecE[T]) Add(o MVecE[T]) MVecE[T] { return MVecE[T]{S: m.S + o.S, PS: m.PS + o.PS} }

// Sub returns m−o.
func (m MVecE[T]) Sub(o MVecE[T]) MVecE[T] { return MVecE[T]{S: m.S - o.S, PS: m.PS - o.PS} }

// Neg returns −m.
func (m MVecE[T]) Neg() MVecE[T] { return MVecE[T]{S: -m.S, PS: -m.PS} }

// Scale returns k·m.
func (m MVecE[T]) Scale(k T) MVecE[T] { return MVecE[T]{S: k * m.S, PS: k * m.PS} }

// Div returns m/k.
func (m MVecE[T]) Div(k T, opts ...core.Option) (MVecE[T], error) {
	if err := core.CheckDivisor("Div", "ega2d even multivector", k, opts...); err != nil {
		return MVecE[T]{}, err
	}

	return MVecE[T]{S: m.S / k, PS: m.PS / k}, nil
}

// Eq reports componentwise approximate equality.
func (m MVecE[T]) Eq(o MVecE[T]) bool { return core.EqMV(m.mv(), o.mv()) }

// Gr0 returns the scalar part.
func (m MVecE[T]) Gr0() Scalar[T] { return Scalar[T]{S: m.S} }

// Gr2 returns the pseudoscalar part.
func (m MVecE[T]) Gr2() PScalar[T] { return PScalar[T]{PS: m.PS} }

// MVec promotes m to a full multivector.
func (m MVecE[T]) MVec() MVec[T] { return MVec[T]{S: m.S, PS: m.PS} }

// Complex returns s + ps·i; e12 plays the role of the imaginary unit.
func (m MVecE[T]) Complex() complex128 { return complex(float64(m.S), float64(m.PS)) }

// MVecEFromComplex is the inverse of MVecE.Complex.
func MVecEFromComplex[T core.Float](z complex128) MVecE[T] {
	return MVecE[T]{S: T(real(z)), PS: T(imag(z))}
}

// Add returns m+o.
func (m MVec[T]) Add(o MVec[T]) MVec[T] { return mvecOf(core.Add(m.mv(), o.mv())) }

// Sub returns m−o.
func (m MVec[T]) Sub(o MVec[T]) MVec[T] { return mvecOf(core.Sub(m.mv(), o.mv())) }

// Neg returns −m.
func (m MVec[T]) Neg() MVec[T] { return mvecOf(core.Neg(m.mv())) }

// Scale returns k·m.
func (m MVec[T]) Scale(k T) MVec[T] { return mvecOf(core.Scale(m.mv(), k)) }

// Div returns m/k.
func (m MVec[T]) Div(k T, opts ...core.Option) (MVec[T], error) {
	if err := core.CheckDivisor("Div", "ega2d multivector", k, opts...); err != nil {
		return MVec[T]{}, err
	}

	return m.Scale(1 / k), nil
}

// Eq reports componentwise approximate equality.
func (m MVec[T]) Eq(o MVec[T]) bool { return core.EqMV(m.mv(), o.mv()) }

// Gr0 returns the scalar part.
func (m MVec[T]) Gr0() Scalar[T] { return Scalar[T]{S: m.S} }

// Gr1 returns the vector part.
func (m MVec[T]) Gr1() Vec[T] { return Vec[T]{X: m.X, Y: m.Y} }

// Gr2 returns the pseudoscalar part.
func (m MVec[T]) Gr2() PScalar[T] { return PScalar[T]{PS: m.PS} }

// Even returns the even part.
func (m MVec[T]) Even() MVecE[T] { return MVecE[T]{S: m.S, PS: m.PS} }

// SPDX-License-Identifier: MIT
// Package ega2d: grade types, arithmetic and conversions.

package ega2d

import (
	"github.com/Daniel-G-W-Hug/ga-sub005/core"
	"golang.org/x/image/math/f64"
)

// Scalar is a grade-0 element of G(2,0,0).
type Scalar[T core.Float] struct {
	S T
}

// Vec is a grade-1 element x·e1 + y·e2.
type Vec[T core.Float] struct {
	X, Y T
}

// PScalar is a grade-2 element ps·e12.
type PScalar[T core.Float] struct {
	PS T
}

// Add returns s+o.
func (s Scalar[T]) Add(o Scalar[T]) Scalar[T] { return Scalar[T]{S: s.S + o.S} }

// Sub returns s−o.
func (s Scalar[T]) Sub(o Scalar[T]) Scalar[T] { return Scalar[T]{S: s.S - o.S} }

// Neg returns −s.
func (s Scalar[T]) Neg() Scalar[T] { return Scalar[T]{S: -s.S} }

// Scale returns k·s.
func (s Scalar[T]) Scale(k T) Scalar[T] { return Scalar[T]{S: k * s.S} }

// Div returns s/k; see core.CheckDivisor for the policy.
func (s Scalar[T]) Div(k T, opts ...core.Option) (Scalar[T], error) {
	if err := core.CheckDivisor("Div", "ega2d scalar", k, opts...); err != nil {
		return Scalar[T]{}, err
	}

	return Scalar[T]{S: s.S / k}, nil
}

// Eq reports approximate equality within 5·eps(T).
func (s Scalar[T]) Eq(o Scalar[T]) bool { return core.ApproxEq(s.S, o.S) }

// MVec promotes s to a full multivector.
func (s Scalar[T]) MVec() MVec[T] { return MVec[T]{S: s.S} }

// MVecE promotes s to an even multivector.
func (s Scalar[T]) MVecE() MVecE[T] { return MVecE[T]{S: s.S} }

// Add returns v+o.
func (v Vec[T]) Add(o Vec[T]) Vec[T] { return Vec[T]{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v−o.
func (v Vec[T]) Sub(o Vec[T]) Vec[T] { return Vec[T]{X: v.X - o.X, Y: v.Y - o.Y} }

// Neg returns −v.
func (v Vec[T]) Neg() Vec[T] { return Vec[T]{X: -v.X, Y: -v.Y} }

// Scale returns k·v.
func (v Vec[T]) Scale(k T) Vec[T] { return Vec[T]{X: k * v.X, Y: k * v.Y} }

// Div returns v/k.
func (v Vec[T]) Div(k T, opts ...core.Option) (Vec[T], error) {
	if err := core.CheckDivisor("Div", "ega2d vector", k, opts...); err != nil {
		return Vec[T]{}, err
	}

	return Vec[T]{X: v.X / k, Y: v.Y / k}, nil
}

// Eq reports componentwise approximate equality.
func (v Vec[T]) Eq(o Vec[T]) bool {
	return core.ApproxEq(v.X, o.X) && core.ApproxEq(v.Y, o.Y)
}

// MVec promotes v to a full multivector.
func (v Vec[T]) MVec() MVec[T] { return MVec[T]{X: v.X, Y: v.Y} }

// F64 returns v as an x/image f64.Vec2.
func (v Vec[T]) F64() f64.Vec2 { return f64.Vec2{float64(v.X), float64(v.Y)} }

// VecFromF64 is the inverse of Vec.F64.
func VecFromF64[T core.Float](a f64.Vec2) Vec[T] { return Vec[T]{X: T(a[0]), Y: T(a[1])} }

// Add returns p+o.
func (p PScalar[T]) Add(o PScalar[T]) PScalar[T] { return PScalar[T]{PS: p.PS + o.PS} }

// Sub returns p−o.
func (p PScalar[T]) Sub(o PScalar[T]) PScalar[T] { return PScalar[T]{PS: p.PS - o.PS} }

// Neg returns −p.
func (p PScalar[T]) Neg() PScalar[T] { return PScalar[T]{PS: -p.PS} }

// Scale returns k·p.
func (p PScalar[T]) Scale(k T) PScalar[T] { return PScalar[T]{PS: k * p.PS} }

// Div returns p/k.
func (p PScalar[T]) Div(k T, opts ...core.Option) (PScalar[T], error) {
	if err := core.CheckDivisor("Div", "ega2d pseudoscalar", k, opts...); err != nil {
		return PScalar[T]{}, err
	}

	return PScalar[T]{PS: p.PS / k}, nil
}

// Eq reports approximate equality.
func (p PScalar[T]) Eq(o PScalar[T]) bool { return core.ApproxEq(p.PS, o.PS) }

// MVec promotes p to a full multivector.
func (p PScalar[T]) MVec() MVec[T] { return MVec[T]{PS: p.PS} }

// MVecE promotes p to an even multivector.
func (p PScalar[T]) MVecE() MVecE[T] { return MVecE[T]{PS: p.PS} }

// ConvertScalar changes the element type of s.
func ConvertScalar[U, T core.Float](s Scalar[T]) Scalar[U] { return Scalar[U]{S: U(s.S)} }

// ConvertVec changes the element type of v.
func ConvertVec[U, T core.Float](v Vec[T]) Vec[U] { return Vec[U]{X: U(v.X), Y: U(v.Y)} }

// ConvertPScalar changes the element type of p.
func ConvertPScalar[U, T core.Float](p PScalar[T]) PScalar[U] { return PScalar[U]{PS: U(p.PS)} }

// ConvertMVecE changes the element type of m.
func ConvertMVecE[U, T core.Float](m MVecE[T]) MVecE[U] { return MVecE[U]{S: U(m.S), PS: U(m.PS)} }

// ConvertMVec changes the element type of m.
func ConvertMVec[U, T core.Float](m MVec[T]) MVec[U] {
	return MVec[U]{S: U(m.S), X: U(m.X), Y: U(m.Y), PS: U(m.PS)}
}

// EqVecMixed compares vectors of two precisions with 5·max(eps(T), eps(U)).
func EqVecMixed[T, U core.Float](a Vec[T], b Vec[U]) bool {
	return core.ApproxEqMixed(a.X, b.X) && core.ApproxEqMixed(a.Y, b.Y)
}

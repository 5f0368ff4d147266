// SPDX-License-Identifier: MIT
// Package ega3d: grade types, arithmetic and conversions.

package ega3d

import (
	"github.com/Daniel-G-W-Hug/ga-sub005/core"
	"golang.org/x/image/math/f64"
)

// Scalar is a grade-0 element of G(3,0,0).
type Scalar[T core.Float] struct {
	S T
}

// Vec is a grade-1 element x·e1 + y·e2 + z·e3.
type Vec[T core.Float] struct {
	X, Y, Z T
}

// BiVec is a grade-2 element x·e23 + y·e31 + z·e12.
type BiVec[T core.Float] struct {
	X, Y, Z T
}

// PScalar is a grade-3 element ps·e123.
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
	if err := core.CheckDivisor("Div", "ega3d scalar", k, opts...); err != nil {
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
func (v Vec[T]) Add(o Vec[T]) Vec[T] { return Vec[T]{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z} }

// Sub returns v−o.
func (v Vec[T]) Sub(o Vec[T]) Vec[T] { return Vec[T]{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z} }

// Neg returns −v.
func (v Vec[T]) Neg() Vec[T] { return Vec[T]{X: -v.X, Y: -v.Y, Z: -v.Z} }

// Scale returns k·v.
func (v Vec[T]) Scale(k T) Vec[T] { return Vec[T]{X: k * v.X, Y: k * v.Y, Z: k * v.Z} }

// Div returns v/k.
func (v Vec[T]) Div(k T, opts ...core.Option) (Vec[T], error) {
	if err := core.CheckDivisor("Div", "ega3d vector", k, opts...); err != nil {
		return Vec[T]{}, err
	}

	return Vec[T]{X: v.X / k, Y: v.Y / k, Z: v.Z / k}, nil
}

// Eq reports componentwise approximate equality.
func (v Vec[T]) Eq(o Vec[T]) bool {
	return core.ApproxEq(v.X, o.X) && core.ApproxEq(v.Y, o.Y) && core.ApproxEq(v.Z, o.Z)
}

// MVec promotes v to a full multivector.
func (v Vec[T]) MVec() MVec[T] { return MVec[T]{V: v} }

// MVecU promotes v to an odd multivector.
func (v Vec[T]) MVecU() MVecU[T] { return MVecU[T]{V: v} }

// F64 returns v as an x/image vector.
func (v Vec[T]) F64() f64.Vec3 { return f64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)} }

// VecFromF64 is the inverse of Vec.F64.
func VecFromF64[T core.Float](a f64.Vec3) Vec[T] { return Vec[T]{X: T(a[0]), Y: T(a[1]), Z: T(a[2])} }

// Add returns b+o.
func (b BiVec[T]) Add(o BiVec[T]) BiVec[T] { return BiVec[T]{X: b.X + o.X, Y: b.Y + o.Y, Z: b.Z + o.Z} }

// Sub returns b−o.
func (b BiVec[T]) Sub(o BiVec[T]) BiVec[T] { return BiVec[T]{X: b.X - o.X, Y: b.Y - o.Y, Z: b.Z - o.Z} }

// Neg returns −b.
func (b BiVec[T]) Neg() BiVec[T] { return BiVec[T]{X: -b.X, Y: -b.Y, Z: -b.Z} }

// Scale returns k·b.
func (b BiVec[T]) Scale(k T) BiVec[T] { return BiVec[T]{X: k * b.X, Y: k * b.Y, Z: k * b.Z} }

// Div returns b/k.
func (b BiVec[T]) Div(k T, opts ...core.Option) (BiVec[T], error) {
	if err := core.CheckDivisor("Div", "ega3d bivector", k, opts...); err != nil {
		return BiVec[T]{}, err
	}

	return BiVec[T]{X: b.X / k, Y: b.Y / k, Z: b.Z / k}, nil
}

// Eq reports componentwise approximate equality.
func (b BiVec[T]) Eq(o BiVec[T]) bool {
	return core.ApproxEq(b.X, o.X) && core.ApproxEq(b.Y, o.Y) && core.ApproxEq(b.Z, o.Z)
}

// MVec promotes b to a full multivector.
func (b BiVec[T]) MVec() MVec[T] { return MVec[T]{B: b} }

// MVecE promotes b to an even multivector.
func (b BiVec[T]) MVecE() MVecE[T] { return MVecE[T]{B: b} }

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
	if err := core.CheckDivisor("Div", "ega3d pseudoscalar", k, opts...); err != nil {
		return PScalar[T]{}, err
	}

	return PScalar[T]{PS: p.PS / k}, nil
}

// Eq reports approximate equality.
func (p PScalar[T]) Eq(o PScalar[T]) bool { return core.ApproxEq(p.PS, o.PS) }

// MVec promotes p to a full multivector.
func (p PScalar[T]) MVec() MVec[T] { return MVec[T]{PS: p.PS} }

// MVecU promotes p to an odd multivector.
func (p PScalar[T]) MVecU() MVecU[T] { return MVecU[T]{PS: p.PS} }

// ConvertVec changes the element type of v.
func ConvertVec[U, T core.Float](v Vec[T]) Vec[U] { return Vec[U]{X: U(v.X), Y: U(v.Y), Z: U(v.Z)} }

// ConvertBiVec changes the element type of b.
func ConvertBiVec[U, T core.Float](b BiVec[T]) BiVec[U] {
	return BiVec[U]{X: U(b.X), Y: U(b.Y), Z: U(b.Z)}
}

// ConvertMVecE changes the element type of m.
func ConvertMVecE[U, T core.Float](m MVecE[T]) MVecE[U] {
	return MVecE[U]{S: U(m.S), B: ConvertBiVec[U](m.B)}
}

// ConvertMVec changes the element type of m.
func ConvertMVec[U, T core.Float](m MVec[T]) MVec[U] {
	return MVec[U]{S: U(m.S), V: ConvertVec[U](m.V), B: ConvertBiVec[U](m.B), PS: U(m.PS)}
}

// EqVecMixed compares vectors of two precisions with 5·max(eps(T), eps(U)).
func EqVecMixed[T, U core.Float](a Vec[T], b Vec[U]) bool {
	return core.ApproxEqMixed(a.X, b.X) && core.ApproxEqMixed(a.Y, b.Y) && core.ApproxEqMixed(a.Z, b.Z)
}

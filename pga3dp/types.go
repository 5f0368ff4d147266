// SPDX-License-Identifier: MIT
// Package pga3dp: grade types, arithmetic and conversions.

package pga3dp

import (
	"github.com/Daniel-G-W-Hug/ga-sub005/core"
	"golang.org/x/image/math/f64"
)

// Scalar is a grade-0 element of G(3,0,1).
type Scalar[T core.Float] struct {
	S T
}

// Vec is a grade-1 element x·e1 + y·e2 + z·e3 + w·e4, the homogeneous point
// (x/w, y/w, z/w). W = 0 is a direction (a point at infinity).
type Vec[T core.Float] struct {
	X, Y, Z, W T
}

// BiVec is a grade-2 element, a line in Plücker form:
// Vx·e41 + Vy·e42 + Vz·e43 + Mx·e23 + My·e31 + Mz·e12.
// V is the direction (the weight), M the moment (the bulk); a line through
// the point p has M = p × V, so V·M = 0 for every line.
type BiVec[T core.Float] struct {
	Vx, Vy, Vz T
	Mx, My, Mz T
}

// TriVec is a grade-3 element X·e423 + Y·e431 + Z·e412 + W·e321, the plane
// X·x + Y·y + Z·z + W = 0. (X, Y, Z) is its normal (the weight), W the bulk.
type TriVec[T core.Float] struct {
	X, Y, Z, W T
}

// PScalar is a grade-4 element ps·e1234, the antiscalar.
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
	if err := core.CheckDivisor("Div", "pga3dp scalar", k, opts...); err != nil {
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
func (v Vec[T]) Add(o Vec[T]) Vec[T] {
	return Vec[T]{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z, W: v.W + o.W}
}

// Sub returns v−o.
func (v Vec[T]) Sub(o Vec[T]) Vec[T] {
	return Vec[T]{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z, W: v.W - o.W}
}

// Neg returns −v.
func (v Vec[T]) Neg() Vec[T] { return Vec[T]{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W} }

// Scale returns k·v.
func (v Vec[T]) Scale(k T) Vec[T] { return Vec[T]{X: k * v.X, Y: k * v.Y, Z: k * v.Z, W: k * v.W} }

// Div returns v/k.
func (v Vec[T]) Div(k T, opts ...core.Option) (Vec[T], error) {
	if err := core.CheckDivisor("Div", "pga3dp vector", k, opts...); err != nil {
		return Vec[T]{}, err
	}

	return v.Scale(1 / k), nil
}

// Eq reports componentwise approximate equality.
func (v Vec[T]) Eq(o Vec[T]) bool {
	return core.ApproxEq(v.X, o.X) && core.ApproxEq(v.Y, o.Y) &&
		core.ApproxEq(v.Z, o.Z) && core.ApproxEq(v.W, o.W)
}

// MVec promotes v to a full multivector.
func (v Vec[T]) MVec() MVec[T] { return MVec[T]{V: v} }

// MVecU promotes v to an odd multivector.
func (v Vec[T]) MVecU() MVecU[T] { return MVecU[T]{V: v} }

// F64 returns the homogeneous coordinates of v as an x/image vector.
func (v Vec[T]) F64() f64.Vec4 {
	return f64.Vec4{float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)}
}

// VecFromF64 is the inverse of Vec.F64.
func VecFromF64[T core.Float](a f64.Vec4) Vec[T] {
	return Vec[T]{X: T(a[0]), Y: T(a[1]), Z: T(a[2]), W: T(a[3])}
}

// Add returns b+o.
func (b BiVec[T]) Add(o BiVec[T]) BiVec[T] {
	return BiVec[T]{
		Vx: b.Vx + o.Vx, Vy: b.Vy + o.Vy, Vz: b.Vz + o.Vz,
		Mx: b.Mx + o.Mx, My: b.My + o.My, Mz: b.Mz + o.Mz,
	}
}

// Sub returns b−o.
func (b BiVec[T]) Sub(o BiVec[T]) BiVec[T] {
	return BiVec[T]{
		Vx: b.Vx - o.Vx, Vy: b.Vy - o.Vy, Vz: b.Vz - o.Vz,
		Mx: b.Mx - o.Mx, My: b.My - o.My, Mz: b.Mz - o.Mz,
	}
}

// Neg returns −b.
func (b BiVec[T]) Neg() BiVec[T] { return b.Scale(-1) }

// Scale returns k·b.
func (b BiVec[T]) Scale(k T) BiVec[T] {
	return BiVec[T]{
		Vx: k * b.Vx, Vy: k * b.Vy, Vz: k * b.Vz,
		Mx: k * b.Mx, My: k * b.My, Mz: k * b.Mz,
	}
}

// Div returns b/k.
func (b BiVec[T]) Div(k T, opts ...core.Option) (BiVec[T], error) {
	if err := core.CheckDivisor("Div", "pga3dp bivector", k, opts...); err != nil {
		return BiVec[T]{}, err
	}

	return b.Scale(1 / k), nil
}

// Eq reports componentwise approximate equality.
func (b BiVec[T]) Eq(o BiVec[T]) bool { return core.EqMV(b.mv(), o.mv()) }

// MVec promotes b to a full multivector.
func (b BiVec[T]) MVec() MVec[T] { return MVec[T]{B: b} }

// MVecE promotes b to an even multivector.
func (b BiVec[T]) MVecE() MVecE[T] { return MVecE[T]{B: b} }

// Add returns t+o.
func (t TriVec[T]) Add(o TriVec[T]) TriVec[T] {
	return TriVec[T]{X: t.X + o.X, Y: t.Y + o.Y, Z: t.Z + o.Z, W: t.W + o.W}
}

// Sub returns t−o.
func (t TriVec[T]) Sub(o TriVec[T]) TriVec[T] {
	return TriVec[T]{X: t.X - o.X, Y: t.Y - o.Y, Z: t.Z - o.Z, W: t.W - o.W}
}

// Neg returns −t.
func (t TriVec[T]) Neg() TriVec[T] { return TriVec[T]{X: -t.X, Y: -t.Y, Z: -t.Z, W: -t.W} }

// Scale returns k·t.
func (t TriVec[T]) Scale(k T) TriVec[T] {
	return TriVec[T]{X: k * t.X, Y: k * t.Y, Z: k * t.Z, W: k * t.W}
}

// Div returns t/k.
func (t TriVec[T]) Div(k T, opts ...core.Option) (TriVec[T], error) {
	if err := core.CheckDivisor("Div", "pga3dp trivector", k, opts...); err != nil {
		return TriVec[T]{}, err
	}

	return t.Scale(1 / k), nil
}

// Eq reports componentwise approximate equality.
func (t TriVec[T]) Eq(o TriVec[T]) bool {
	return core.ApproxEq(t.X, o.X) && core.ApproxEq(t.Y, o.Y) &&
		core.ApproxEq(t.Z, o.Z) && core.ApproxEq(t.W, o.W)
}

// MVec promotes t to a full multivector.
func (t TriVec[T]) MVec() MVec[T] { return MVec[T]{Tri: t} }

// MVecU promotes t to an odd multivector.
func (t TriVec[T]) MVecU() MVecU[T] { return MVecU[T]{Tri: t} }

// F64 returns the plane coefficients (X, Y, Z, W) as an x/image vector.
func (t TriVec[T]) F64() f64.Vec4 {
	return f64.Vec4{float64(t.X), float64(t.Y), float64(t.Z), float64(t.W)}
}

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
	if err := core.CheckDivisor("Div", "pga3dp pseudoscalar", k, opts...); err != nil {
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

// ConvertVec changes the element type of v.
func ConvertVec[U, T core.Float](v Vec[T]) Vec[U] {
	return Vec[U]{X: U(v.X), Y: U(v.Y), Z: U(v.Z), W: U(v.W)}
}

// ConvertBiVec changes the element type of b.
func ConvertBiVec[U, T core.Float](b BiVec[T]) BiVec[U] {
	return BiVec[U]{
		Vx: U(b.Vx), Vy: U(b.Vy), Vz: U(b.Vz),
		Mx: U(b.Mx), My: U(b.My), Mz: U(b.Mz),
	}
}

// ConvertTriVec changes the element type of t.
func ConvertTriVec[U, T core.Float](t TriVec[T]) TriVec[U] {
	return TriVec[U]{X: U(t.X), Y: U(t.Y), Z: U(t.Z), W: U(t.W)}
}

// ConvertMVecE changes the element type of m.
func ConvertMVecE[U, T core.Float](m MVecE[T]) MVecE[U] {
	return MVecE[U]{S: U(m.S), B: ConvertBiVec[U](m.B), PS: U(m.PS)}
}

// ConvertMVecU changes the element type of m.
func ConvertMVecU[U, T core.Float](m MVecU[T]) MVecU[U] {
	return MVecU[U]{V: ConvertVec[U](m.V), Tri: ConvertTriVec[U](m.Tri)}
}

// ConvertMVec changes the element type of m.
func ConvertMVec[U, T core.Float](m MVec[T]) MVec[U] {
	return MVec[U]{
		S:   U(m.S),
		V:   ConvertVec[U](m.V),
		B:   ConvertBiVec[U](m.B),
		Tri: ConvertTriVec[U](m.Tri),
		PS:  U(m.PS),
	}
}

// EqVecMixed compares vectors of two precisions with 5·max(eps(T), eps(U)).
func EqVecMixed[T, U core.Float](a Vec[T], b Vec[U]) bool {
	return core.ApproxEqMixed(a.X, b.X) && core.ApproxEqMixed(a.Y, b.Y) &&
		core.ApproxEqMixed(a.Z, b.Z) && core.ApproxEqMixed(a.W, b.W)
}

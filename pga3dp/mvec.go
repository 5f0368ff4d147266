// SPDX-License-Identifier: MIT
// Package pga3dp: multivector aggregates.

package pga3dp

import "github.com/Daniel-G-W-Hug/ga-sub005/core"

// MVecE is an even multivector s + B + ps·e1234. Motors live here: the
// antiscalar is the identity of the regressive geometric product.
type MVecE[T core.Float] struct {
	S  T
	B  BiVec[T]
	PS T
}

// MVecU is an odd multivector v + t.
type MVecU[T core.Float] struct {
	V   Vec[T]
	Tri TriVec[T]
}

// MVec is a full multivector over all 16 blades.
type MVec[T core.Float] struct {
	S   T
	V   Vec[T]
	B   BiVec[T]
	Tri TriVec[T]
	PS  T
}

// MVecFromParts assembles a multivector from its grade parts.
func MVecFromParts[T core.Float](s Scalar[T], v Vec[T], b BiVec[T], t TriVec[T], p PScalar[T]) MVec[T] {
	return MVec[T]{S: s.S, V: v, B: b, Tri: t, PS: p.PS}
}

// Add returns m+o.
func (m MVecE[T]) Add(o MVecE[T]) MVecE[T] {
	return MVecE[T]{S: m.S + o.S, B: m.B.Add(o.B), PS: m.PS + o.PS}
}

// Sub returns m−o.
func (m MVecE[T]) Sub(o MVecE[T]) MVecE[T] {
	return MVecE[T]{S: m.S - o.S, B: m.B.Sub(o.B), PS: m.PS - o.PS}
}

// Neg returns −m.
func (m MVecE[T]) Neg() MVecE[T] { return MVecE[T]{S: -m.S, B: m.B.Neg(), PS: -m.PS} }

// Scale returns k·m.
func (m MVecE[T]) Scale(k T) MVecE[T] { return MVecE[T]{S: k * m.S, B: m.B.Scale(k), PS: k * m.PS} }

// Div returns m/k.
func (m MVecE[T]) Div(k T, opts ...core.Option) (MVecE[T], error) {
	if err := core.CheckDivisor("Div", "pga3dp even multivector", k, opts...); err != nil {
		return MVecE[T]{}, err
	}

	return m.Scale(1 / k), nil
}

// Eq reports componentwise approximate equality.
func (m MVecE[T]) Eq(o MVecE[T]) bool { return core.EqMV(m.mv(), o.mv()) }

// MVec promotes m to a full multivector.
func (m MVecE[T]) MVec() MVec[T] { return MVec[T]{S: m.S, B: m.B, PS: m.PS} }

// Add returns m+o.
func (m MVecU[T]) Add(o MVecU[T]) MVecU[T] { return MVecU[T]{V: m.V.Add(o.V), Tri: m.Tri.Add(o.Tri)} }

// Sub returns m−o.
func (m MVecU[T]) Sub(o MVecU[T]) MVecU[T] { return MVecU[T]{V: m.V.Sub(o.V), Tri: m.Tri.Sub(o.Tri)} }

// Neg returns −m.
func (m MVecU[T]) Neg() MVecU[T] { return MVecU[T]{V: m.V.Neg(), Tri: m.Tri.Neg()} }

// Scale returns k·m.
func (m MVecU[T]) Scale(k T) MVecU[T] { return MVecU[T]{V: m.V.Scale(k), Tri: m.Tri.Scale(k)} }

// Div returns m/k.
func (m MVecU[T]) Div(k T, opts ...core.Option) (MVecU[T], error) {
	if err := core.CheckDivisor("Div", "pga3dp odd multivector", k, opts...); err != nil {
		return MVecU[T]{}, err
	}

	return m.Scale(1 / k), nil
}

// Eq reports componentwise approximate equality.
func (m MVecU[T]) Eq(o MVecU[T]) bool { return core.EqMV(m.mv(), o.mv()) }

// MVec promotes m to a full multivector.
func (m MVecU[T]) MVec() MVec[T] { return MVec[T]{V: m.V, Tri: m.Tri} }

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
	if err := core.CheckDivisor("Div", "pga3dp multivector", k, opts...); err != nil {
		return MVec[T]{}, err
	}

	return m.Scale(1 / k), nil
}

// Eq reports componentwise approximate equality.
func (m MVec[T]) Eq(o MVec[T]) bool { return core.EqMV(m.mv(), o.mv()) }

// Gr0 returns the scalar part.
func (m MVec[T]) Gr0() Scalar[T] { return Scalar[T]{S: m.S} }

// Gr1 returns the vector part.
func (m MVec[T]) Gr1() Vec[T] { return m.V }

// Gr2 returns the bivector part.
func (m MVec[T]) Gr2() BiVec[T] { return m.B }

// Gr3 returns the trivector part.
func (m MVec[T]) Gr3() TriVec[T] { return m.Tri }

// Gr4 returns the pseudoscalar part.
func (m MVec[T]) Gr4() PScalar[T] { return PScalar[T]{PS: m.PS} }

// Even returns the even part.
func (m MVec[T]) Even() MVecE[T] { return MVecE[T]{S: m.S, B: m.B, PS: m.PS} }

// Odd returns the odd part.
func (m MVec[T]) Odd() MVecU[T] { return MVecU[T]{V: m.V, Tri: m.Tri} }

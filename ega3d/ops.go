// SPDX-License-Identifier: MIT
// Package ega3d: involutions, complements, duals, norms and inverses.
//
// In three dimensions the left and right complements coincide; both are kept
// so code written against the PGA packages reads the same here.

package ega3d

import (
	"math"

	"github.com/Daniel-G-W-Hug/ga-sub005/core"
)

// Rev returns the reversion; vectors are unchanged.
func (v Vec[T]) Rev() Vec[T] { return v }

// GrInv returns −v.
func (v Vec[T]) GrInv() Vec[T] { return v.Neg() }

// Conj returns −v.
func (v Vec[T]) Conj() Vec[T] { return v.Neg() }

// RCmpl returns the bivector with v∧rcmpl(v) = |v|²·I.
func (v Vec[T]) RCmpl() BiVec[T] { return bivecOf(core.RCmpl(alg, v.mv())) }

// LCmpl returns the bivector with lcmpl(v)∧v = |v|²·I.
func (v Vec[T]) LCmpl() BiVec[T] { return bivecOf(core.LCmpl(alg, v.mv())) }

// Dual returns the dual bivector of v in the convention d.
func (v Vec[T]) Dual(d core.Duality) BiVec[T] { return bivecOf(core.Dual(alg, d, v.mv())) }

// NrmSq returns v·v.
func (v Vec[T]) NrmSq() T { return v.Dot(v).S }

// Nrm returns |v|.
func (v Vec[T]) Nrm() T { return T(math.Sqrt(float64(v.NrmSq()))) }

// Normalize returns v/|v|.
func (v Vec[T]) Normalize(opts ...core.Option) (Vec[T], error) {
	n := v.Nrm()
	if err := core.CheckDivisor("Normalize", "ega3d vector", n, opts...); err != nil {
		return Vec[T]{}, err
	}

	return v.Scale(1 / n), nil
}

// Inv returns v/|v|².
func (v Vec[T]) Inv(opts ...core.Option) (Vec[T], error) {
	sq := v.NrmSq()
	if err := core.CheckInvertible("Inv", "ega3d vector", sq, opts...); err != nil {
		return Vec[T]{}, err
	}

	return v.Scale(1 / sq), nil
}

// Rev returns −b.
func (b BiVec[T]) Rev() BiVec[T] { return b.Neg() }

// GrInv returns b.
func (b BiVec[T]) GrInv() BiVec[T] { return b }

// Conj returns −b.
func (b BiVec[T]) Conj() BiVec[T] { return b.Neg() }

// RCmpl returns the vector with b∧rcmpl(b) = |b|²·I.
func (b BiVec[T]) RCmpl() Vec[T] { return vecOf(core.RCmpl(alg, b.mv())) }

// LCmpl returns the vector with lcmpl(b)∧b = |b|²·I.
func (b BiVec[T]) LCmpl() Vec[T] { return vecOf(core.LCmpl(alg, b.mv())) }

// Dual returns the dual vector of b in the convention d.
func (b BiVec[T]) Dual(d core.Duality) Vec[T] { return vecOf(core.Dual(alg, d, b.mv())) }

// NrmSq returns b·rev(b) = x²+y²+z².
func (b BiVec[T]) NrmSq() T { return b.Dot(b).S }

// Nrm returns |b|.
func (b BiVec[T]) Nrm() T { return T(math.Sqrt(float64(b.NrmSq()))) }

// Normalize returns b/|b|.
func (b BiVec[T]) Normalize(opts ...core.Option) (BiVec[T], error) {
	n := b.Nrm()
	if err := core.CheckDivisor("Normalize", "ega3d bivector", n, opts...); err != nil {
		return BiVec[T]{}, err
	}

	return b.Scale(1 / n), nil
}

// Inv returns rev(b)/|b|².
func (b BiVec[T]) Inv(opts ...core.Option) (BiVec[T], error) {
	sq := b.NrmSq()
	if err := core.CheckInvertible("Inv", "ega3d bivector", sq, opts...); err != nil {
		return BiVec[T]{}, err
	}

	return b.Rev().Scale(1 / sq), nil
}

// Rev returns −p.
func (p PScalar[T]) Rev() PScalar[T] { return p.Neg() }

// GrInv returns −p.
func (p PScalar[T]) GrInv() PScalar[T] { return p.Neg() }

// Conj returns p.
func (p PScalar[T]) Conj() PScalar[T] { return p }

// RCmpl returns the scalar complement.
func (p PScalar[T]) RCmpl() Scalar[T] { return scalarOf(core.RCmpl(alg, p.mv())) }

// LCmpl returns the scalar complement.
func (p PScalar[T]) LCmpl() Scalar[T] { return scalarOf(core.LCmpl(alg, p.mv())) }

// Dual returns the dual scalar of p.
func (p PScalar[T]) Dual(d core.Duality) Scalar[T] { return scalarOf(core.Dual(alg, d, p.mv())) }

// NrmSq returns ps².
func (p PScalar[T]) NrmSq() T { return p.PS * p.PS }

// Nrm returns |ps|.
func (p PScalar[T]) Nrm() T { return T(math.Abs(float64(p.PS))) }

// Inv returns rev(p)/ps².
func (p PScalar[T]) Inv(opts ...core.Option) (PScalar[T], error) {
	sq := p.NrmSq()
	if err := core.CheckInvertible("Inv", "ega3d pseudoscalar", sq, opts...); err != nil {
		return PScalar[T]{}, err
	}

	return p.Rev().Scale(1 / sq), nil
}

// RCmpl returns s·I.
func (s Scalar[T]) RCmpl() PScalar[T] { return pscalarOf(core.RCmpl(alg, s.mv())) }

// LCmpl returns s·I.
func (s Scalar[T]) LCmpl() PScalar[T] { return pscalarOf(core.LCmpl(alg, s.mv())) }

// Dual returns the dual pseudoscalar of s.
func (s Scalar[T]) Dual(d core.Duality) PScalar[T] { return pscalarOf(core.Dual(alg, d, s.mv())) }

// Inv returns 1/s.
func (s Scalar[T]) Inv(opts ...core.Option) (Scalar[T], error) {
	if err := core.CheckDivisor("Inv", "ega3d scalar", s.S, opts...); err != nil {
		return Scalar[T]{}, err
	}

	return Scalar[T]{S: 1 / s.S}, nil
}

// Rev returns s − B.
func (m MVecE[T]) Rev() MVecE[T] { return MVecE[T]{S: m.S, B: m.B.Neg()} }

// Conj returns s − B.
func (m MVecE[T]) Conj() MVecE[T] { return m.Rev() }

// GrInv returns m.
func (m MVecE[T]) GrInv() MVecE[T] { return m }

// NrmSq returns s² + |B|².
func (m MVecE[T]) NrmSq() T { return m.S*m.S + m.B.NrmSq() }

// Nrm returns √NrmSq.
func (m MVecE[T]) Nrm() T { return T(math.Sqrt(float64(m.NrmSq()))) }

// Normalize returns m/|m|.
func (m MVecE[T]) Normalize(opts ...core.Option) (MVecE[T], error) {
	n := m.Nrm()
	if err := core.CheckDivisor("Normalize", "ega3d even multivector", n, opts...); err != nil {
		return MVecE[T]{}, err
	}

	return m.Scale(1 / n), nil
}

// Inv returns rev(m)/|m|²; m·rev(m) is a scalar for even elements.
func (m MVecE[T]) Inv(opts ...core.Option) (MVecE[T], error) {
	sq := m.NrmSq()
	if err := core.CheckInvertible("Inv", "ega3d even multivector", sq, opts...); err != nil {
		return MVecE[T]{}, err
	}

	return m.Rev().Scale(1 / sq), nil
}

// Rev returns v − ps·I.
func (m MVecU[T]) Rev() MVecU[T] { return mvecUOf(core.Rev(alg, m.mv())) }

// Conj returns −v + ps·I.
func (m MVecU[T]) Conj() MVecU[T] { return mvecUOf(core.Conj(alg, m.mv())) }

// GrInv returns −m.
func (m MVecU[T]) GrInv() MVecU[T] { return m.Neg() }

// NrmSq returns |v|² + ps².
func (m MVecU[T]) NrmSq() T { return m.V.NrmSq() + m.PS*m.PS }

// Nrm returns √NrmSq.
func (m MVecU[T]) Nrm() T { return T(math.Sqrt(float64(m.NrmSq()))) }

// Inv returns the inverse of m.
func (m MVecU[T]) Inv(opts ...core.Option) (MVecU[T], error) {
	inv, err := core.Inv(alg, m.mv(), opts...)
	if err != nil {
		return MVecU[T]{}, err
	}

	return mvecUOf(inv), nil
}

// Rev returns the reversion.
func (m MVec[T]) Rev() MVec[T] { return mvecOf(core.Rev(alg, m.mv())) }

// Conj returns the Clifford conjugate.
func (m MVec[T]) Conj() MVec[T] { return mvecOf(core.Conj(alg, m.mv())) }

// GrInv returns the grade involution.
func (m MVec[T]) GrInv() MVec[T] { return mvecOf(core.GrInv(alg, m.mv())) }

// RCmpl returns the right complement.
func (m MVec[T]) RCmpl() MVec[T] { return mvecOf(core.RCmpl(alg, m.mv())) }

// LCmpl returns the left complement.
func (m MVec[T]) LCmpl() MVec[T] { return mvecOf(core.LCmpl(alg, m.mv())) }

// Dual returns the dual of m in the convention d.
func (m MVec[T]) Dual(d core.Duality) MVec[T] { return mvecOf(core.Dual(alg, d, m.mv())) }

// NrmSq returns the scalar product m·m.
func (m MVec[T]) NrmSq() T { return core.Dot(alg, m.mv(), m.mv()) }

// Nrm returns √NrmSq.
func (m MVec[T]) Nrm() T { return T(math.Sqrt(float64(m.NrmSq()))) }

// Inv returns the multivector inverse; it fails for zero divisors such as 1+e1.
func (m MVec[T]) Inv(opts ...core.Option) (MVec[T], error) {
	inv, err := core.Inv(alg, m.mv(), opts...)
	if err != nil {
		return MVec[T]{}, err
	}

	return mvecOf(inv), nil
}

// SPDX-License-Identifier: MIT
// Package ega2d: involutions, complements, duals, norms and inverses.

package ega2d

import (
	"math"

	"github.com/Daniel-G-W-Hug/ga-sub005/core"
)

// Rev returns the reversion; vectors are unchanged.
func (v Vec[T]) Rev() Vec[T] { return v }

// GrInv returns the grade involution −v.
func (v Vec[T]) GrInv() Vec[T] { return v.Neg() }

// Conj returns the Clifford conjugate −v.
func (v Vec[T]) Conj() Vec[T] { return v.Neg() }

// RCmpl returns the right complement: v∧rcmpl(v) = |v|²·I.
func (v Vec[T]) RCmpl() Vec[T] { return vecOf(core.RCmpl(alg, v.mv())) }

// LCmpl returns the left complement: lcmpl(v)∧v = |v|²·I.
func (v Vec[T]) LCmpl() Vec[T] { return vecOf(core.LCmpl(alg, v.mv())) }

// Dual returns the dual of v in the convention d.
func (v Vec[T]) Dual(d core.Duality) Vec[T] { return vecOf(core.Dual(alg, d, v.mv())) }

// NrmSq returns v·v.
func (v Vec[T]) NrmSq() T { return v.X*v.X + v.Y*v.Y }

// Nrm returns |v|.
func (v Vec[T]) Nrm() T { return T(math.Sqrt(float64(v.NrmSq()))) }

// Normalize returns v/|v|.
func (v Vec[T]) Normalize(opts ...core.Option) (Vec[T], error) {
	n := v.Nrm()
	if err := core.CheckDivisor("Normalize", "ega2d vector", n, opts...); err != nil {
		return Vec[T]{}, err
	}

	return v.Scale(1 / n), nil
}

// Inv returns rev(v)/|v|².
func (v Vec[T]) Inv(opts ...core.Option) (Vec[T], error) {
	sq := v.NrmSq()
	if err := core.CheckInvertible("Inv", "ega2d vector", sq, opts...); err != nil {
		return Vec[T]{}, err
	}

	return v.Rev().Scale(1 / sq), nil
}

// Rev returns the reversion −p.
func (p PScalar[T]) Rev() PScalar[T] { return p.Neg() }

// GrInv returns the grade involution p.
func (p PScalar[T]) GrInv() PScalar[T] { return p }

// Conj returns the Clifford conjugate −p.
func (p PScalar[T]) Conj() PScalar[T] { return p.Neg() }

// RCmpl returns the right complement, a scalar.
func (p PScalar[T]) RCmpl() Scalar[T] { return scalarOf(core.RCmpl(alg, p.mv())) }

// LCmpl returns the left complement, a scalar.
func (p PScalar[T]) LCmpl() Scalar[T] { return scalarOf(core.LCmpl(alg, p.mv())) }

// Dual returns the dual of p in the convention d.
func (p PScalar[T]) Dual(d core.Duality) Scalar[T] { return scalarOf(core.Dual(alg, d, p.mv())) }

// NrmSq returns p·rev(p) = ps².
func (p PScalar[T]) NrmSq() T { return p.PS * p.PS }

// Nrm returns |ps|.
func (p PScalar[T]) Nrm() T { return T(math.Abs(float64(p.PS))) }

// Normalize returns p/|p|.
func (p PScalar[T]) Normalize(opts ...core.Option) (PScalar[T], error) {
	n := p.Nrm()
	if err := core.CheckDivisor("Normalize", "ega2d pseudoscalar", n, opts...); err != nil {
		return PScalar[T]{}, err
	}

	return p.Scale(1 / n), nil
}

// Inv returns rev(p)/|p|² = −1/ps·I.
func (p PScalar[T]) Inv(opts ...core.Option) (PScalar[T], error) {
	sq := p.NrmSq()
	if err := core.CheckInvertible("Inv", "ega2d pseudoscalar", sq, opts...); err != nil {
		return PScalar[T]{}, err
	}

	return p.Rev().Scale(1 / sq), nil
}

// RCmpl returns the right complement, a pseudoscalar.
func (s Scalar[T]) RCmpl() PScalar[T] { return pscalarOf(core.RCmpl(alg, s.mv())) }

// LCmpl returns the left complement, a pseudoscalar.
func (s Scalar[T]) LCmpl() PScalar[T] { return pscalarOf(core.LCmpl(alg, s.mv())) }

// Dual returns the dual of s in the convention d.
func (s Scalar[T]) Dual(d core.Duality) PScalar[T] { return pscalarOf(core.Dual(alg, d, s.mv())) }

// Nrm returns |s|.
func (s Scalar[T]) Nrm() T { return T(math.Abs(float64(s.S))) }

// Inv returns 1/s.
func (s Scalar[T]) Inv(opts ...core.Option) (Scalar[T], error) {
	if err := core.CheckDivisor("Inv", "ega2d scalar", s.S, opts...); err != nil {
		return Scalar[T]{}, err
	}

	return Scalar[T]{S: 1 / s.S}, nil
}

// Rev returns the reversion s − ps·I.
func (m MVecE[T]) Rev() MVecE[T] { return mvecEOf(core.Rev(alg, m.mv())) }

// Conj returns the Clifford conjugate s − ps·I.
func (m MVecE[T]) Conj() MVecE[T] { return mvecEOf(core.Conj(alg, m.mv())) }

// GrInv returns the grade involution (unchanged for even elements).
func (m MVecE[T]) GrInv() MVecE[T] { return m }

// RCmpl returns the right complement.
func (m MVecE[T]) RCmpl() MVecE[T] { return mvecEOf(core.RCmpl(alg, m.mv())) }

// LCmpl returns the left complement.
func (m MVecE[T]) LCmpl() MVecE[T] { return mvecEOf(core.LCmpl(alg, m.mv())) }

// NrmSq returns m·rev(m) = s² + ps².
func (m MVecE[T]) NrmSq() T { return m.S*m.S + m.PS*m.PS }

// Nrm returns √NrmSq.
func (m MVecE[T]) Nrm() T { return T(math.Sqrt(float64(m.NrmSq()))) }

// Normalize returns m/|m|.
func (m MVecE[T]) Normalize(opts ...core.Option) (MVecE[T], error) {
	n := m.Nrm()
	if err := core.CheckDivisor("Normalize", "ega2d even multivector", n, opts...); err != nil {
		return MVecE[T]{}, err
	}

	return m.Scale(1 / n), nil
}

// Inv returns rev(m)/|m|².
func (m MVecE[T]) Inv(opts ...core.Option) (MVecE[T], error) {
	sq := m.NrmSq()
	if err := core.CheckInvertible("Inv", "ega2d even multivector", sq, opts...); err != nil {
		return MVecE[T]{}, err
	}

	return m.Rev().Scale(1 / sq), nil
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

// Inv returns the multivector inverse conj(m)/(m·conj(m)).
func (m MVec[T]) Inv(opts ...core.Option) (MVec[T], error) {
	inv, err := core.Inv(alg, m.mv(), opts...)
	if err != nil {
		return MVec[T]{}, err
	}

	return mvecOf(inv), nil
}

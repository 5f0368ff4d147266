// SPDX-License-Identifier: MIT
// Package pga2dp: involutions, complements, bulk/weight, duals and norms.
//
// The bulk of a point is (x, y) and its weight is w; the weight of a line is
// its normal (X, Y) and its bulk is the offset Z.

package pga2dp

import (
	"math"

	"github.com/Daniel-G-W-Hug/ga-sub005/core"
	"github.com/Daniel-G-W-Hug/ga-sub005/pga"
)

// Rev returns v.
func (v Vec[T]) Rev() Vec[T] { return v }

// RRev returns −v.
func (v Vec[T]) RRev() Vec[T] { return v.Neg() }

// GrInv returns −v.
func (v Vec[T]) GrInv() Vec[T] { return v.Neg() }

// Conj returns −v.
func (v Vec[T]) Conj() Vec[T] { return v.Neg() }

// RCmpl returns the line with v∧rcmpl(v) = (v·v)·e321 for bulk v.
func (v Vec[T]) RCmpl() BiVec[T] { return bivecOf(core.RCmpl(alg, v.mv())) }

// LCmpl returns the left complement; for vectors it equals RCmpl.
func (v Vec[T]) LCmpl() BiVec[T] { return bivecOf(core.LCmpl(alg, v.mv())) }

// Bulk returns (x, y, 0).
func (v Vec[T]) Bulk() Vec[T] { return Vec[T]{X: v.X, Y: v.Y} }

// Weight returns (0, 0, w).
func (v Vec[T]) Weight() Vec[T] { return Vec[T]{Z: v.Z} }

// RightBulkDual returns the line through the origin perpendicular to v.
func (v Vec[T]) RightBulkDual() BiVec[T] { return bivecOf(pga.RightBulkDual(alg, v.mv())) }

// RightWeightDual returns w times the horizon.
func (v Vec[T]) RightWeightDual() BiVec[T] { return bivecOf(pga.RightWeightDual(alg, v.mv())) }

// LeftBulkDual returns lcmpl(bulk(v)).
func (v Vec[T]) LeftBulkDual() BiVec[T] { return bivecOf(pga.LeftBulkDual(alg, v.mv())) }

// LeftWeightDual returns lcmpl(weight(v)).
func (v Vec[T]) LeftWeightDual() BiVec[T] { return bivecOf(pga.LeftWeightDual(alg, v.mv())) }

// BulkNrmSq returns x² + y².
func (v Vec[T]) BulkNrmSq() T { return v.X*v.X + v.Y*v.Y }

// WeightNrmSq returns w².
func (v Vec[T]) WeightNrmSq() T { return v.Z * v.Z }

// BulkNrm returns the distance of a unitized point from the origin.
func (v Vec[T]) BulkNrm() T { return T(math.Sqrt(float64(v.BulkNrmSq()))) }

// WeightNrm returns |w|.
func (v Vec[T]) WeightNrm() T { return T(math.Abs(float64(v.Z))) }

// GeomNrm returns bulkNrm + weightNrm·e321; its ratio is the distance to the origin.
func (v Vec[T]) GeomNrm() pga.DualNum[T] { return pga.DualNum[T]{S: v.BulkNrm(), PS: v.WeightNrm()} }

// Att returns the attitude v∨horizon, the weight w as a scalar.
func (v Vec[T]) Att() Scalar[T] { return scalarOf(pga.Att(alg, v.mv())) }

// Unitize returns v/w so that the point has w = 1; the sign of w is divided out.
func (v Vec[T]) Unitize(opts ...core.Option) (Vec[T], error) {
	if err := core.CheckUnitizable("Unitize", "pga2dp point", v.Z, opts...); err != nil {
		return Vec[T]{}, err
	}

	return v.Scale(1 / v.Z), nil
}

// UnitizeInPlace unitizes *v; *v is left untouched on error.
func (v *Vec[T]) UnitizeInPlace(opts ...core.Option) error {
	u, err := v.Unitize(opts...)
	if err != nil {
		return err
	}
	*v = u

	return nil
}

// Inv returns v/(x² + y²), the inverse under Gpr.
func (v Vec[T]) Inv(opts ...core.Option) (Vec[T], error) {
	sq := v.BulkNrmSq()
	if err := core.CheckInvertible("Inv", "pga2dp vector", sq, opts...); err != nil {
		return Vec[T]{}, err
	}

	return v.Scale(1 / sq), nil
}

// Rev returns −l.
func (l BiVec[T]) Rev() BiVec[T] { return l.Neg() }

// RRev returns l.
func (l BiVec[T]) RRev() BiVec[T] { return l }

// GrInv returns l.
func (l BiVec[T]) GrInv() BiVec[T] { return l }

// Conj returns −l.
func (l BiVec[T]) Conj() BiVec[T] { return l.Neg() }

// RCmpl returns the right complement of l.
func (l BiVec[T]) RCmpl() Vec[T] { return vecOf(core.RCmpl(alg, l.mv())) }

// LCmpl returns the left complement; for bivectors it equals RCmpl.
func (l BiVec[T]) LCmpl() Vec[T] { return vecOf(core.LCmpl(alg, l.mv())) }

// Bulk returns (0, 0, Z).
func (l BiVec[T]) Bulk() BiVec[T] { return BiVec[T]{Z: l.Z} }

// Weight returns (X, Y, 0).
func (l BiVec[T]) Weight() BiVec[T] { return BiVec[T]{X: l.X, Y: l.Y} }

// RightBulkDual returns the point (0, 0, −Z).
func (l BiVec[T]) RightBulkDual() Vec[T] { return vecOf(pga.RightBulkDual(alg, l.mv())) }

// RightWeightDual returns the direction (−X, −Y, 0) normal to l.
func (l BiVec[T]) RightWeightDual() Vec[T] { return vecOf(pga.RightWeightDual(alg, l.mv())) }

// LeftBulkDual returns lcmpl(bulk(l)).
func (l BiVec[T]) LeftBulkDual() Vec[T] { return vecOf(pga.LeftBulkDual(alg, l.mv())) }

// LeftWeightDual returns lcmpl(weight(l)).
func (l BiVec[T]) LeftWeightDual() Vec[T] { return vecOf(pga.LeftWeightDual(alg, l.mv())) }

// BulkNrmSq returns Z².
func (l BiVec[T]) BulkNrmSq() T { return l.Z * l.Z }

// WeightNrmSq returns X² + Y².
func (l BiVec[T]) WeightNrmSq() T { return l.X*l.X + l.Y*l.Y }

// BulkNrm returns |Z|.
func (l BiVec[T]) BulkNrm() T { return T(math.Abs(float64(l.Z))) }

// WeightNrm returns |(X, Y)|.
func (l BiVec[T]) WeightNrm() T { return T(math.Sqrt(float64(l.WeightNrmSq()))) }

// GeomNrm returns bulkNrm + weightNrm·e321; its ratio is the distance of l from the origin.
func (l BiVec[T]) GeomNrm() pga.DualNum[T] { return pga.DualNum[T]{S: l.BulkNrm(), PS: l.WeightNrm()} }

// Att returns the direction of l, (Y, −X, 0).
func (l BiVec[T]) Att() Vec[T] { return vecOf(pga.Att(alg, l.mv())) }

// Unitize returns l scaled to unit weight norm.
func (l BiVec[T]) Unitize(opts ...core.Option) (BiVec[T], error) {
	u, err := pga.Unitize(alg, "pga2dp line", l.mv(), opts...)
	if err != nil {
		return BiVec[T]{}, err
	}

	return bivecOf(u), nil
}

// UnitizeInPlace unitizes *l; *l is left untouched on error.
func (l *BiVec[T]) UnitizeInPlace(opts ...core.Option) error {
	u, err := l.Unitize(opts...)
	if err != nil {
		return err
	}
	*l = u

	return nil
}

// Inv returns −l/Z², since l·l = −Z².
func (l BiVec[T]) Inv(opts ...core.Option) (BiVec[T], error) {
	sq := l.BulkNrmSq()
	if err := core.CheckInvertible("Inv", "pga2dp bivector", sq, opts...); err != nil {
		return BiVec[T]{}, err
	}

	return l.Rev().Scale(1 / sq), nil
}

// Rev returns −p.
func (p PScalar[T]) Rev() PScalar[T] { return p.Neg() }

// RRev returns p.
func (p PScalar[T]) RRev() PScalar[T] { return p }

// GrInv returns −p.
func (p PScalar[T]) GrInv() PScalar[T] { return p.Neg() }

// Conj returns p.
func (p PScalar[T]) Conj() PScalar[T] { return p }

// RCmpl returns the scalar complement.
func (p PScalar[T]) RCmpl() Scalar[T] { return scalarOf(core.RCmpl(alg, p.mv())) }

// LCmpl returns the scalar complement.
func (p PScalar[T]) LCmpl() Scalar[T] { return scalarOf(core.LCmpl(alg, p.mv())) }

// WeightNrm returns |ps|.
func (p PScalar[T]) WeightNrm() T { return T(math.Abs(float64(p.PS))) }

// Inv always fails in strict mode: e321·e321 = 0.
func (p PScalar[T]) Inv(opts ...core.Option) (PScalar[T], error) {
	var sq T
	if err := core.CheckInvertible("Inv", "pga2dp pseudoscalar", sq, opts...); err != nil {
		return PScalar[T]{}, err
	}

	return PScalar[T]{PS: p.PS / sq}, nil
}

// RRev returns −s.
func (s Scalar[T]) RRev() Scalar[T] { return s.Neg() }

// RCmpl returns s·e321.
func (s Scalar[T]) RCmpl() PScalar[T] { return pscalarOf(core.RCmpl(alg, s.mv())) }

// LCmpl returns s·e321.
func (s Scalar[T]) LCmpl() PScalar[T] { return pscalarOf(core.LCmpl(alg, s.mv())) }

// BulkNrm returns |s|.
func (s Scalar[T]) BulkNrm() T { return T(math.Abs(float64(s.S))) }

// Inv returns 1/s.
func (s Scalar[T]) Inv(opts ...core.Option) (Scalar[T], error) {
	if err := core.CheckDivisor("Inv", "pga2dp scalar", s.S, opts...); err != nil {
		return Scalar[T]{}, err
	}

	return Scalar[T]{S: 1 / s.S}, nil
}

// Rev returns s − B.
func (m MVecE[T]) Rev() MVecE[T] { return MVecE[T]{S: m.S, B: m.B.Neg()} }

// RRev returns −s + B.
func (m MVecE[T]) RRev() MVecE[T] { return MVecE[T]{S: -m.S, B: m.B} }

// Inv returns the inverse of m.
func (m MVecE[T]) Inv(opts ...core.Option) (MVecE[T], error) {
	inv, err := core.Inv(alg, m.mv(), opts...)
	if err != nil {
		return MVecE[T]{}, err
	}

	return mvecEOf(inv), nil
}

// Rev returns v − ps·e321.
func (m MVecU[T]) Rev() MVecU[T] { return MVecU[T]{V: m.V, PS: -m.PS} }

// RRev returns −v + ps·e321; for motors this is the reverse motion.
func (m MVecU[T]) RRev() MVecU[T] { return MVecU[T]{V: m.V.Neg(), PS: m.PS} }

// BulkNrmSq returns x² + y².
func (m MVecU[T]) BulkNrmSq() T { return m.V.BulkNrmSq() }

// WeightNrmSq returns z² + ps².
func (m MVecU[T]) WeightNrmSq() T { return m.V.WeightNrmSq() + m.PS*m.PS }

// WeightNrm returns √WeightNrmSq.
func (m MVecU[T]) WeightNrm() T { return T(math.Sqrt(float64(m.WeightNrmSq()))) }

// Rev returns the reversion.
func (m MVec[T]) Rev() MVec[T] { return mvecOf(core.Rev(alg, m.mv())) }

// RRev returns the antireversion.
func (m MVec[T]) RRev() MVec[T] { return mvecOf(core.RRev(alg, m.mv())) }

// Conj returns the Clifford conjugate.
func (m MVec[T]) Conj() MVec[T] { return mvecOf(core.Conj(alg, m.mv())) }

// GrInv returns the grade involution.
func (m MVec[T]) GrInv() MVec[T] { return mvecOf(core.GrInv(alg, m.mv())) }

// RCmpl returns the right complement.
func (m MVec[T]) RCmpl() MVec[T] { return mvecOf(core.RCmpl(alg, m.mv())) }

// LCmpl returns the left complement.
func (m MVec[T]) LCmpl() MVec[T] { return mvecOf(core.LCmpl(alg, m.mv())) }

// Bulk returns the bulk part.
func (m MVec[T]) Bulk() MVec[T] { return mvecOf(core.Bulk(alg, m.mv())) }

// Weight returns the weight part.
func (m MVec[T]) Weight() MVec[T] { return mvecOf(core.Weight(alg, m.mv())) }

// RightBulkDual returns rcmpl(bulk(m)).
func (m MVec[T]) RightBulkDual() MVec[T] { return mvecOf(pga.RightBulkDual(alg, m.mv())) }

// RightWeightDual returns rcmpl(weight(m)).
func (m MVec[T]) RightWeightDual() MVec[T] { return mvecOf(pga.RightWeightDual(alg, m.mv())) }

// LeftBulkDual returns lcmpl(bulk(m)).
func (m MVec[T]) LeftBulkDual() MVec[T] { return mvecOf(pga.LeftBulkDual(alg, m.mv())) }

// LeftWeightDual returns lcmpl(weight(m)).
func (m MVec[T]) LeftWeightDual() MVec[T] { return mvecOf(pga.LeftWeightDual(alg, m.mv())) }

// BulkNrmSq returns dot(m, m).
func (m MVec[T]) BulkNrmSq() T { return pga.BulkNrmSq(alg, m.mv()) }

// WeightNrmSq returns the antiscalar of rdot(m, m).
func (m MVec[T]) WeightNrmSq() T { return pga.WeightNrmSq(alg, m.mv()) }

// BulkNrm returns √BulkNrmSq.
func (m MVec[T]) BulkNrm() T { return pga.BulkNrm(alg, m.mv()) }

// WeightNrm returns √WeightNrmSq.
func (m MVec[T]) WeightNrm() T { return pga.WeightNrm(alg, m.mv()) }

// GeomNrm returns bulkNrm + weightNrm·e321.
func (m MVec[T]) GeomNrm() pga.DualNum[T] { return pga.DualNum[T]{S: m.BulkNrm(), PS: m.WeightNrm()} }

// Unitize returns m scaled to unit weight norm.
func (m MVec[T]) Unitize(opts ...core.Option) (MVec[T], error) {
	u, err := pga.Unitize(alg, "pga2dp multivector", m.mv(), opts...)
	if err != nil {
		return MVec[T]{}, err
	}

	return mvecOf(u), nil
}

// Inv returns the multivector inverse; elements with a null scalar-plus-bulk part fail.
func (m MVec[T]) Inv(opts ...core.Option) (MVec[T], error) {
	inv, err := core.Inv(alg, m.mv(), opts...)
	if err != nil {
		return MVec[T]{}, err
	}

	return mvecOf(inv), nil
}

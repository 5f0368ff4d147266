// SPDX-License-Identifier: MIT
// Package pga3dp: involutions, complements, bulk/weight, duals and norms.
//
// Bulk and weight per object:
//
//	point  (x, y, z, w)  bulk (x, y, z)   weight w
//	line   (V, M)        bulk M           weight V
//	plane  (X, Y, Z, W)  bulk W           weight (X, Y, Z)

package pga3dp

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

// RCmpl returns the plane t with v∧t = (v·v)·e1234 for bulk v.
func (v Vec[T]) RCmpl() TriVec[T] { return trivecOf(core.RCmpl(alg, v.mv())) }

// LCmpl returns the left complement, −RCmpl for vectors.
func (v Vec[T]) LCmpl() TriVec[T] { return trivecOf(core.LCmpl(alg, v.mv())) }

// Bulk returns (x, y, z, 0).
func (v Vec[T]) Bulk() Vec[T] { return Vec[T]{X: v.X, Y: v.Y, Z: v.Z} }

// Weight returns (0, 0, 0, w).
func (v Vec[T]) Weight() Vec[T] { return Vec[T]{W: v.W} }

// RightBulkDual returns the plane through the origin with normal (x, y, z).
func (v Vec[T]) RightBulkDual() TriVec[T] { return trivecOf(pga.RightBulkDual(alg, v.mv())) }

// RightWeightDual returns w times the horizon.
func (v Vec[T]) RightWeightDual() TriVec[T] { return trivecOf(pga.RightWeightDual(alg, v.mv())) }

// LeftBulkDual returns lcmpl(bulk(v)).
func (v Vec[T]) LeftBulkDual() TriVec[T] { return trivecOf(pga.LeftBulkDual(alg, v.mv())) }

// LeftWeightDual returns lcmpl(weight(v)).
func (v Vec[T]) LeftWeightDual() TriVec[T] { return trivecOf(pga.LeftWeightDual(alg, v.mv())) }

// BulkNrmSq returns x² + y² + z².
func (v Vec[T]) BulkNrmSq() T { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// WeightNrmSq returns w².
func (v Vec[T]) WeightNrmSq() T { return v.W * v.W }

// BulkNrm returns the distance of a unitized point from the origin.
func (v Vec[T]) BulkNrm() T { return T(math.Sqrt(float64(v.BulkNrmSq()))) }

// WeightNrm returns |w|.
func (v Vec[T]) WeightNrm() T { return T(math.Abs(float64(v.W))) }

// GeomNrm returns bulkNrm + weightNrm·e1234; its ratio is the distance to the origin.
func (v Vec[T]) GeomNrm() pga.DualNum[T] { return pga.DualNum[T]{S: v.BulkNrm(), PS: v.WeightNrm()} }

// Att returns the attitude v∨horizon, the weight w as a scalar.
func (v Vec[T]) Att() Scalar[T] { return scalarOf(pga.Att(alg, v.mv())) }

// Unitize returns v/w so that the point has w = 1; the sign of w is divided out.
func (v Vec[T]) Unitize(opts ...core.Option) (Vec[T], error) {
	if err := core.CheckUnitizable("Unitize", "pga3dp point", v.W, opts...); err != nil {
		return Vec[T]{}, err
	}

	return v.Scale(1 / v.W), nil
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

// Inv returns v/(x² + y² + z²), the inverse under Gpr.
func (v Vec[T]) Inv(opts ...core.Option) (Vec[T], error) {
	sq := v.BulkNrmSq()
	if err := core.CheckInvertible("Inv", "pga3dp vector", sq, opts...); err != nil {
		return Vec[T]{}, err
	}

	return v.Scale(1 / sq), nil
}

// Rev returns −l.
func (l BiVec[T]) Rev() BiVec[T] { return l.Neg() }

// RRev returns −l.
func (l BiVec[T]) RRev() BiVec[T] { return l.Neg() }

// GrInv returns l.
func (l BiVec[T]) GrInv() BiVec[T] { return l }

// Conj returns −l.
func (l BiVec[T]) Conj() BiVec[T] { return l.Neg() }

// RCmpl returns −(M, V): direction and moment swap places.
func (l BiVec[T]) RCmpl() BiVec[T] { return bivecOf(core.RCmpl(alg, l.mv())) }

// LCmpl returns the left complement; for bivectors it equals RCmpl.
func (l BiVec[T]) LCmpl() BiVec[T] { return bivecOf(core.LCmpl(alg, l.mv())) }

// Bulk returns the moment part.
func (l BiVec[T]) Bulk() BiVec[T] { return BiVec[T]{Mx: l.Mx, My: l.My, Mz: l.Mz} }

// Weight returns the direction part.
func (l BiVec[T]) Weight() BiVec[T] { return BiVec[T]{Vx: l.Vx, Vy: l.Vy, Vz: l.Vz} }

// RightBulkDual returns the line through the origin with direction −M,
// normal to the plane through l and the origin.
func (l BiVec[T]) RightBulkDual() BiVec[T] { return bivecOf(pga.RightBulkDual(alg, l.mv())) }

// RightWeightDual returns the line at infinity with moment −V.
func (l BiVec[T]) RightWeightDual() BiVec[T] { return bivecOf(pga.RightWeightDual(alg, l.mv())) }

// LeftBulkDual returns lcmpl(bulk(l)).
func (l BiVec[T]) LeftBulkDual() BiVec[T] { return bivecOf(pga.LeftBulkDual(alg, l.mv())) }

// LeftWeightDual returns lcmpl(weight(l)).
func (l BiVec[T]) LeftWeightDual() BiVec[T] { return bivecOf(pga.LeftWeightDual(alg, l.mv())) }

// BulkNrmSq returns M·M.
func (l BiVec[T]) BulkNrmSq() T { return l.Mx*l.Mx + l.My*l.My + l.Mz*l.Mz }

// WeightNrmSq returns V·V.
func (l BiVec[T]) WeightNrmSq() T { return l.Vx*l.Vx + l.Vy*l.Vy + l.Vz*l.Vz }

// BulkNrm returns |M|.
func (l BiVec[T]) BulkNrm() T { return T(math.Sqrt(float64(l.BulkNrmSq()))) }

// WeightNrm returns |V|.
func (l BiVec[T]) WeightNrm() T { return T(math.Sqrt(float64(l.WeightNrmSq()))) }

// GeomNrm returns |M| + |V|·e1234; its ratio is the distance of l from the origin.
func (l BiVec[T]) GeomNrm() pga.DualNum[T] { return pga.DualNum[T]{S: l.BulkNrm(), PS: l.WeightNrm()} }

// Att returns the direction of l as a point at infinity.
func (l BiVec[T]) Att() Vec[T] { return vecOf(pga.Att(alg, l.mv())) }

// Unitize returns l scaled to a unit direction.
func (l BiVec[T]) Unitize(opts ...core.Option) (BiVec[T], error) {
	u, err := pga.Unitize(alg, "pga3dp line", l.mv(), opts...)
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

// Inv returns −l/(M·M), since l·l = −M·M for a line (V·M = 0).
func (l BiVec[T]) Inv(opts ...core.Option) (BiVec[T], error) {
	sq := l.BulkNrmSq()
	if err := core.CheckInvertible("Inv", "pga3dp bivector", sq, opts...); err != nil {
		return BiVec[T]{}, err
	}

	return l.Rev().Scale(1 / sq), nil
}

// Rev returns −t.
func (t TriVec[T]) Rev() TriVec[T] { return t.Neg() }

// RRev returns t.
func (t TriVec[T]) RRev() TriVec[T] { return t }

// GrInv returns −t.
func (t TriVec[T]) GrInv() TriVec[T] { return t.Neg() }

// Conj returns t.
func (t TriVec[T]) Conj() TriVec[T] { return t }

// RCmpl returns the right complement of t.
func (t TriVec[T]) RCmpl() Vec[T] { return vecOf(core.RCmpl(alg, t.mv())) }

// LCmpl returns the left complement, −RCmpl for trivectors.
func (t TriVec[T]) LCmpl() Vec[T] { return vecOf(core.LCmpl(alg, t.mv())) }

// Bulk returns (0, 0, 0, W).
func (t TriVec[T]) Bulk() TriVec[T] { return TriVec[T]{W: t.W} }

// Weight returns (X, Y, Z, 0).
func (t TriVec[T]) Weight() TriVec[T] { return TriVec[T]{X: t.X, Y: t.Y, Z: t.Z} }

// RightBulkDual returns the point (0, 0, 0, −W).
func (t TriVec[T]) RightBulkDual() Vec[T] { return vecOf(pga.RightBulkDual(alg, t.mv())) }

// RightWeightDual returns the direction −(X, Y, Z) normal to t.
func (t TriVec[T]) RightWeightDual() Vec[T] { return vecOf(pga.RightWeightDual(alg, t.mv())) }

// LeftBulkDual returns lcmpl(bulk(t)).
func (t TriVec[T]) LeftBulkDual() Vec[T] { return vecOf(pga.LeftBulkDual(alg, t.mv())) }

// LeftWeightDual returns lcmpl(weight(t)).
func (t TriVec[T]) LeftWeightDual() Vec[T] { return vecOf(pga.LeftWeightDual(alg, t.mv())) }

// BulkNrmSq returns W².
func (t TriVec[T]) BulkNrmSq() T { return t.W * t.W }

// WeightNrmSq returns X² + Y² + Z².
func (t TriVec[T]) WeightNrmSq() T { return t.X*t.X + t.Y*t.Y + t.Z*t.Z }

// BulkNrm returns |W|.
func (t TriVec[T]) BulkNrm() T { return T(math.Abs(float64(t.W))) }

// WeightNrm returns |(X, Y, Z)|.
func (t TriVec[T]) WeightNrm() T { return T(math.Sqrt(float64(t.WeightNrmSq()))) }

// GeomNrm returns |W| + |n|·e1234; its ratio is the distance of t from the origin.
func (t TriVec[T]) GeomNrm() pga.DualNum[T] { return pga.DualNum[T]{S: t.BulkNrm(), PS: t.WeightNrm()} }

// Att returns the line at infinity of t, (0, 0, 0, X, Y, Z).
func (t TriVec[T]) Att() BiVec[T] { return bivecOf(pga.Att(alg, t.mv())) }

// Unitize returns t scaled to a unit normal.
func (t TriVec[T]) Unitize(opts ...core.Option) (TriVec[T], error) {
	u, err := pga.Unitize(alg, "pga3dp plane", t.mv(), opts...)
	if err != nil {
		return TriVec[T]{}, err
	}

	return trivecOf(u), nil
}

// UnitizeInPlace unitizes *t; *t is left untouched on error.
func (t *TriVec[T]) UnitizeInPlace(opts ...core.Option) error {
	u, err := t.Unitize(opts...)
	if err != nil {
		return err
	}
	*t = u

	return nil
}

// Inv returns −t/W², since t·t = −W².
func (t TriVec[T]) Inv(opts ...core.Option) (TriVec[T], error) {
	sq := t.BulkNrmSq()
	if err := core.CheckInvertible("Inv", "pga3dp trivector", sq, opts...); err != nil {
		return TriVec[T]{}, err
	}

	return t.Rev().Scale(1 / sq), nil
}

// Rev returns p.
func (p PScalar[T]) Rev() PScalar[T] { return p }

// RRev returns p.
func (p PScalar[T]) RRev() PScalar[T] { return p }

// GrInv returns p.
func (p PScalar[T]) GrInv() PScalar[T] { return p }

// Conj returns p.
func (p PScalar[T]) Conj() PScalar[T] { return p }

// RCmpl returns the scalar complement.
func (p PScalar[T]) RCmpl() Scalar[T] { return scalarOf(core.RCmpl(alg, p.mv())) }

// LCmpl returns the scalar complement.
func (p PScalar[T]) LCmpl() Scalar[T] { return scalarOf(core.LCmpl(alg, p.mv())) }

// WeightNrm returns |ps|.
func (p PScalar[T]) WeightNrm() T { return T(math.Abs(float64(p.PS))) }

// Inv always fails in strict mode: e1234·e1234 = 0.
func (p PScalar[T]) Inv(opts ...core.Option) (PScalar[T], error) {
	var sq T
	if err := core.CheckInvertible("Inv", "pga3dp pseudoscalar", sq, opts...); err != nil {
		return PScalar[T]{}, err
	}

	return PScalar[T]{PS: p.PS / sq}, nil
}

// RRev returns s.
func (s Scalar[T]) RRev() Scalar[T] { return s }

// RCmpl returns s·e1234.
func (s Scalar[T]) RCmpl() PScalar[T] { return pscalarOf(core.RCmpl(alg, s.mv())) }

// LCmpl returns s·e1234.
func (s Scalar[T]) LCmpl() PScalar[T] { return pscalarOf(core.LCmpl(alg, s.mv())) }

// BulkNrm returns |s|.
func (s Scalar[T]) BulkNrm() T { return T(math.Abs(float64(s.S))) }

// Inv returns 1/s.
func (s Scalar[T]) Inv(opts ...core.Option) (Scalar[T], error) {
	if err := core.CheckDivisor("Inv", "pga3dp scalar", s.S, opts...); err != nil {
		return Scalar[T]{}, err
	}

	return Scalar[T]{S: 1 / s.S}, nil
}

// Rev returns s − B + ps·e1234.
func (m MVecE[T]) Rev() MVecE[T] { return MVecE[T]{S: m.S, B: m.B.Neg(), PS: m.PS} }

// RRev equals Rev on even elements; for motors it is the reverse motion.
func (m MVecE[T]) RRev() MVecE[T] { return MVecE[T]{S: m.S, B: m.B.Neg(), PS: m.PS} }

// BulkNrmSq returns s² + M·M.
func (m MVecE[T]) BulkNrmSq() T { return m.S*m.S + m.B.BulkNrmSq() }

// WeightNrmSq returns V·V + ps².
func (m MVecE[T]) WeightNrmSq() T { return m.B.WeightNrmSq() + m.PS*m.PS }

// WeightNrm returns √WeightNrmSq.
func (m MVecE[T]) WeightNrm() T { return T(math.Sqrt(float64(m.WeightNrmSq()))) }

// Inv returns the inverse of m under Gpr.
func (m MVecE[T]) Inv(opts ...core.Option) (MVecE[T], error) {
	inv, err := core.Inv(alg, m.mv(), opts...)
	if err != nil {
		return MVecE[T]{}, err
	}

	return mvecEOf(inv), nil
}

// Rev returns v − t.
func (m MVecU[T]) Rev() MVecU[T] { return MVecU[T]{V: m.V, Tri: m.Tri.Neg()} }

// RRev returns −v + t.
func (m MVecU[T]) RRev() MVecU[T] { return MVecU[T]{V: m.V.Neg(), Tri: m.Tri} }

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

// GeomNrm returns bulkNrm + weightNrm·e1234.
func (m MVec[T]) GeomNrm() pga.DualNum[T] { return pga.DualNum[T]{S: m.BulkNrm(), PS: m.WeightNrm()} }

// Unitize returns m scaled to unit weight norm.
func (m MVec[T]) Unitize(opts ...core.Option) (MVec[T], error) {
	u, err := pga.Unitize(alg, "pga3dp multivector", m.mv(), opts...)
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

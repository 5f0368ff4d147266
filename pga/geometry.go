// SPDX-License-Identifier: MIT
// Package pga: projections, norms, unitization and motor application.

package pga

import (
	"math"

	"github.com/Daniel-G-W-Hug/ga-sub005/core"
)

// OrthoProj projects a orthogonally onto b: b ∨ (a ∧ rightWeightDual(b)).
// The result is homogeneous; its weight carries the weight of b.
func OrthoProj[T core.Float](alg *core.Algebra, a, b core.MV[T]) core.MV[T] {
	return core.Rwdg(alg, b, RightWeightExpand(alg, a, b))
}

// CentralProj projects a onto b towards the origin: b ∨ (a ∧ rightBulkDual(b)).
func CentralProj[T core.Float](alg *core.Algebra, a, b core.MV[T]) core.MV[T] {
	return core.Rwdg(alg, b, RightBulkExpand(alg, a, b))
}

// OrthoAntiproj projects a orthogonally onto b from the other side:
// b ∧ (a ∨ rightWeightDual(b)), e.g. the plane through point b parallel to plane a.
func OrthoAntiproj[T core.Float](alg *core.Algebra, a, b core.MV[T]) core.MV[T] {
	return core.Wdg(alg, b, RightWeightContract(alg, a, b))
}

// BulkNrmSq returns dot(a, a): the squared norm of the bulk.
func BulkNrmSq[T core.Float](alg *core.Algebra, a core.MV[T]) T {
	return core.Dot(alg, a, a)
}

// WeightNrmSq returns the pseudoscalar coefficient of rdot(a, a).
func WeightNrmSq[T core.Float](alg *core.Algebra, a core.MV[T]) T {
	return core.Rdot(alg, a, a)
}

// BulkNrm returns √BulkNrmSq.
func BulkNrm[T core.Float](alg *core.Algebra, a core.MV[T]) T {
	return T(math.Sqrt(float64(BulkNrmSq(alg, a))))
}

// WeightNrm returns √WeightNrmSq.
func WeightNrm[T core.Float](alg *core.Algebra, a core.MV[T]) T {
	return T(math.Sqrt(float64(WeightNrmSq(alg, a))))
}

// Unitize scales a so that its weight norm is 1.
// Stage 1 (Validate): the weight norm must exceed the threshold (strict mode),
// otherwise ErrNotUnitizable is returned.
// Stage 2 (Finalize): divide by the weight norm.
func Unitize[T core.Float](alg *core.Algebra, operand string, a core.MV[T], opts ...core.Option) (core.MV[T], error) {
	w := WeightNrm(alg, a)
	if err := core.CheckUnitizable("Unitize", operand, w, opts...); err != nil {
		return core.MV[T]{}, err
	}

	return core.Scale(a, 1/w), nil
}

// Horizon returns the antivector of the degenerate generator, rcmpl(e_w):
// the line at infinity (2dp) or the plane at infinity (3dp).
func Horizon[T core.Float](alg *core.Algebra) core.MV[T] {
	var ew core.MV[T]
	for slot := 0; slot < alg.Size(); slot++ {
		if alg.Grade(slot) == 1 && alg.WeightMask().Has(slot) {
			ew = core.Basis[T](alg, slot)
			break
		}
	}

	return core.RCmpl(alg, ew)
}

// Att returns the attitude a ∨ horizon: the weight of a point (scalar), the
// direction of a line (vector), the line at infinity of a plane (bivector).
func Att[T core.Float](alg *core.Algebra, a core.MV[T]) core.MV[T] {
	return core.Rwdg(alg, a, Horizon[T](alg))
}

// Move applies the motor m to x with the regressive sandwich
// rgpr(rgpr(m, x), rrev(m)); the result is restricted to the grades of x.
func Move[T core.Float](alg *core.Algebra, x, m core.MV[T]) core.MV[T] {
	out := core.Rgpr(alg, core.Rgpr(alg, m, x), core.RRev(alg, m))

	return core.Restrict(out, x.M)
}

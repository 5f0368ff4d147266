// SPDX-License-Identifier: MIT
// Package pga3dp: projections, reflections, distances and angles.

package pga3dp

import (
	"math"

	"github.com/Daniel-G-W-Hug/ga-sub005/core"
	"github.com/Daniel-G-W-Hug/ga-sub005/pga"
)

// OrthoProjPointPlane returns the foot of the perpendicular from p to t.
// Results of the projection family are homogeneous and carry the weight of
// the target; unitize them to read coordinates.
func OrthoProjPointPlane[T core.Float](p Vec[T], t TriVec[T]) Vec[T] {
	return vecOf(pga.OrthoProj(alg, p.mv(), t.mv()))
}

// OrthoProjPointLine returns the foot of the perpendicular from p to l.
func OrthoProjPointLine[T core.Float](p Vec[T], l BiVec[T]) Vec[T] {
	return vecOf(pga.OrthoProj(alg, p.mv(), l.mv()))
}

// OrthoProjLinePlane returns the shadow of l on t under orthogonal projection.
func OrthoProjLinePlane[T core.Float](l BiVec[T], t TriVec[T]) BiVec[T] {
	return bivecOf(pga.OrthoProj(alg, l.mv(), t.mv()))
}

// CentralProjPointPlane returns where the line through p and the origin
// pierces t.
func CentralProjPointPlane[T core.Float](p Vec[T], t TriVec[T]) Vec[T] {
	return vecOf(pga.CentralProj(alg, p.mv(), t.mv()))
}

// CentralProjPointLine returns the intersection of l with the plane through
// p and the origin that contains the moment direction of l.
func CentralProjPointLine[T core.Float](p Vec[T], l BiVec[T]) Vec[T] {
	return vecOf(pga.CentralProj(alg, p.mv(), l.mv()))
}

// CentralProjLinePlane returns the intersection of t with the plane through
// l and the origin.
func CentralProjLinePlane[T core.Float](l BiVec[T], t TriVec[T]) BiVec[T] {
	return bivecOf(pga.CentralProj(alg, l.mv(), t.mv()))
}

// OrthoAntiprojPlanePoint returns the plane through p parallel to t.
func OrthoAntiprojPlanePoint[T core.Float](t TriVec[T], p Vec[T]) TriVec[T] {
	return trivecOf(pga.OrthoAntiproj(alg, t.mv(), p.mv()))
}

// OrthoAntiprojLinePoint returns the line through p parallel to l.
func OrthoAntiprojLinePoint[T core.Float](l BiVec[T], p Vec[T]) BiVec[T] {
	return bivecOf(pga.OrthoAntiproj(alg, l.mv(), p.mv()))
}

// OrthoAntiprojPlaneLine returns the plane containing l that is as close to
// parallel with t as possible.
func OrthoAntiprojPlaneLine[T core.Float](t TriVec[T], l BiVec[T]) TriVec[T] {
	return trivecOf(pga.OrthoAntiproj(alg, t.mv(), l.mv()))
}

// reflect returns g⟇x⟇g restricted to the grades of x.
func reflect[T core.Float](x core.MV[T], g TriVec[T]) core.MV[T] {
	gm := g.mv()

	return core.Restrict(core.Rgpr(alg, core.Rgpr(alg, gm, x), gm), x.M)
}

// ReflectOn mirrors the point p in the plane t; t must be unitized for p to
// keep its weight.
func (p Vec[T]) ReflectOn(t TriVec[T]) Vec[T] { return vecOf(reflect(p.mv(), t)) }

// ReflectOn mirrors the line l in the plane t.
func (l BiVec[T]) ReflectOn(t TriVec[T]) BiVec[T] { return bivecOf(core.Neg(reflect(l.mv(), t))) }

// ReflectOn mirrors the plane u in the plane t.
func (u TriVec[T]) ReflectOn(t TriVec[T]) TriVec[T] { return trivecOf(core.Neg(reflect(u.mv(), t))) }

func abs[T core.Float](x T) T { return T(math.Abs(float64(x))) }

// DistPoints returns the homogeneous distance between p and q:
// weightNrm(p∧q) + |w_p·w_q|·e1234. Its Ratio is the Euclidean distance.
func DistPoints[T core.Float](p, q Vec[T]) pga.DualNum[T] {
	return pga.DualNum[T]{S: p.Wdg(q).WeightNrm(), PS: abs(p.W * q.W)}
}

// DistPointLine returns weightNrm(p∧l) + |w_p|·weightNrm(l)·e1234.
func DistPointLine[T core.Float](p Vec[T], l BiVec[T]) pga.DualNum[T] {
	return pga.DualNum[T]{S: p.WdgBiVec(l).WeightNrm(), PS: abs(p.W) * l.WeightNrm()}
}

// DistPointPlane returns |p∨t| + |w_p|·weightNrm(t)·e1234.
func DistPointPlane[T core.Float](p Vec[T], t TriVec[T]) pga.DualNum[T] {
	return pga.DualNum[T]{S: abs(p.RwdgTriVec(t).S), PS: abs(p.W) * t.WeightNrm()}
}

// DistLines returns the homogeneous distance between l and m. Skew lines
// give |l∨m| + |V_l×V_m|·e1234. When the directions are parallel within
// the threshold of opts the distance is taken between the moments instead:
// |M_l·|V_m| − sgn(V_l·V_m)·M_m·|V_l|| + |V_l||V_m|·e1234.
func DistLines[T core.Float](l, m BiVec[T], opts ...core.Option) pga.DualNum[T] {
	vl, vm := l.Direction(), m.Direction()
	nl, nm := vl.Nrm(), vm.Nrm()
	cross := vl.Cross(vm).Nrm()
	if cross > core.Threshold[T](core.Gather(opts...))*nl*nm {
		return pga.DualNum[T]{S: abs(l.Rwdg(m).S), PS: cross}
	}
	sgn := T(1)
	if vl.Dot(vm).S < 0 {
		sgn = -1
	}
	d := l.Moment().Scale(nm).Sub(m.Moment().Scale(sgn * nl))

	return pga.DualNum[T]{S: d.Nrm(), PS: nl * nm}
}

// AngleLines returns the angle in [0, π] between the directions of l and m.
func AngleLines[T core.Float](l, m BiVec[T], opts ...core.Option) (T, error) {
	return angle("AngleLines", "pga3dp line", l.Rdot(m).PS, l.WeightNrm()*m.WeightNrm(), opts...)
}

// AnglePlanes returns the angle in [0, π] between the normals of t and u.
func AnglePlanes[T core.Float](t, u TriVec[T], opts ...core.Option) (T, error) {
	return angle("AnglePlanes", "pga3dp plane", t.Rdot(u).PS, t.WeightNrm()*u.WeightNrm(), opts...)
}

func angle[T core.Float](op, operand string, dot, nrm T, opts ...core.Option) (T, error) {
	if err := core.CheckDivisor(op, operand, nrm, opts...); err != nil {
		return 0, err
	}
	c := float64(dot / nrm)

	return T(math.Acos(math.Max(-1, math.Min(1, c)))), nil
}

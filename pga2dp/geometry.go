// SPDX-License-Identifier: MIT
// Package pga2dp: projections, reflections, distances and angles.

package pga2dp

import (
	"math"

	"github.com/Daniel-G-W-Hug/ga-sub005/core"
	"github.com/Daniel-G-W-Hug/ga-sub005/pga"
)

// OrthoProjPointLine returns the foot of the perpendicular from p to l.
// The result carries the weight of l; unitize it to read coordinates.
func OrthoProjPointLine[T core.Float](p Vec[T], l BiVec[T]) Vec[T] {
	return vecOf(pga.OrthoProj(alg, p.mv(), l.mv()))
}

// CentralProjPointLine returns the intersection of l with the line through p
// and the origin.
func CentralProjPointLine[T core.Float](p Vec[T], l BiVec[T]) Vec[T] {
	return vecOf(pga.CentralProj(alg, p.mv(), l.mv()))
}

// OrthoAntiprojLinePoint returns the line through p parallel to l.
func OrthoAntiprojLinePoint[T core.Float](l BiVec[T], p Vec[T]) BiVec[T] {
	return bivecOf(pga.OrthoAntiproj(alg, l.mv(), p.mv()))
}

// reflect returns −l⟇x⟇l restricted to the grades of x.
func reflect[T core.Float](x core.MV[T], l BiVec[T]) core.MV[T] {
	lm := l.mv()
	out := core.Neg(core.Rgpr(alg, core.Rgpr(alg, lm, x), lm))

	return core.Restrict(out, x.M)
}

// ReflectOn mirrors the point p in the line l; l must be unitized for p to
// keep its weight.
func (p Vec[T]) ReflectOn(l BiVec[T]) Vec[T] { return vecOf(reflect(p.mv(), l)) }

// ReflectOn mirrors the line k in the line l.
func (k BiVec[T]) ReflectOn(l BiVec[T]) BiVec[T] { return bivecOf(reflect(k.mv(), l)) }

// DistPoints returns the homogeneous distance between p and q:
// weightNrm(p∧q) + |w_p·w_q|·e321. Its Ratio is the Euclidean distance.
func DistPoints[T core.Float](p, q Vec[T]) pga.DualNum[T] {
	return pga.DualNum[T]{
		S:  p.Wdg(q).WeightNrm(),
		PS: T(math.Abs(float64(p.Z * q.Z))),
	}
}

// DistPointLine returns |p∨l| + |w_p|·weightNrm(l)·e321.
func DistPointLine[T core.Float](p Vec[T], l BiVec[T]) pga.DualNum[T] {
	return pga.DualNum[T]{
		S:  T(math.Abs(float64(p.RwdgBiVec(l).S))),
		PS: T(math.Abs(float64(p.Z))) * l.WeightNrm(),
	}
}

// AngleLines returns the angle in [0, π] between the normals of l and m.
func AngleLines[T core.Float](l, m BiVec[T], opts ...core.Option) (T, error) {
	nrm := l.WeightNrm() * m.WeightNrm()
	if err := core.CheckDivisor("AngleLines", "pga2dp line", nrm, opts...); err != nil {
		return 0, err
	}
	c := float64(l.Rdot(m).PS / nrm)

	return T(math.Acos(math.Max(-1, math.Min(1, c)))), nil
}

// SPDX-License-Identifier: MIT
// Package ega3d: angles, exponentials, rotors, matrices and quaternions.

package ega3d

import (
	"math"

	"github.com/Daniel-G-W-Hug/ga-sub005/core"
	"github.com/Daniel-G-W-Hug/ga-sub005/matrix"
	"gonum.org/v1/gonum/num/quat"
)

// Angle returns the unsigned angle between v and w in [0, π].
func (v Vec[T]) Angle(w Vec[T], opts ...core.Option) (T, error) {
	return angle("ega3d vector", v.Dot(w).S, v.Nrm()*w.Nrm(), opts...)
}

// Angle returns the unsigned angle between the planes b and c in [0, π].
func (b BiVec[T]) Angle(c BiVec[T], opts ...core.Option) (T, error) {
	return angle("ega3d bivector", b.Dot(c).S, b.Nrm()*c.Nrm(), opts...)
}

func angle[T core.Float](operand string, dot, nrm T, opts ...core.Option) (T, error) {
	if err := core.CheckDivisor("Angle", operand, nrm, opts...); err != nil {
		return 0, err
	}
	c := float64(dot / nrm)

	return T(math.Acos(math.Max(-1, math.Min(1, c)))), nil
}

// Exp returns exp(b) = cos|b| + sin|b|·b/|b|.
func Exp[T core.Float](b BiVec[T]) MVecE[T] {
	n := float64(b.Nrm())
	if n == 0 {
		return MVecE[T]{S: 1}
	}
	s, c := math.Sincos(n)

	return MVecE[T]{S: T(c), B: b.Scale(T(s / n))}
}

// Rotor returns cos(θ/2) − sin(θ/2)·b̂, the rotor turning by θ in the plane b.
func Rotor[T core.Float](b BiVec[T], theta T, opts ...core.Option) (MVecE[T], error) {
	unit, err := b.Normalize(opts...)
	if err != nil {
		return MVecE[T]{}, err
	}

	return Exp(unit.Scale(-theta / 2)), nil
}

// Rotate returns R·v·rev(R) evaluated by the kernel.
func Rotate[T core.Float](v Vec[T], r MVecE[T]) Vec[T] {
	return r.GprVec(v).GprMVecE(r.Rev()).V
}

// RotateBiVec returns R·b·rev(R).
func RotateBiVec[T core.Float](b BiVec[T], r MVecE[T]) BiVec[T] {
	return r.GprBiVec(b).Gpr(r.Rev()).B
}

// RotateMVec rotates every grade of m.
func RotateMVec[T core.Float](m MVec[T], r MVecE[T]) MVec[T] {
	return mvecOf(core.Gpr(alg, core.Gpr(alg, r.mv(), m.mv()), core.Rev(alg, r.mv())))
}

// RotateOpt is the closed form of Rotate for R = s + B, reading B as the
// vector b = (B.X, B.Y, B.Z):
//
//	v' = (s²−|b|²)·v − 2s·(b×v) + 2(b·v)·b
func RotateOpt[T core.Float](v Vec[T], r MVecE[T]) Vec[T] {
	b := Vec[T]{X: r.B.X, Y: r.B.Y, Z: r.B.Z}
	a := r.S*r.S - b.NrmSq()

	return v.Scale(a).Sub(b.Cross(v).Scale(2 * r.S)).Add(b.Scale(2 * b.Dot(v).S))
}

// RotateOptBiVec is RotateOpt for bivectors; b = I·n turns like n.
func RotateOptBiVec[T core.Float](b BiVec[T], r MVecE[T]) BiVec[T] {
	v := RotateOpt(Vec[T]{X: b.X, Y: b.Y, Z: b.Z}, r)

	return BiVec[T]{X: v.X, Y: v.Y, Z: v.Z}
}

// Matrix returns the 3×3 matrix M with M·v = RotateOpt(v, R).
func (m MVecE[T]) Matrix() *matrix.Dense {
	s := float64(m.S)
	bx, by, bz := float64(m.B.X), float64(m.B.Y), float64(m.B.Z)
	a := s*s - bx*bx - by*by - bz*bz

	return matrix.FromValues(3, 3,
		a+2*bx*bx, 2*s*bz+2*bx*by, -2*s*by+2*bx*bz,
		-2*s*bz+2*bx*by, a+2*by*by, 2*s*bx+2*by*bz,
		2*s*by+2*bx*bz, -2*s*bx+2*by*bz, a+2*bz*bz,
	)
}

// Quat returns the quaternion acting like m under q·v·q*.
// The bivector e23 maps to −i, e31 to −j and e12 to −k.
func (m MVecE[T]) Quat() quat.Number {
	return quat.Number{
		Real: float64(m.S),
		Imag: -float64(m.B.X),
		Jmag: -float64(m.B.Y),
		Kmag: -float64(m.B.Z),
	}
}

// RotorFromQuat is the inverse of MVecE.Quat.
func RotorFromQuat[T core.Float](q quat.Number) MVecE[T] {
	return MVecE[T]{S: T(q.Real), B: BiVec[T]{X: T(-q.Imag), Y: T(-q.Jmag), Z: T(-q.Kmag)}}
}

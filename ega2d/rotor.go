// SPDX-License-Identifier: MIT
// Package ega2d: angles, exponentials, rotors and their matrices.

package ega2d

import (
	"math"

	"github.com/Daniel-G-W-Hug/ga-sub005/core"
	"github.com/Daniel-G-W-Hug/ga-sub005/matrix"
)

// Angle returns the unsigned angle between v and w in [0, π].
// Fails with ErrDivisionByZero when either vector has zero length.
func (v Vec[T]) Angle(w Vec[T], opts ...core.Option) (T, error) {
	n := v.Nrm() * w.Nrm()
	if err := core.CheckDivisor("Angle", "ega2d vector", n, opts...); err != nil {
		return 0, err
	}
	c := float64(v.Dot(w).S / n)

	return T(math.Acos(math.Max(-1, math.Min(1, c)))), nil
}

// Exp returns exp(θ·I) = cos θ + sin θ·I for p = θ·I.
func Exp[T core.Float](p PScalar[T]) MVecE[T] {
	s, c := math.Sincos(float64(p.PS))

	return MVecE[T]{S: T(c), PS: T(s)}
}

// Rotor returns cos(θ/2) − sin(θ/2)·Î, the rotor turning by θ in the plane
// of i. With i = e12 and θ > 0 it turns e1 towards e2.
func Rotor[T core.Float](i PScalar[T], theta T, opts ...core.Option) (MVecE[T], error) {
	unit, err := i.Normalize(opts...)
	if err != nil {
		return MVecE[T]{}, err
	}

	return Exp(PScalar[T]{PS: -theta / 2 * unit.PS}), nil
}

// NewRotor is Rotor in the plane e12; it cannot fail.
func NewRotor[T core.Float](theta T) MVecE[T] {
	return Exp(PScalar[T]{PS: -theta / 2})
}

// Rotate returns R·v·rev(R) evaluated by the kernel.
func Rotate[T core.Float](v Vec[T], r MVecE[T]) Vec[T] {
	return r.GprVec(v).GprMVecE(r.Rev())
}

// RotateOpt is the closed form of Rotate:
//
//	x' = (s²−p²)·x + 2sp·y
//	y' = (s²−p²)·y − 2sp·x
//
// for R = s + p·I. Non-unit rotors scale by |R|².
func RotateOpt[T core.Float](v Vec[T], r MVecE[T]) Vec[T] {
	a := r.S*r.S - r.PS*r.PS
	b := 2 * r.S * r.PS

	return Vec[T]{X: a*v.X + b*v.Y, Y: a*v.Y - b*v.X}
}

// RotateMVec rotates every grade of m: R·m·rev(R).
func RotateMVec[T core.Float](m MVec[T], r MVecE[T]) MVec[T] {
	return mvecOf(core.Gpr(alg, core.Gpr(alg, r.mv(), m.mv()), core.Rev(alg, r.mv())))
}

// Matrix returns the 2×2 matrix M with M·(x,y)ᵀ = RotateOpt((x,y), R).
func (m MVecE[T]) Matrix() *matrix.Dense {
	a := float64(m.S*m.S - m.PS*m.PS)
	b := float64(2 * m.S * m.PS)

	return matrix.FromValues(2, 2,
		a, b,
		-b, a,
	)
}

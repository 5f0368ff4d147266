// SPDX-License-Identifier: MIT
// Package pga2dp: conversion of unit motors to and from dual complex numbers.
//
// A dual complex number z = r + dϵ moves the point p as r²·p + 2r·d, which is
// the action of z·(1 + pϵ)·conj(z) in gonum's dualcmplx.

package pga2dp

import (
	"math/cmplx"

	"github.com/Daniel-G-W-Hug/ga-sub005/core"
	"gonum.org/v1/gonum/num/dualcmplx"
)

// DualCmplx returns the dual complex number acting on points like the unit
// motor m: a rotation by r = s + m3·i followed by the translation of the
// origin under m.
func (m MVecU[T]) DualCmplx() dualcmplx.Number {
	m1, m2, m3, s := float64(m.V.X), float64(m.V.Y), float64(m.V.Z), float64(m.PS)
	t := complex(2*(m1*m3+s*m2), 2*(m2*m3-s*m1))
	rotate := dualcmplx.Number{Real: complex(s, m3)}
	displace := dualcmplx.Number{Real: 1, Dual: t / 2}

	return dualcmplx.Mul(displace, rotate)
}

// MotorFromDualCmplx is the inverse of MVecU.DualCmplx. z is scaled to
// |z.Real| = 1 first; a zero real part fails with ErrNotUnitizable (strict mode).
func MotorFromDualCmplx[T core.Float](z dualcmplx.Number, opts ...core.Option) (MVecU[T], error) {
	n := cmplx.Abs(z.Real)
	if err := core.CheckUnitizable("MotorFromDualCmplx", "dual complex number", n, opts...); err != nil {
		return MVecU[T]{}, err
	}
	r := z.Real / complex(n, 0)
	t := 2 * r * z.Dual / complex(n, 0)
	s, m3 := real(r), imag(r)
	tx, ty := real(t), imag(t)

	return MVecU[T]{
		V:  Vec[T]{X: T((m3*tx - s*ty) / 2), Y: T((s*tx + m3*ty) / 2), Z: T(m3)},
		PS: T(s),
	}, nil
}

// SPDX-License-Identifier: MIT
// Package pga3dp: conversion of motors to and from unit dual quaternions.
//
// A unit dual quaternion q = r + dϵ moves the point x through
// q·(1 + xϵ)·dualquat.Conj(q), whose dual part is r·x·r* + t with
// d = t·r/2.

package pga3dp

import (
	"math"

	"github.com/Daniel-G-W-Hug/ga-sub005/core"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

// DualQuat returns the unit dual quaternion acting on points like m. m is
// scaled to unit weight first; a motor at infinity yields the zero value.
func (m MVecE[T]) DualQuat() dualquat.Number {
	c := newMotion(m)
	if c.k == 0 {
		return dualquat.Number{}
	}
	n := math.Sqrt(c.k)
	r := quat.Scale(1/n, quat.Number{
		Real: float64(m.PS),
		Imag: float64(m.B.Vx),
		Jmag: float64(m.B.Vy),
		Kmag: float64(m.B.Vz),
	})
	t := quat.Number{Imag: c.tau[0] / c.k, Jmag: c.tau[1] / c.k, Kmag: c.tau[2] / c.k}

	return dualquat.Number{Real: r, Dual: quat.Scale(0.5, quat.Mul(t, r))}
}

// MotorFromDualQuat is the inverse of MVecE.DualQuat. q is scaled to
// |q.Real| = 1 first; a zero real part fails with ErrNotUnitizable (strict mode).
func MotorFromDualQuat[T core.Float](q dualquat.Number, opts ...core.Option) (MVecE[T], error) {
	n := quat.Abs(q.Real)
	if err := core.CheckUnitizable("MotorFromDualQuat", "dual quaternion", n, opts...); err != nil {
		return MVecE[T]{}, err
	}
	r := quat.Scale(1/n, q.Real)
	t := quat.Scale(2/n, quat.Mul(q.Dual, quat.Conj(r)))
	rot := MVecE[T]{
		B:  BiVec[T]{Vx: T(r.Imag), Vy: T(r.Jmag), Vz: T(r.Kmag)},
		PS: T(r.Real),
	}

	return Translator(T(t.Imag), T(t.Jmag), T(t.Kmag)).Rgpr(rot), nil
}

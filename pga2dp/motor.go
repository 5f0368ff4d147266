// SPDX-License-Identifier: MIT
// Package pga2dp: motors.
//
// A motor M = m1·e1 + m2·e2 + m3·e3 + s·e321 rotates about the point
// (m1, m2, m3) when m3 ≠ 0 and translates otherwise. It acts through the
// regressive sandwich M ⟇ x ⟇ rrev(M); motors compose with Rgpr, the right
// operand acting first.

package pga2dp

import (
	"math"

	"github.com/Daniel-G-W-Hug/ga-sub005/core"
	"github.com/Daniel-G-W-Hug/ga-sub005/matrix"
	"github.com/Daniel-G-W-Hug/ga-sub005/pga"
)

// IdentityMotor returns e321.
func IdentityMotor[T core.Float]() MVecU[T] { return MVecU[T]{PS: 1} }

// Motor returns the motor turning counterclockwise by θ about the point p:
// sin(θ/2)·p + cos(θ/2)·e321 with p unitized.
// Fails with ErrNotUnitizable when p is a direction (strict mode).
func Motor[T core.Float](p Vec[T], theta T, opts ...core.Option) (MVecU[T], error) {
	u, err := p.Unitize(opts...)
	if err != nil {
		return MVecU[T]{}, err
	}
	s, c := math.Sincos(float64(theta) / 2)

	return MVecU[T]{V: u.Scale(T(s)), PS: T(c)}, nil
}

// Translator returns the motor moving every point by (tx, ty).
func Translator[T core.Float](tx, ty T) MVecU[T] {
	return MVecU[T]{V: Vec[T]{X: -ty / 2, Y: tx / 2}, PS: 1}
}

// MotorFromLines returns l2 ⟇ l1: reflecting in l1 and then in l2. For
// intersecting lines it turns by twice the angle from l1 to l2 about their
// meet; for parallel lines it translates by twice their distance.
func MotorFromLines[T core.Float](l1, l2 BiVec[T]) MVecU[T] { return l2.Rgpr(l1) }

// Unitize returns m scaled to unit weight norm √(m3² + s²).
func (m MVecU[T]) Unitize(opts ...core.Option) (MVecU[T], error) {
	u, err := pga.Unitize(alg, "pga2dp motor", m.mv(), opts...)
	if err != nil {
		return MVecU[T]{}, err
	}

	return mvecUOf(u), nil
}

// Move applies m to the point p through the kernel sandwich.
func Move[T core.Float](p Vec[T], m MVecU[T]) Vec[T] { return vecOf(pga.Move(alg, p.mv(), m.mv())) }

// MoveBiVec applies m to the line l through the kernel sandwich.
func MoveBiVec[T core.Float](l BiVec[T], m MVecU[T]) BiVec[T] {
	return bivecOf(pga.Move(alg, l.mv(), m.mv()))
}

// MoveOpt is the closed form of Move:
//
//	x' = (s²−m3²)·x − 2s·m3·y + 2(m1·m3 + s·m2)·w
//	y' = 2s·m3·x + (s²−m3²)·y + 2(m2·m3 − s·m1)·w
//	w' = (s²+m3²)·w
func MoveOpt[T core.Float](p Vec[T], m MVecU[T]) Vec[T] {
	m1, m2, m3, s := m.V.X, m.V.Y, m.V.Z, m.PS
	c := s*s - m3*m3
	k := 2 * s * m3

	return Vec[T]{
		X: c*p.X - k*p.Y + 2*(m1*m3+s*m2)*p.Z,
		Y: k*p.X + c*p.Y + 2*(m2*m3-s*m1)*p.Z,
		Z: (s*s + m3*m3) * p.Z,
	}
}

// MoveOptBiVec is the closed form of MoveBiVec:
//
//	X' = (s²−m3²)·X − 2s·m3·Y
//	Y' = 2s·m3·X + (s²−m3²)·Y
//	Z' = 2(m1·m3 − s·m2)·X + 2(m2·m3 + s·m1)·Y + (s²+m3²)·Z
func MoveOptBiVec[T core.Float](l BiVec[T], m MVecU[T]) BiVec[T] {
	m1, m2, m3, s := m.V.X, m.V.Y, m.V.Z, m.PS
	c := s*s - m3*m3
	k := 2 * s * m3

	return BiVec[T]{
		X: c*l.X - k*l.Y,
		Y: k*l.X + c*l.Y,
		Z: 2*(m1*m3-s*m2)*l.X + 2*(m2*m3+s*m1)*l.Y + (s*s+m3*m3)*l.Z,
	}
}

// Matrix returns the 3×3 homogeneous matrix A with A·(x, y, w) = MoveOpt(p, m).
func (m MVecU[T]) Matrix() *matrix.Dense {
	m1, m2, m3, s := float64(m.V.X), float64(m.V.Y), float64(m.V.Z), float64(m.PS)
	c := s*s - m3*m3
	k := 2 * s * m3

	return matrix.FromValues(3, 3,
		c, -k, 2*(m1*m3+s*m2),
		k, c, 2*(m2*m3-s*m1),
		0, 0, s*s+m3*m3,
	)
}

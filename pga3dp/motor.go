// SPDX-License-Identifier: MIT
// Package pga3dp: motors.
//
// A motor M = s + B + p·e1234 acts on points, lines and planes through the
// regressive sandwich M ⟇ x ⟇ rrev(M). Motors compose with Rgpr, the right
// operand acting first; the identity motor is 𝟙.

package pga3dp

import (
	"math"

	"github.com/Daniel-G-W-Hug/ga-sub005/core"
	"github.com/Daniel-G-W-Hug/ga-sub005/matrix"
	"github.com/Daniel-G-W-Hug/ga-sub005/pga"
)

// IdentityMotor returns e1234.
func IdentityMotor[T core.Float]() MVecE[T] { return MVecE[T]{PS: 1} }

// Motor returns the motor turning by θ about l, counterclockwise when looking
// against the direction of l: sin(θ/2)·l + cos(θ/2)·e1234 with l unitized.
// Fails with ErrNotUnitizable when l lies at infinity (strict mode).
func Motor[T core.Float](l BiVec[T], theta T, opts ...core.Option) (MVecE[T], error) {
	u, err := l.Unitize(opts...)
	if err != nil {
		return MVecE[T]{}, err
	}
	s, c := math.Sincos(float64(theta) / 2)

	return MVecE[T]{B: u.Scale(T(s)), PS: T(c)}, nil
}

// Translator returns the motor moving every point by (tx, ty, tz).
func Translator[T core.Float](tx, ty, tz T) MVecE[T] {
	return MVecE[T]{B: BiVec[T]{Mx: tx / 2, My: ty / 2, Mz: tz / 2}, PS: 1}
}

// MotorFromPlanes returns t2 ⟇ t1: reflecting in t1 and then in t2. For
// intersecting planes it turns by twice their angle about the meet; for
// parallel planes it translates by twice their distance.
func MotorFromPlanes[T core.Float](t1, t2 TriVec[T]) MVecE[T] { return t2.Rgpr(t1) }

// Unitize returns m scaled to unit weight norm √(V·V + p²).
func (m MVecE[T]) Unitize(opts ...core.Option) (MVecE[T], error) {
	u, err := pga.Unitize(alg, "pga3dp motor", m.mv(), opts...)
	if err != nil {
		return MVecE[T]{}, err
	}

	return mvecEOf(u), nil
}

// Move applies m to the point p through the kernel sandwich.
func Move[T core.Float](p Vec[T], m MVecE[T]) Vec[T] { return vecOf(pga.Move(alg, p.mv(), m.mv())) }

// MoveBiVec applies m to the line l through the kernel sandwich.
func MoveBiVec[T core.Float](l BiVec[T], m MVecE[T]) BiVec[T] {
	return bivecOf(pga.Move(alg, l.mv(), m.mv()))
}

// MoveTriVec applies m to the plane t through the kernel sandwich.
func MoveTriVec[T core.Float](t TriVec[T], m MVecE[T]) TriVec[T] {
	return trivecOf(pga.Move(alg, t.mv(), m.mv()))
}

// motion holds the closed-form coefficients of a motor m = (s, V, M, p):
//
//	R = (p² − V·V)·I + 2V·Vᵀ + 2p·[V]×
//	τ = 2(p·M + V×M − s·V)
//	k = p² + V·V
//
// where [u]× is the cross product matrix of u.
type motion struct {
	r   [3][3]float64
	tau [3]float64
	k   float64
}

func newMotion[T core.Float](m MVecE[T]) motion {
	s, p := float64(m.S), float64(m.PS)
	vx, vy, vz := float64(m.B.Vx), float64(m.B.Vy), float64(m.B.Vz)
	mx, my, mz := float64(m.B.Mx), float64(m.B.My), float64(m.B.Mz)
	vv := vx*vx + vy*vy + vz*vz
	a := p*p - vv

	return motion{
		r: [3][3]float64{
			{a + 2*vx*vx, 2*vx*vy - 2*p*vz, 2*vx*vz + 2*p*vy},
			{2*vy*vx + 2*p*vz, a + 2*vy*vy, 2*vy*vz - 2*p*vx},
			{2*vz*vx - 2*p*vy, 2*vz*vy + 2*p*vx, a + 2*vz*vz},
		},
		tau: [3]float64{
			2 * (p*mx + vy*mz - vz*my - s*vx),
			2 * (p*my + vz*mx - vx*mz - s*vy),
			2 * (p*mz + vx*my - vy*mx - s*vz),
		},
		k: p*p + vv,
	}
}

func (c *motion) rot(x, y, z float64) (float64, float64, float64) {
	r := &c.r

	return r[0][0]*x + r[0][1]*y + r[0][2]*z,
		r[1][0]*x + r[1][1]*y + r[1][2]*z,
		r[2][0]*x + r[2][1]*y + r[2][2]*z
}

// MoveOpt is the closed form of Move: x' = R·x + τ·w, w' = k·w.
func MoveOpt[T core.Float](p Vec[T], m MVecE[T]) Vec[T] {
	c := newMotion(m)
	w := float64(p.W)
	x, y, z := c.rot(float64(p.X), float64(p.Y), float64(p.Z))

	return Vec[T]{
		X: T(x + c.tau[0]*w),
		Y: T(y + c.tau[1]*w),
		Z: T(z + c.tau[2]*w),
		W: T(c.k * w),
	}
}

// MoveOptTriVec is the closed form of MoveTriVec:
//
//	n' = R·n
//	W' = k·W − 2(p·M − V×M − s·V)·n
func MoveOptTriVec[T core.Float](t TriVec[T], m MVecE[T]) TriVec[T] {
	c := newMotion(m)
	s, p := float64(m.S), float64(m.PS)
	vx, vy, vz := float64(m.B.Vx), float64(m.B.Vy), float64(m.B.Vz)
	mx, my, mz := float64(m.B.Mx), float64(m.B.My), float64(m.B.Mz)
	nx, ny, nz := float64(t.X), float64(t.Y), float64(t.Z)
	x, y, z := c.rot(nx, ny, nz)
	ux := p*mx - (vy*mz - vz*my) - s*vx
	uy := p*my - (vz*mx - vx*mz) - s*vy
	uz := p*mz - (vx*my - vy*mx) - s*vz

	return TriVec[T]{
		X: T(x),
		Y: T(y),
		Z: T(z),
		W: T(c.k*float64(t.W) - 2*(ux*nx+uy*ny+uz*nz)),
	}
}

// MoveOptBiVec is the closed form of MoveBiVec:
//
//	V' = R·V_l
//	M' = R·M_l + C·V_l
//	C  = 2((s·p − V·M)·I + V·Mᵀ + M·Vᵀ + s·[V]× + p·[M]×)
func MoveOptBiVec[T core.Float](l BiVec[T], m MVecE[T]) BiVec[T] {
	c := newMotion(m)
	s, p := float64(m.S), float64(m.PS)
	vx, vy, vz := float64(m.B.Vx), float64(m.B.Vy), float64(m.B.Vz)
	mx, my, mz := float64(m.B.Mx), float64(m.B.My), float64(m.B.Mz)
	d := s*p - (vx*mx + vy*my + vz*mz)
	cm := [3][3]float64{
		{2 * (d + 2*vx*mx), 2 * (vx*my + mx*vy - s*vz - p*mz), 2 * (vx*mz + mx*vz + s*vy + p*my)},
		{2 * (vy*mx + my*vx + s*vz + p*mz), 2 * (d + 2*vy*my), 2 * (vy*mz + my*vz - s*vx - p*mx)},
		{2 * (vz*mx + mz*vx - s*vy - p*my), 2 * (vz*my + mz*vy + s*vx + p*mx), 2 * (d + 2*vz*mz)},
	}
	lvx, lvy, lvz := float64(l.Vx), float64(l.Vy), float64(l.Vz)
	ax, ay, az := c.rot(lvx, lvy, lvz)
	bx, by, bz := c.rot(float64(l.Mx), float64(l.My), float64(l.Mz))

	return BiVec[T]{
		Vx: T(ax),
		Vy: T(ay),
		Vz: T(az),
		Mx: T(bx + cm[0][0]*lvx + cm[0][1]*lvy + cm[0][2]*lvz),
		My: T(by + cm[1][0]*lvx + cm[1][1]*lvy + cm[1][2]*lvz),
		Mz: T(bz + cm[2][0]*lvx + cm[2][1]*lvy + cm[2][2]*lvz),
	}
}

// Matrix returns the 4×4 homogeneous matrix A with A·(x, y, z, w) = MoveOpt(p, m).
func (m MVecE[T]) Matrix() *matrix.Dense {
	c := newMotion(m)
	r := &c.r

	return matrix.FromValues(4, 4,
		r[0][0], r[0][1], r[0][2], c.tau[0],
		r[1][0], r[1][1], r[1][2], c.tau[1],
		r[2][0], r[2][1], r[2][2], c.tau[2],
		0, 0, 0, c.k,
	)
}

// SPDX-License-Identifier: MIT
// Package pga3dp: constructors and accessors of points, lines and planes.

package pga3dp

import (
	"github.com/Daniel-G-W-Hug/ga-sub005/core"
	"github.com/Daniel-G-W-Hug/ga-sub005/ega3d"
	"github.com/Daniel-G-W-Hug/ga-sub005/pga"
)

// Point returns the unitized point (x, y, z): x·e1 + y·e2 + z·e3 + e4.
func Point[T core.Float](x, y, z T) Vec[T] { return Vec[T]{X: x, Y: y, Z: z, W: 1} }

// PointFrom lifts a Euclidean vector to the unitized point it addresses.
func PointFrom[T core.Float](p ega3d.Vec[T]) Vec[T] { return Vec[T]{X: p.X, Y: p.Y, Z: p.Z, W: 1} }

// Direction returns the point at infinity in direction (x, y, z).
func Direction[T core.Float](x, y, z T) Vec[T] { return Vec[T]{X: x, Y: y, Z: z} }

// Euclid returns the bulk (x, y, z) of v; for a unitized point these are
// its coordinates.
func (v Vec[T]) Euclid() ega3d.Vec[T] { return ega3d.Vec[T]{X: v.X, Y: v.Y, Z: v.Z} }

// Line returns the line with direction dir and moment m. A line through the
// point p has m = p × dir; dir and m must be perpendicular.
func Line[T core.Float](dir, m ega3d.Vec[T]) BiVec[T] {
	return BiVec[T]{Vx: dir.X, Vy: dir.Y, Vz: dir.Z, Mx: m.X, My: m.Y, Mz: m.Z}
}

// LineThrough returns the line through the Euclidean point p with direction dir.
func LineThrough[T core.Float](p, dir ega3d.Vec[T]) BiVec[T] { return Line(dir, p.Cross(dir)) }

// LineFromPoints returns the line through p and q oriented from p to q.
func LineFromPoints[T core.Float](p, q Vec[T]) BiVec[T] { return p.Wdg(q) }

// Direction returns the direction V of l.
func (l BiVec[T]) Direction() ega3d.Vec[T] { return ega3d.Vec[T]{X: l.Vx, Y: l.Vy, Z: l.Vz} }

// Moment returns the moment M of l.
func (l BiVec[T]) Moment() ega3d.Vec[T] { return ega3d.Vec[T]{X: l.Mx, Y: l.My, Z: l.Mz} }

// Plane returns the plane nx·x + ny·y + nz·z + d = 0.
func Plane[T core.Float](nx, ny, nz, d T) TriVec[T] { return TriVec[T]{X: nx, Y: ny, Z: nz, W: d} }

// PlaneFromPoints returns the plane p∧q∧r; its normal follows the
// right-hand rule over p → q → r.
func PlaneFromPoints[T core.Float](p, q, r Vec[T]) TriVec[T] { return p.Wdg(q).WdgVec(r) }

// Normal returns the normal (X, Y, Z) of t.
func (t TriVec[T]) Normal() ega3d.Vec[T] { return ega3d.Vec[T]{X: t.X, Y: t.Y, Z: t.Z} }

// Horizon returns the plane at infinity rcmpl(e4) = e321.
func Horizon[T core.Float]() TriVec[T] { return trivecOf(pga.Horizon[T](alg)) }

// Support returns the point of l closest to the origin, (v×m, v·v).
func (l BiVec[T]) Support() Vec[T] {
	v, m := l.Direction(), l.Moment()
	s := v.Cross(m)

	return Vec[T]{X: s.X, Y: s.Y, Z: s.Z, W: v.Dot(v).S}
}

// Support returns the point of t closest to the origin, (−W·n, n·n).
func (t TriVec[T]) Support() Vec[T] {
	n := t.Normal()

	return Vec[T]{X: -t.W * n.X, Y: -t.W * n.Y, Z: -t.W * n.Z, W: n.Dot(n).S}
}

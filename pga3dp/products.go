// SPDX-License-Identifier: MIT
// Package pga3dp: products between grade combinations.
//
// Joins of points and lines and meets of planes and lines are written out;
// every other combination runs through the kernel, which drops degenerate
// terms exactly.

package pga3dp

import "github.com/Daniel-G-W-Hug/ga-sub005/core"

// Dot returns the bulk scalar product v·w = vx·wx + vy·wy + vz·wz.
func (v Vec[T]) Dot(w Vec[T]) Scalar[T] { return Scalar[T]{S: v.X*w.X + v.Y*w.Y + v.Z*w.Z} }

// Rdot returns the antiscalar product vw·ww·𝟙.
func (v Vec[T]) Rdot(w Vec[T]) PScalar[T] { return PScalar[T]{PS: core.Rdot(alg, v.mv(), w.mv())} }

// Wdg returns the line v∧w through both points, directed from v to w.
func (v Vec[T]) Wdg(w Vec[T]) BiVec[T] {
	return BiVec[T]{
		Vx: v.W*w.X - v.X*w.W,
		Vy: v.W*w.Y - v.Y*w.W,
		Vz: v.W*w.Z - v.Z*w.W,
		Mx: v.Y*w.Z - v.Z*w.Y,
		My: v.Z*w.X - v.X*w.Z,
		Mz: v.X*w.Y - v.Y*w.X,
	}
}

// Join is Wdg.
func (v Vec[T]) Join(w Vec[T]) BiVec[T] { return v.Wdg(w) }

// WdgBiVec returns the plane v∧l through the point and the line; it
// vanishes when v lies on l.
func (v Vec[T]) WdgBiVec(l BiVec[T]) TriVec[T] { return l.WdgVec(v) }

// JoinLine is WdgBiVec.
func (v Vec[T]) JoinLine(l BiVec[T]) TriVec[T] { return l.WdgVec(v) }

// WdgTriVec returns v∧t; it vanishes when v lies in t.
func (v Vec[T]) WdgTriVec(t TriVec[T]) PScalar[T] { return pscalarOf(core.Wdg(alg, v.mv(), t.mv())) }

// RwdgTriVec returns v∨t = x·X + y·Y + z·Z + w·W, the signed offset of v
// from t scaled by both weights.
func (v Vec[T]) RwdgTriVec(t TriVec[T]) Scalar[T] { return scalarOf(core.Rwdg(alg, v.mv(), t.mv())) }

// Gpr returns v·w.
func (v Vec[T]) Gpr(w Vec[T]) MVecE[T] { return mvecEOf(core.Gpr(alg, v.mv(), w.mv())) }

// GprBiVec returns v·l.
func (v Vec[T]) GprBiVec(l BiVec[T]) MVecU[T] { return mvecUOf(core.Gpr(alg, v.mv(), l.mv())) }

// GprTriVec returns v·t.
func (v Vec[T]) GprTriVec(t TriVec[T]) MVecE[T] { return mvecEOf(core.Gpr(alg, v.mv(), t.mv())) }

// Rgpr returns v⟇w.
func (v Vec[T]) Rgpr(w Vec[T]) MVecE[T] { return mvecEOf(core.Rgpr(alg, v.mv(), w.mv())) }

// Dot returns the bulk scalar product of the moments, ml·mm.
func (l BiVec[T]) Dot(m BiVec[T]) Scalar[T] { return Scalar[T]{S: core.Dot(alg, l.mv(), m.mv())} }

// Rdot returns the weight product of the directions.
func (l BiVec[T]) Rdot(m BiVec[T]) PScalar[T] { return PScalar[T]{PS: core.Rdot(alg, l.mv(), m.mv())} }

// Wdg returns l∧m; it vanishes when the lines are coplanar.
func (l BiVec[T]) Wdg(m BiVec[T]) PScalar[T] { return pscalarOf(core.Wdg(alg, l.mv(), m.mv())) }

// Rwdg returns l∨m = −(vl·mm + ml·vm); it vanishes when the lines are coplanar.
func (l BiVec[T]) Rwdg(m BiVec[T]) Scalar[T] { return scalarOf(core.Rwdg(alg, l.mv(), m.mv())) }

// WdgVec returns the plane l∧p = (v×p + w·m, −p·m) through l and p.
func (l BiVec[T]) WdgVec(p Vec[T]) TriVec[T] {
	return TriVec[T]{
		X: l.Vy*p.Z - l.Vz*p.Y + p.W*l.Mx,
		Y: l.Vz*p.X - l.Vx*p.Z + p.W*l.My,
		Z: l.Vx*p.Y - l.Vy*p.X + p.W*l.Mz,
		W: -(p.X*l.Mx + p.Y*l.My + p.Z*l.Mz),
	}
}

// JoinPoint is WdgVec.
func (l BiVec[T]) JoinPoint(p Vec[T]) TriVec[T] { return l.WdgVec(p) }

// RwdgTriVec returns the point l∨t = (m×n + W·v, −v·n) where l pierces t;
// it is a direction for a line parallel to t and zero for a line in t.
func (l BiVec[T]) RwdgTriVec(t TriVec[T]) Vec[T] {
	return Vec[T]{
		X: l.My*t.Z - l.Mz*t.Y + t.W*l.Vx,
		Y: l.Mz*t.X - l.Mx*t.Z + t.W*l.Vy,
		Z: l.Mx*t.Y - l.My*t.X + t.W*l.Vz,
		W: -(l.Vx*t.X + l.Vy*t.Y + l.Vz*t.Z),
	}
}

// MeetPlane is RwdgTriVec.
func (l BiVec[T]) MeetPlane(t TriVec[T]) Vec[T] { return l.RwdgTriVec(t) }

// Gpr returns l·m.
func (l BiVec[T]) Gpr(m BiVec[T]) MVecE[T] { return mvecEOf(core.Gpr(alg, l.mv(), m.mv())) }

// GprVec returns l·v.
func (l BiVec[T]) GprVec(v Vec[T]) MVecU[T] { return mvecUOf(core.Gpr(alg, l.mv(), v.mv())) }

// GprTriVec returns l·t.
func (l BiVec[T]) GprTriVec(t TriVec[T]) MVecU[T] { return mvecUOf(core.Gpr(alg, l.mv(), t.mv())) }

// Rgpr returns l⟇m.
func (l BiVec[T]) Rgpr(m BiVec[T]) MVecE[T] { return mvecEOf(core.Rgpr(alg, l.mv(), m.mv())) }

// Dot returns the bulk scalar product tW·uW.
func (t TriVec[T]) Dot(u TriVec[T]) Scalar[T] { return Scalar[T]{S: core.Dot(alg, t.mv(), u.mv())} }

// Rdot returns the weight product of the normals, (nt·nu)·𝟙.
func (t TriVec[T]) Rdot(u TriVec[T]) PScalar[T] { return PScalar[T]{PS: core.Rdot(alg, t.mv(), u.mv())} }

// Rwdg returns the line t∨u where both planes intersect; it lies at infinity
// for parallel planes.
func (t TriVec[T]) Rwdg(u TriVec[T]) BiVec[T] {
	return BiVec[T]{
		Vx: u.Y*t.Z - u.Z*t.Y,
		Vy: u.Z*t.X - u.X*t.Z,
		Vz: u.X*t.Y - u.Y*t.X,
		Mx: u.W*t.X - t.W*u.X,
		My: u.W*t.Y - t.W*u.Y,
		Mz: u.W*t.Z - t.W*u.Z,
	}
}

// Meet is Rwdg.
func (t TriVec[T]) Meet(u TriVec[T]) BiVec[T] { return t.Rwdg(u) }

// RwdgBiVec returns t∨l, the same point as l∨t.
func (t TriVec[T]) RwdgBiVec(l BiVec[T]) Vec[T] { return l.RwdgTriVec(t) }

// MeetLine is RwdgBiVec.
func (t TriVec[T]) MeetLine(l BiVec[T]) Vec[T] { return l.RwdgTriVec(t) }

// RwdgVec returns t∨v = −(v∨t).
func (t TriVec[T]) RwdgVec(v Vec[T]) Scalar[T] { return scalarOf(core.Rwdg(alg, t.mv(), v.mv())) }

// WdgVec returns t∧v.
func (t TriVec[T]) WdgVec(v Vec[T]) PScalar[T] { return pscalarOf(core.Wdg(alg, t.mv(), v.mv())) }

// Gpr returns t·u.
func (t TriVec[T]) Gpr(u TriVec[T]) MVecE[T] { return mvecEOf(core.Gpr(alg, t.mv(), u.mv())) }

// GprVec returns t·v.
func (t TriVec[T]) GprVec(v Vec[T]) MVecE[T] { return mvecEOf(core.Gpr(alg, t.mv(), v.mv())) }

// GprBiVec returns t·l.
func (t TriVec[T]) GprBiVec(l BiVec[T]) MVecU[T] { return mvecUOf(core.Gpr(alg, t.mv(), l.mv())) }

// Rgpr returns t⟇u, the motor of reflecting in u and then in t.
func (t TriVec[T]) Rgpr(u TriVec[T]) MVecE[T] { return mvecEOf(core.Rgpr(alg, t.mv(), u.mv())) }

// Dot returns p·q; the antiscalar is null, so it is always 0.
func (p PScalar[T]) Dot(q PScalar[T]) Scalar[T] { return Scalar[T]{S: core.Dot(alg, p.mv(), q.mv())} }

// Rdot returns the antiscalar product p.PS·q.PS·𝟙.
func (p PScalar[T]) Rdot(q PScalar[T]) PScalar[T] {
	return PScalar[T]{PS: core.Rdot(alg, p.mv(), q.mv())}
}

// Wdg returns p∧q, always the zero scalar.
func (p PScalar[T]) Wdg(q PScalar[T]) Scalar[T] { return scalarOf(core.Wdg(alg, p.mv(), q.mv())) }

// Gpr returns p·q = 0.
func (p PScalar[T]) Gpr(q PScalar[T]) Scalar[T] { return scalarOf(core.Gpr(alg, p.mv(), q.mv())) }

// Rgpr returns p⟇q.
func (p PScalar[T]) Rgpr(q PScalar[T]) PScalar[T] { return pscalarOf(core.Rgpr(alg, p.mv(), q.mv())) }

// Gpr returns m·o.
func (m MVecE[T]) Gpr(o MVecE[T]) MVecE[T] { return mvecEOf(core.Gpr(alg, m.mv(), o.mv())) }

// Rgpr returns m⟇o; motors compose this way, the right operand acting first.
func (m MVecE[T]) Rgpr(o MVecE[T]) MVecE[T] { return mvecEOf(core.Rgpr(alg, m.mv(), o.mv())) }

// Gpr returns m·o.
func (m MVecU[T]) Gpr(o MVecU[T]) MVecE[T] { return mvecEOf(core.Gpr(alg, m.mv(), o.mv())) }

// Rgpr returns m⟇o.
func (m MVecU[T]) Rgpr(o MVecU[T]) MVecE[T] { return mvecEOf(core.Rgpr(alg, m.mv(), o.mv())) }

// Gpr returns m·o.
func (m MVec[T]) Gpr(o MVec[T]) MVec[T] { return mvecOf(core.Gpr(alg, m.mv(), o.mv())) }

// Rgpr returns m⟇o.
func (m MVec[T]) Rgpr(o MVec[T]) MVec[T] { return mvecOf(core.Rgpr(alg, m.mv(), o.mv())) }

// Wdg returns m∧o.
func (m MVec[T]) Wdg(o MVec[T]) MVec[T] { return mvecOf(core.Wdg(alg, m.mv(), o.mv())) }

// Rwdg returns m∨o.
func (m MVec[T]) Rwdg(o MVec[T]) MVec[T] { return mvecOf(core.Rwdg(alg, m.mv(), o.mv())) }

// Dot returns the scalar product.
func (m MVec[T]) Dot(o MVec[T]) Scalar[T] { return Scalar[T]{S: core.Dot(alg, m.mv(), o.mv())} }

// Rdot returns the antiscalar product.
func (m MVec[T]) Rdot(o MVec[T]) PScalar[T] { return PScalar[T]{PS: core.Rdot(alg, m.mv(), o.mv())} }

// Cmt returns ½(m·o − o·m).
func (m MVec[T]) Cmt(o MVec[T]) MVec[T] { return mvecOf(core.Cmt(alg, m.mv(), o.mv())) }

// Rcmt returns ½(m⟇o − o⟇m).
func (m MVec[T]) Rcmt(o MVec[T]) MVec[T] { return mvecOf(core.Rcmt(alg, m.mv(), o.mv())) }

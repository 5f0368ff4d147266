// SPDX-License-Identifier: MIT
// Package pga2dp: products between grade combinations.
//
// The wedge of two points is written out (it is the join); every other
// combination runs through the kernel, which drops degenerate terms exactly.

package pga2dp

import "github.com/Daniel-G-W-Hug/ga-sub005/core"

// Dot returns the bulk scalar product v·w = vx·wx + vy·wy.
func (v Vec[T]) Dot(w Vec[T]) Scalar[T] { return Scalar[T]{S: v.X*w.X + v.Y*w.Y} }

// Rdot returns the antiscalar product, the dot of the weights: vz·wz·𝟙.
func (v Vec[T]) Rdot(w Vec[T]) PScalar[T] { return PScalar[T]{PS: core.Rdot(alg, v.mv(), w.mv())} }

// Wdg returns the line v∧w through both points.
func (v Vec[T]) Wdg(w Vec[T]) BiVec[T] {
	return BiVec[T]{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Join is Wdg.
func (v Vec[T]) Join(w Vec[T]) BiVec[T] { return v.Wdg(w) }

// WdgBiVec returns v∧l; it vanishes when v lies on l.
func (v Vec[T]) WdgBiVec(l BiVec[T]) PScalar[T] { return pscalarOf(core.Wdg(alg, v.mv(), l.mv())) }

// RwdgBiVec returns v∨l; it vanishes when v lies on l.
func (v Vec[T]) RwdgBiVec(l BiVec[T]) Scalar[T] { return scalarOf(core.Rwdg(alg, v.mv(), l.mv())) }

// Gpr returns v·w.
func (v Vec[T]) Gpr(w Vec[T]) MVecE[T] { return mvecEOf(core.Gpr(alg, v.mv(), w.mv())) }

// GprBiVec returns v·l.
func (v Vec[T]) GprBiVec(l BiVec[T]) MVecU[T] { return mvecUOf(core.Gpr(alg, v.mv(), l.mv())) }

// Rgpr returns v⟇w, a motor translating along the perpendicular of v and w.
func (v Vec[T]) Rgpr(w Vec[T]) MVecU[T] { return mvecUOf(core.Rgpr(alg, v.mv(), w.mv())) }

// Dot returns the bulk scalar product l·m = lz·mz.
func (l BiVec[T]) Dot(m BiVec[T]) Scalar[T] { return Scalar[T]{S: core.Dot(alg, l.mv(), m.mv())} }

// Rdot returns the weight product (lx·mx + ly·my)·𝟙.
func (l BiVec[T]) Rdot(m BiVec[T]) PScalar[T] { return PScalar[T]{PS: core.Rdot(alg, l.mv(), m.mv())} }

// Rwdg returns the intersection point l∨m; it is a direction for parallel lines.
func (l BiVec[T]) Rwdg(m BiVec[T]) Vec[T] { return vecOf(core.Rwdg(alg, l.mv(), m.mv())) }

// Meet is Rwdg.
func (l BiVec[T]) Meet(m BiVec[T]) Vec[T] { return l.Rwdg(m) }

// WdgVec returns l∧v.
func (l BiVec[T]) WdgVec(v Vec[T]) PScalar[T] { return pscalarOf(core.Wdg(alg, l.mv(), v.mv())) }

// RwdgVec returns l∨v.
func (l BiVec[T]) RwdgVec(v Vec[T]) Scalar[T] { return scalarOf(core.Rwdg(alg, l.mv(), v.mv())) }

// Gpr returns l·m.
func (l BiVec[T]) Gpr(m BiVec[T]) MVecE[T] { return mvecEOf(core.Gpr(alg, l.mv(), m.mv())) }

// GprVec returns l·v.
func (l BiVec[T]) GprVec(v Vec[T]) MVecU[T] { return mvecUOf(core.Gpr(alg, l.mv(), v.mv())) }

// Rgpr returns l⟇m, the motor of reflecting in m and then in l.
func (l BiVec[T]) Rgpr(m BiVec[T]) MVecU[T] { return mvecUOf(core.Rgpr(alg, l.mv(), m.mv())) }

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
func (m MVecU[T]) Rgpr(o MVecU[T]) MVecU[T] { return mvecUOf(core.Rgpr(alg, m.mv(), o.mv())) }

// Gpr returns m·o.
func (m MVecU[T]) Gpr(o MVecU[T]) MVecE[T] { return mvecEOf(core.Gpr(alg, m.mv(), o.mv())) }

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

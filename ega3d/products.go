// SPDX-License-Identifier: MIT
// Package ega3d: products between grade combinations.
//
// Vec·Vec and Vec∧Vec are written out; the cross product is their Euclidean
// special case. Every other combination runs through the kernel.

package ega3d

import "github.com/Daniel-G-W-Hug/ga-sub005/core"

// Dot returns the scalar product v·w.
func (v Vec[T]) Dot(w Vec[T]) Scalar[T] { return Scalar[T]{S: v.X*w.X + v.Y*w.Y + v.Z*w.Z} }

// Wdg returns the outer product v∧w.
func (v Vec[T]) Wdg(w Vec[T]) BiVec[T] {
	return BiVec[T]{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Cross returns v×w, the vector with the components of v∧w.
func (v Vec[T]) Cross(w Vec[T]) Vec[T] {
	b := v.Wdg(w)

	return Vec[T]{X: b.X, Y: b.Y, Z: b.Z}
}

// Gpr returns v·w = dot(v,w) + wdg(v,w).
func (v Vec[T]) Gpr(w Vec[T]) MVecE[T] { return MVecE[T]{S: v.Dot(w).S, B: v.Wdg(w)} }

// WdgBiVec returns v∧b.
func (v Vec[T]) WdgBiVec(b BiVec[T]) PScalar[T] { return PScalar[T]{PS: v.X*b.X + v.Y*b.Y + v.Z*b.Z} }

// GprBiVec returns v·b.
func (v Vec[T]) GprBiVec(b BiVec[T]) MVecU[T] { return mvecUOf(core.Gpr(alg, v.mv(), b.mv())) }

// GprPScalar returns v·p.
func (v Vec[T]) GprPScalar(p PScalar[T]) BiVec[T] { return bivecOf(core.Gpr(alg, v.mv(), p.mv())) }

// GprMVecE returns v·m.
func (v Vec[T]) GprMVecE(m MVecE[T]) MVecU[T] { return mvecUOf(core.Gpr(alg, v.mv(), m.mv())) }

// GprMVecU returns v·m.
func (v Vec[T]) GprMVecU(m MVecU[T]) MVecE[T] { return mvecEOf(core.Gpr(alg, v.mv(), m.mv())) }

// GprMVec returns v·m.
func (v Vec[T]) GprMVec(m MVec[T]) MVec[T] { return mvecOf(core.Gpr(alg, v.mv(), m.mv())) }

// Cmt returns the commutator product ½(v·w − w·v) = v∧w.
func (v Vec[T]) Cmt(w Vec[T]) BiVec[T] { return v.Wdg(w) }

// Dot returns the scalar product b·c.
func (b BiVec[T]) Dot(c BiVec[T]) Scalar[T] { return Scalar[T]{S: core.Dot(alg, b.mv(), c.mv())} }

// WdgVec returns b∧v.
func (b BiVec[T]) WdgVec(v Vec[T]) PScalar[T] { return v.WdgBiVec(b) }

// Gpr returns b·c.
func (b BiVec[T]) Gpr(c BiVec[T]) MVecE[T] { return mvecEOf(core.Gpr(alg, b.mv(), c.mv())) }

// GprVec returns b·v.
func (b BiVec[T]) GprVec(v Vec[T]) MVecU[T] { return mvecUOf(core.Gpr(alg, b.mv(), v.mv())) }

// GprPScalar returns b·p.
func (b BiVec[T]) GprPScalar(p PScalar[T]) Vec[T] { return vecOf(core.Gpr(alg, b.mv(), p.mv())) }

// GprMVecE returns b·m.
func (b BiVec[T]) GprMVecE(m MVecE[T]) MVecE[T] { return mvecEOf(core.Gpr(alg, b.mv(), m.mv())) }

// Cmt returns ½(b·c − c·b), the bivector part of b·c.
func (b BiVec[T]) Cmt(c BiVec[T]) BiVec[T] { return bivecOf(core.Cmt(alg, b.mv(), c.mv())) }

// Dot returns p·q.
func (p PScalar[T]) Dot(q PScalar[T]) Scalar[T] { return Scalar[T]{S: core.Dot(alg, p.mv(), q.mv())} }

// Gpr returns p·q; I² = −1.
func (p PScalar[T]) Gpr(q PScalar[T]) Scalar[T] { return scalarOf(core.Gpr(alg, p.mv(), q.mv())) }

// GprVec returns p·v.
func (p PScalar[T]) GprVec(v Vec[T]) BiVec[T] { return bivecOf(core.Gpr(alg, p.mv(), v.mv())) }

// GprBiVec returns p·b.
func (p PScalar[T]) GprBiVec(b BiVec[T]) Vec[T] { return vecOf(core.Gpr(alg, p.mv(), b.mv())) }

// GprMVec returns p·m.
func (p PScalar[T]) GprMVec(m MVec[T]) MVec[T] { return mvecOf(core.Gpr(alg, p.mv(), m.mv())) }

// Gpr returns m·o; the even subalgebra is closed.
func (m MVecE[T]) Gpr(o MVecE[T]) MVecE[T] { return mvecEOf(core.Gpr(alg, m.mv(), o.mv())) }

// GprVec returns m·v.
func (m MVecE[T]) GprVec(v Vec[T]) MVecU[T] { return mvecUOf(core.Gpr(alg, m.mv(), v.mv())) }

// GprBiVec returns m·b.
func (m MVecE[T]) GprBiVec(b BiVec[T]) MVecE[T] { return mvecEOf(core.Gpr(alg, m.mv(), b.mv())) }

// GprMVecU returns m·o.
func (m MVecE[T]) GprMVecU(o MVecU[T]) MVecU[T] { return mvecUOf(core.Gpr(alg, m.mv(), o.mv())) }

// GprMVec returns m·o.
func (m MVecE[T]) GprMVec(o MVec[T]) MVec[T] { return mvecOf(core.Gpr(alg, m.mv(), o.mv())) }

// Dot returns the scalar product m·o.
func (m MVecE[T]) Dot(o MVecE[T]) Scalar[T] { return Scalar[T]{S: core.Dot(alg, m.mv(), o.mv())} }

// Gpr returns m·o; odd·odd is even.
func (m MVecU[T]) Gpr(o MVecU[T]) MVecE[T] { return mvecEOf(core.Gpr(alg, m.mv(), o.mv())) }

// GprMVecE returns m·o.
func (m MVecU[T]) GprMVecE(o MVecE[T]) MVecU[T] { return mvecUOf(core.Gpr(alg, m.mv(), o.mv())) }

// GprVec returns m·v.
func (m MVecU[T]) GprVec(v Vec[T]) MVecE[T] { return mvecEOf(core.Gpr(alg, m.mv(), v.mv())) }

// Gpr returns m·o.
func (m MVec[T]) Gpr(o MVec[T]) MVec[T] { return mvecOf(core.Gpr(alg, m.mv(), o.mv())) }

// GprVec returns m·v.
func (m MVec[T]) GprVec(v Vec[T]) MVec[T] { return mvecOf(core.Gpr(alg, m.mv(), v.mv())) }

// GprBiVec returns m·b.
func (m MVec[T]) GprBiVec(b BiVec[T]) MVec[T] { return mvecOf(core.Gpr(alg, m.mv(), b.mv())) }

// GprMVecE returns m·o.
func (m MVec[T]) GprMVecE(o MVecE[T]) MVec[T] { return mvecOf(core.Gpr(alg, m.mv(), o.mv())) }

// GprPScalar returns m·p.
func (m MVec[T]) GprPScalar(p PScalar[T]) MVec[T] { return mvecOf(core.Gpr(alg, m.mv(), p.mv())) }

// Wdg returns m∧o.
func (m MVec[T]) Wdg(o MVec[T]) MVec[T] { return mvecOf(core.Wdg(alg, m.mv(), o.mv())) }

// Dot returns the scalar product m·o.
func (m MVec[T]) Dot(o MVec[T]) Scalar[T] { return Scalar[T]{S: core.Dot(alg, m.mv(), o.mv())} }

// Cmt returns ½(m·o − o·m).
func (m MVec[T]) Cmt(o MVec[T]) MVec[T] { return mvecOf(core.Cmt(alg, m.mv(), o.mv())) }

// LContract returns the left contraction rwdg(lcmpl(m), o).
func (m MVec[T]) LContract(o MVec[T]) MVec[T] {
	return mvecOf(core.Rwdg(alg, core.LCmpl(alg, m.mv()), o.mv()))
}

// RContract returns the right contraction rwdg(m, rcmpl(o)).
func (m MVec[T]) RContract(o MVec[T]) MVec[T] {
	return mvecOf(core.Rwdg(alg, m.mv(), core.RCmpl(alg, o.mv())))
}

// SPDX-License-Identifier: MIT
// Package ega2d: products between grade combinations.
//
// Vec·Vec is written out as dot + wdg; every other combination is evaluated
// by the kernel over the operands' slots, so results carry exact zeros where
// the grade structure demands them.

package ega2d

import "github.com/Daniel-G-W-Hug/ga-sub005/core"

// Dot returns the scalar product v·w.
func (v Vec[T]) Dot(w Vec[T]) Scalar[T] { return Scalar[T]{S: v.X*w.X + v.Y*w.Y} }

// Wdg returns the outer product v∧w.
func (v Vec[T]) Wdg(w Vec[T]) PScalar[T] { return PScalar[T]{PS: v.X*w.Y - v.Y*w.X} }

// Gpr returns v·w = dot(v,w) + wdg(v,w).
func (v Vec[T]) Gpr(w Vec[T]) MVecE[T] {
	return MVecE[T]{S: v.Dot(w).S, PS: v.Wdg(w).PS}
}

// Cmt returns the commutator (v·w − w·v)/2 = v∧w.
func (v Vec[T]) Cmt(w Vec[T]) PScalar[T] { return v.Wdg(w) }

// GprPScalar returns v·p.
func (v Vec[T]) GprPScalar(p PScalar[T]) Vec[T] { return vecOf(core.Gpr(alg, v.mv(), p.mv())) }

// GprMVecE returns v·m.
func (v Vec[T]) GprMVecE(m MVecE[T]) Vec[T] { return vecOf(core.Gpr(alg, v.mv(), m.mv())) }

// GprMVec returns v·m.
func (v Vec[T]) GprMVec(m MVec[T]) MVec[T] { return mvecOf(core.Gpr(alg, v.mv(), m.mv())) }

// LContractPScalar returns the left contraction v⌋p.
func (v Vec[T]) LContractPScalar(p PScalar[T]) Vec[T] {
	return vecOf(core.Rwdg(alg, core.LCmpl(alg, v.mv()), p.mv()))
}

// Dot returns the scalar product p·q.
func (p PScalar[T]) Dot(q PScalar[T]) Scalar[T] { return Scalar[T]{S: core.Dot(alg, p.mv(), q.mv())} }

// Gpr returns p·q; I² = −1.
func (p PScalar[T]) Gpr(q PScalar[T]) Scalar[T] { return scalarOf(core.Gpr(alg, p.mv(), q.mv())) }

// GprVec returns p·v.
func (p PScalar[T]) GprVec(v Vec[T]) Vec[T] { return vecOf(core.Gpr(alg, p.mv(), v.mv())) }

// GprMVecE returns p·m.
func (p PScalar[T]) GprMVecE(m MVecE[T]) MVecE[T] { return mvecEOf(core.Gpr(alg, p.mv(), m.mv())) }

// GprMVec returns p·m.
func (p PScalar[T]) GprMVec(m MVec[T]) MVec[T] { return mvecOf(core.Gpr(alg, p.mv(), m.mv())) }

// RContractVec returns the right contraction p⌊v.
func (p PScalar[T]) RContractVec(v Vec[T]) Vec[T] {
	return vecOf(core.Rwdg(alg, p.mv(), core.RCmpl(alg, v.mv())))
}

// Gpr returns m·o; the even subalgebra is closed.
func (m MVecE[T]) Gpr(o MVecE[T]) MVecE[T] { return mvecEOf(core.Gpr(alg, m.mv(), o.mv())) }

// GprVec returns m·v.
func (m MVecE[T]) GprVec(v Vec[T]) Vec[T] { return vecOf(core.Gpr(alg, m.mv(), v.mv())) }

// GprPScalar returns m·p.
func (m MVecE[T]) GprPScalar(p PScalar[T]) MVecE[T] { return mvecEOf(core.Gpr(alg, m.mv(), p.mv())) }

// GprMVec returns m·o.
func (m MVecE[T]) GprMVec(o MVec[T]) MVec[T] { return mvecOf(core.Gpr(alg, m.mv(), o.mv())) }

// Dot returns the scalar product m·o.
func (m MVecE[T]) Dot(o MVecE[T]) Scalar[T] { return Scalar[T]{S: core.Dot(alg, m.mv(), o.mv())} }

// Gpr returns m·o.
func (m MVec[T]) Gpr(o MVec[T]) MVec[T] { return mvecOf(core.Gpr(alg, m.mv(), o.mv())) }

// GprVec returns m·v.
func (m MVec[T]) GprVec(v Vec[T]) MVec[T] { return mvecOf(core.Gpr(alg, m.mv(), v.mv())) }

// GprMVecE returns m·o.
func (m MVec[T]) GprMVecE(o MVecE[T]) MVec[T] { return mvecOf(core.Gpr(alg, m.mv(), o.mv())) }

// GprPScalar returns m·p.
func (m MVec[T]) GprPScalar(p PScalar[T]) MVec[T] { return mvecOf(core.Gpr(alg, m.mv(), p.mv())) }

// Wdg returns m∧o.
func (m MVec[T]) Wdg(o MVec[T]) MVec[T] { return mvecOf(core.Wdg(alg, m.mv(), o.mv())) }

// Dot returns the scalar product m·o.
func (m MVec[T]) Dot(o MVec[T]) Scalar[T] { return Scalar[T]{S: core.Dot(alg, m.mv(), o.mv())} }

// Cmt returns the commutator product (m·o − o·m)/2.
func (m MVec[T]) Cmt(o MVec[T]) MVec[T] { return mvecOf(core.Cmt(alg, m.mv(), o.mv())) }

// LContract returns the left contraction rwdg(lcmpl(m), o).
func (m MVec[T]) LContract(o MVec[T]) MVec[T] {
	return mvecOf(core.Rwdg(alg, core.LCmpl(alg, m.mv()), o.mv()))
}

// RContract returns the right contraction rwdg(m, rcmpl(o)).
func (m MVec[T]) RContract(o MVec[T]) MVec[T] {
	return mvecOf(core.Rwdg(alg, m.mv(), core.RCmpl(alg, o.mv())))
}

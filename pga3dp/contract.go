// SPDX-License-Identifier: MIT
// Package pga3dp: contractions and expansions.

package pga3dp

import "github.com/Daniel-G-W-Hug/ga-sub005/pga"

// LeftBulkContract returns rwdg(leftBulkDual(m), o).
func (m MVec[T]) LeftBulkContract(o MVec[T]) MVec[T] {
	return mvecOf(pga.LeftBulkContract(alg, m.mv(), o.mv()))
}

// LeftWeightContract returns rwdg(leftWeightDual(m), o).
func (m MVec[T]) LeftWeightContract(o MVec[T]) MVec[T] {
	return mvecOf(pga.LeftWeightContract(alg, m.mv(), o.mv()))
}

// RightBulkContract returns rwdg(m, rightBulkDual(o)).
func (m MVec[T]) RightBulkContract(o MVec[T]) MVec[T] {
	return mvecOf(pga.RightBulkContract(alg, m.mv(), o.mv()))
}

// RightWeightContract returns rwdg(m, rightWeightDual(o)).
func (m MVec[T]) RightWeightContract(o MVec[T]) MVec[T] {
	return mvecOf(pga.RightWeightContract(alg, m.mv(), o.mv()))
}

// LeftBulkExpand returns wdg(leftBulkDual(m), o).
func (m MVec[T]) LeftBulkExpand(o MVec[T]) MVec[T] {
	return mvecOf(pga.LeftBulkExpand(alg, m.mv(), o.mv()))
}

// LeftWeightExpand returns wdg(leftWeightDual(m), o).
func (m MVec[T]) LeftWeightExpand(o MVec[T]) MVec[T] {
	return mvecOf(pga.LeftWeightExpand(alg, m.mv(), o.mv()))
}

// RightBulkExpand returns wdg(m, rightBulkDual(o)).
func (m MVec[T]) RightBulkExpand(o MVec[T]) MVec[T] {
	return mvecOf(pga.RightBulkExpand(alg, m.mv(), o.mv()))
}

// RightWeightExpand returns wdg(m, rightWeightDual(o)).
func (m MVec[T]) RightWeightExpand(o MVec[T]) MVec[T] {
	return mvecOf(pga.RightWeightExpand(alg, m.mv(), o.mv()))
}

// RightBulkContract returns the bulk dot product of two points.
func (v Vec[T]) RightBulkContract(w Vec[T]) Scalar[T] {
	return scalarOf(pga.RightBulkContract(alg, v.mv(), w.mv()))
}

// RightWeightContract returns vw·ww.
func (v Vec[T]) RightWeightContract(w Vec[T]) Scalar[T] {
	return scalarOf(pga.RightWeightContract(alg, v.mv(), w.mv()))
}

// RightWeightExpand returns the plane through v perpendicular to l.
func (v Vec[T]) RightWeightExpand(l BiVec[T]) TriVec[T] {
	return trivecOf(pga.RightWeightExpand(alg, v.mv(), l.mv()))
}

// RightBulkExpand returns the plane through v and the origin that contains
// the moment direction of l.
func (v Vec[T]) RightBulkExpand(l BiVec[T]) TriVec[T] {
	return trivecOf(pga.RightBulkExpand(alg, v.mv(), l.mv()))
}

// RightWeightExpandPlane returns the line through v perpendicular to t.
func (v Vec[T]) RightWeightExpandPlane(t TriVec[T]) BiVec[T] {
	return bivecOf(pga.RightWeightExpand(alg, v.mv(), t.mv()))
}

// RightBulkExpandPlane returns the line through v and the origin, scaled by
// the offset of t.
func (v Vec[T]) RightBulkExpandPlane(t TriVec[T]) BiVec[T] {
	return bivecOf(pga.RightBulkExpand(alg, v.mv(), t.mv()))
}

// RightBulkContract returns M₁·M₂.
func (l BiVec[T]) RightBulkContract(m BiVec[T]) Scalar[T] {
	return scalarOf(pga.RightBulkContract(alg, l.mv(), m.mv()))
}

// RightWeightContract returns V₁·V₂.
func (l BiVec[T]) RightWeightContract(m BiVec[T]) Scalar[T] {
	return scalarOf(pga.RightWeightContract(alg, l.mv(), m.mv()))
}

// RightWeightContractPoint returns l ∨ rightWeightDual(p), the direction of l
// scaled by the weight of p.
func (l BiVec[T]) RightWeightContractPoint(p Vec[T]) Vec[T] {
	return vecOf(pga.RightWeightContract(alg, l.mv(), p.mv()))
}

// RightWeightExpand returns the plane containing l perpendicular to t.
func (l BiVec[T]) RightWeightExpand(t TriVec[T]) TriVec[T] {
	return trivecOf(pga.RightWeightExpand(alg, l.mv(), t.mv()))
}

// RightBulkExpand returns the plane containing l and the origin, scaled by
// the offset of t.
func (l BiVec[T]) RightBulkExpand(t TriVec[T]) TriVec[T] {
	return trivecOf(pga.RightBulkExpand(alg, l.mv(), t.mv()))
}

// RightBulkContract returns W₁·W₂.
func (t TriVec[T]) RightBulkContract(u TriVec[T]) Scalar[T] {
	return scalarOf(pga.RightBulkContract(alg, t.mv(), u.mv()))
}

// RightWeightContract returns n₁·n₂.
func (t TriVec[T]) RightWeightContract(u TriVec[T]) Scalar[T] {
	return scalarOf(pga.RightWeightContract(alg, t.mv(), u.mv()))
}

// RightWeightContractLine returns t ∨ rightWeightDual(l), the direction n×V
// inside t perpendicular to l.
func (t TriVec[T]) RightWeightContractLine(l BiVec[T]) Vec[T] {
	return vecOf(pga.RightWeightContract(alg, t.mv(), l.mv()))
}

// RightWeightContractPoint returns t ∨ rightWeightDual(p), the line at
// infinity of t scaled by the weight of p.
func (t TriVec[T]) RightWeightContractPoint(p Vec[T]) BiVec[T] {
	return bivecOf(pga.RightWeightContract(alg, t.mv(), p.mv()))
}

// SPDX-License-Identifier: MIT
// Package pga2dp: contractions and expansions.

package pga2dp

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

// RightBulkContract returns the bulk dot product of two points, x₁x₂ + y₁y₂.
func (v Vec[T]) RightBulkContract(w Vec[T]) Scalar[T] {
	return scalarOf(pga.RightBulkContract(alg, v.mv(), w.mv()))
}

// RightWeightContract returns the weight dot product of two points, w₁w₂.
func (v Vec[T]) RightWeightContract(w Vec[T]) Scalar[T] {
	return scalarOf(pga.RightWeightContract(alg, v.mv(), w.mv()))
}

// RightBulkExpand returns the line through v and the origin, scaled by the offset of l.
func (v Vec[T]) RightBulkExpand(l BiVec[T]) BiVec[T] {
	return bivecOf(pga.RightBulkExpand(alg, v.mv(), l.mv()))
}

// RightWeightExpand returns the line through v perpendicular to l.
func (v Vec[T]) RightWeightExpand(l BiVec[T]) BiVec[T] {
	return bivecOf(pga.RightWeightExpand(alg, v.mv(), l.mv()))
}

// RightBulkContract returns Z₁Z₂.
func (l BiVec[T]) RightBulkContract(m BiVec[T]) Scalar[T] {
	return scalarOf(pga.RightBulkContract(alg, l.mv(), m.mv()))
}

// RightWeightContract returns X₁X₂ + Y₁Y₂.
func (l BiVec[T]) RightWeightContract(m BiVec[T]) Scalar[T] {
	return scalarOf(pga.RightWeightContract(alg, l.mv(), m.mv()))
}

// RightWeightContractVec returns l ∨ rightWeightDual(v), a direction along l.
func (l BiVec[T]) RightWeightContractVec(v Vec[T]) Vec[T] {
	return vecOf(pga.RightWeightContract(alg, l.mv(), v.mv()))
}

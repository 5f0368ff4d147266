// SPDX-License-Identifier: MIT
// Package pga: duals, contractions and expansions.

package pga

import "github.com/Daniel-G-W-Hug/ga-sub005/core"

// RightBulkDual returns rcmpl(bulk(a)).
func RightBulkDual[T core.Float](alg *core.Algebra, a core.MV[T]) core.MV[T] {
	return core.RCmpl(alg, core.Bulk(alg, a))
}

// RightWeightDual returns rcmpl(weight(a)).
func RightWeightDual[T core.Float](alg *core.Algebra, a core.MV[T]) core.MV[T] {
	return core.RCmpl(alg, core.Weight(alg, a))
}

// LeftBulkDual returns lcmpl(bulk(a)).
func LeftBulkDual[T core.Float](alg *core.Algebra, a core.MV[T]) core.MV[T] {
	return core.LCmpl(alg, core.Bulk(alg, a))
}

// LeftWeightDual returns lcmpl(weight(a)).
func LeftWeightDual[T core.Float](alg *core.Algebra, a core.MV[T]) core.MV[T] {
	return core.LCmpl(alg, core.Weight(alg, a))
}

// LeftBulkContract returns rwdg(leftBulkDual(a), b).
func LeftBulkContract[T core.Float](alg *core.Algebra, a, b core.MV[T]) core.MV[T] {
	return core.Rwdg(alg, LeftBulkDual(alg, a), b)
}

// LeftWeightContract returns rwdg(leftWeightDual(a), b).
func LeftWeightContract[T core.Float](alg *core.Algebra, a, b core.MV[T]) core.MV[T] {
	return core.Rwdg(alg, LeftWeightDual(alg, a), b)
}

// RightBulkContract returns rwdg(a, rightBulkDual(b)).
func RightBulkContract[T core.Float](alg *core.Algebra, a, b core.MV[T]) core.MV[T] {
	return core.Rwdg(alg, a, RightBulkDual(alg, b))
}

// RightWeightContract returns rwdg(a, rightWeightDual(b)).
func RightWeightContract[T core.Float](alg *core.Algebra, a, b core.MV[T]) core.MV[T] {
	return core.Rwdg(alg, a, RightWeightDual(alg, b))
}

// LeftBulkExpand returns wdg(leftBulkDual(a), b).
func LeftBulkExpand[T core.Float](alg *core.Algebra, a, b core.MV[T]) core.MV[T] {
	return core.Wdg(alg, LeftBulkDual(alg, a), b)
}

// LeftWeightExpand returns wdg(leftWeightDual(a), b).
func LeftWeightExpand[T core.Float](alg *core.Algebra, a, b core.MV[T]) core.MV[T] {
	return core.Wdg(alg, LeftWeightDual(alg, a), b)
}

// RightBulkExpand returns wdg(a, rightBulkDual(b)).
func RightBulkExpand[T core.Float](alg *core.Algebra, a, b core.MV[T]) core.MV[T] {
	return core.Wdg(alg, a, RightBulkDual(alg, b))
}

// RightWeightExpand returns wdg(a, rightWeightDual(b)).
func RightWeightExpand[T core.Float](alg *core.Algebra, a, b core.MV[T]) core.MV[T] {
	return core.Wdg(alg, a, RightWeightDual(alg, b))
}

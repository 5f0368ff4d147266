// SPDX-License-Identifier: MIT
// Package ega2d: algebra tables and slot layout.

package ega2d

import "github.com/Daniel-G-W-Hug/ga-sub005/core"

const (
	slotS = iota
	slotE1
	slotE2
	slotE12
)

var alg = core.MustAlgebra("ega2d", []int8{1, 1}, []core.Blade{
	{Name: "1", Bitmap: 0b00, Sign: 1},
	{Name: "e1", Bitmap: 0b01, Sign: 1},
	{Name: "e2", Bitmap: 0b10, Sign: 1},
	{Name: "e12", Bitmap: 0b11, Sign: 1},
})

var (
	maskS   = alg.GradeMask(0)
	maskVec = alg.GradeMask(1)
	maskPS  = alg.GradeMask(2)
	maskE   = alg.EvenMask()
	maskAll = alg.Full()
)

// Algebra returns the kernel description of G(2,0,0).
func Algebra() *core.Algebra { return alg }

func (s Scalar[T]) mv() core.MV[T] {
	return core.MV[T]{C: core.Coeffs[T]{slotS: s.S}, M: maskS}
}

func (v Vec[T]) mv() core.MV[T] {
	return core.MV[T]{C: core.Coeffs[T]{slotE1: v.X, slotE2: v.Y}, M: maskVec}
}

func (p PScalar[T]) mv() core.MV[T] {
	return core.MV[T]{C: core.Coeffs[T]{slotE12: p.PS}, M: maskPS}
}

func (m MVecE[T]) mv() core.MV[T] {
	return core.MV[T]{C: core.Coeffs[T]{slotS: m.S, slotE12: m.PS}, M: maskE}
}

func (m MVec[T]) mv() core.MV[T] {
	return core.MV[T]{C: core.Coeffs[T]{slotS: m.S, slotE1: m.X, slotE2: m.Y, slotE12: m.PS}, M: maskAll}
}

func scalarOf[T core.Float](m core.MV[T]) Scalar[T] { return Scalar[T]{S: m.C[slotS]} }

func vecOf[T core.Float](m core.MV[T]) Vec[T] {
	return Vec[T]{X: m.C[slotE1], Y: m.C[slotE2]}
}

func pscalarOf[T core.Float](m core.MV[T]) PScalar[T] { return PScalar[T]{PS: m.C[slotE12]} }

func mvecEOf[T core.Float](m core.MV[T]) MVecE[T] {
	return MVecE[T]{S: m.C[slotS], PS: m.C[slotE12]}
}

func mvecOf[T core.Float](m core.MV[T]) MVec[T] {
	return MVec[T]{S: m.C[slotS], X: m.C[slotE1], Y: m.C[slotE2], PS: m.C[slotE12]}
}

// SPDX-License-Identifier: MIT
// Package ega3d: algebra tables and slot layout.

package ega3d

import "github.com/Daniel-G-W-Hug/ga-sub005/core"

const (
	slotS = iota
	slotE1
	slotE2
	slotE3
	slotE23
	slotE31
	slotE12
	slotE123
)

var alg = core.MustAlgebra("ega3d", []int8{1, 1, 1}, []core.Blade{
	{Name: "1", Bitmap: 0b000, Sign: 1},
	{Name: "e1", Bitmap: 0b001, Sign: 1},
	{Name: "e2", Bitmap: 0b010, Sign: 1},
	{Name: "e3", Bitmap: 0b100, Sign: 1},
	{Name: "e23", Bitmap: 0b110, Sign: 1},
	{Name: "e31", Bitmap: 0b101, Sign: -1},
	{Name: "e12", Bitmap: 0b011, Sign: 1},
	{Name: "e123", Bitmap: 0b111, Sign: 1},
})

var (
	maskS   = alg.GradeMask(0)
	maskVec = alg.GradeMask(1)
	maskBi  = alg.GradeMask(2)
	maskPS  = alg.GradeMask(3)
	maskE   = alg.EvenMask()
	maskU   = alg.OddMask()
	maskAll = alg.Full()
)

// Algebra returns the kernel description of G(3,0,0).
func Algebra() *core.Algebra { return alg }

func (s Scalar[T]) mv() core.MV[T] {
	return core.MV[T]{C: core.Coeffs[T]{slotS: s.S}, M: maskS}
}

func (v Vec[T]) mv() core.MV[T] {
	return core.MV[T]{C: core.Coeffs[T]{slotE1: v.X, slotE2: v.Y, slotE3: v.Z}, M: maskVec}
}

func (b BiVec[T]) mv() core.MV[T] {
	return core.MV[T]{C: core.Coeffs[T]{slotE23: b.X, slotE31: b.Y, slotE12: b.Z}, M: maskBi}
}

func (p PScalar[T]) mv() core.MV[T] {
	return core.MV[T]{C: core.Coeffs[T]{slotE123: p.PS}, M: maskPS}
}

func (m MVecE[T]) mv() core.MV[T] {
	return core.MV[T]{C: core.Coeffs[T]{
		slotS: m.S, slotE23: m.B.X, slotE31: m.B.Y, slotE12: m.B.Z,
	}, M: maskE}
}

func (m MVecU[T]) mv() core.MV[T] {
	return core.MV[T]{C: core.Coeffs[T]{
		slotE1: m.V.X, slotE2: m.V.Y, slotE3: m.V.Z, slotE123: m.PS,
	}, M: maskU}
}

func (m MVec[T]) mv() core.MV[T] {
	return core.MV[T]{C: core.Coeffs[T]{
		slotS: m.S,
		slotE1: m.V.X, slotE2: m.V.Y, slotE3: m.V.Z,
		slotE23: m.B.X, slotE31: m.B.Y, slotE12: m.B.Z,
		slotE123: m.PS,
	}, M: maskAll}
}

func scalarOf[T core.Float](m core.MV[T]) Scalar[T] { return Scalar[T]{S: m.C[slotS]} }

func vecOf[T core.Float](m core.MV[T]) Vec[T] {
	return Vec[T]{X: m.C[slotE1], Y: m.C[slotE2], Z: m.C[slotE3]}
}

func bivecOf[T core.Float](m core.MV[T]) BiVec[T] {
	return BiVec[T]{X: m.C[slotE23], Y: m.C[slotE31], Z: m.C[slotE12]}
}

func pscalarOf[T core.Float](m core.MV[T]) PScalar[T] { return PScalar[T]{PS: m.C[slotE123]} }

func mvecEOf[T core.Float](m core.MV[T]) MVecE[T] {
	return MVecE[T]{S: m.C[slotS], B: bivecOf(m)}
}

func mvecUOf[T core.Float](m core.MV[T]) MVecU[T] {
	return MVecU[T]{V: vecOf(m), PS: m.C[slotE123]}
}

func mvecOf[T core.Float](m core.MV[T]) MVec[T] {
	return MVec[T]{S: m.C[slotS], V: vecOf(m), B: bivecOf(m), PS: m.C[slotE123]}
}

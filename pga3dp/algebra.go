// SPDX-License-Identifier: MIT
// Package pga3dp: algebra tables and slot layout.

package pga3dp

import "github.com/Daniel-G-W-Hug/ga-sub005/core"

const (
	slotS = iota
	slotE1
	slotE2
	slotE3
	slotE4
	slotE41
	slotE42
	slotE43
	slotE23
	slotE31
	slotE12
	slotE423
	slotE431
	slotE412
	slotE321
	slotE1234
)

var alg = core.MustAlgebra("pga3dp", []int8{1, 1, 1, 0}, []core.Blade{
	{Name: "1", Bitmap: 0b0000, Sign: 1},
	{Name: "e1", Bitmap: 0b0001, Sign: 1},
	{Name: "e2", Bitmap: 0b0010, Sign: 1},
	{Name: "e3", Bitmap: 0b0100, Sign: 1},
	{Name: "e4", Bitmap: 0b1000, Sign: 1},
	{Name: "e41", Bitmap: 0b1001, Sign: -1},
	{Name: "e42", Bitmap: 0b1010, Sign: -1},
	{Name: "e43", Bitmap: 0b1100, Sign: -1},
	{Name: "e23", Bitmap: 0b0110, Sign: 1},
	{Name: "e31", Bitmap: 0b0101, Sign: -1},
	{Name: "e12", Bitmap: 0b0011, Sign: 1},
	{Name: "e423", Bitmap: 0b1110, Sign: 1},
	{Name: "e431", Bitmap: 0b1101, Sign: -1},
	{Name: "e412", Bitmap: 0b1011, Sign: 1},
	{Name: "e321", Bitmap: 0b0111, Sign: -1},
	{Name: "e1234", Bitmap: 0b1111, Sign: 1},
})

var (
	maskS   = alg.GradeMask(0)
	maskVec = alg.GradeMask(1)
	maskBi  = alg.GradeMask(2)
	maskTri = alg.GradeMask(3)
	maskPS  = alg.GradeMask(4)
	maskE   = alg.EvenMask()
	maskU   = alg.OddMask()
	maskAll = alg.Full()
)

// Algebra returns the kernel description of G(3,0,1).
func Algebra() *core.Algebra { return alg }

func (s Scalar[T]) mv() core.MV[T] {
	return core.MV[T]{C: core.Coeffs[T]{slotS: s.S}, M: maskS}
}

func (v Vec[T]) mv() core.MV[T] {
	return core.MV[T]{C: core.Coeffs[T]{
		slotE1: v.X, slotE2: v.Y, slotE3: v.Z, slotE4: v.W,
	}, M: maskVec}
}

func (b BiVec[T]) mv() core.MV[T] {
	return core.MV[T]{C: core.Coeffs[T]{
		slotE41: b.Vx, slotE42: b.Vy, slotE43: b.Vz,
		slotE23: b.Mx, slotE31: b.My, slotE12: b.Mz,
	}, M: maskBi}
}

func (t TriVec[T]) mv() core.MV[T] {
	return core.MV[T]{C: core.Coeffs[T]{
		slotE423: t.X, slotE431: t.Y, slotE412: t.Z, slotE321: t.W,
	}, M: maskTri}
}

func (p PScalar[T]) mv() core.MV[T] {
	return core.MV[T]{C: core.Coeffs[T]{slotE1234: p.PS}, M: maskPS}
}

func (m MVecE[T]) mv() core.MV[T] {
	return core.MV[T]{C: core.Coeffs[T]{
		slotS: m.S,
		slotE41: m.B.Vx, slotE42: m.B.Vy, slotE43: m.B.Vz,
		slotE23: m.B.Mx, slotE31: m.B.My, slotE12: m.B.Mz,
		slotE1234: m.PS,
	}, M: maskE}
}

func (m MVecU[T]) mv() core.MV[T] {
	return core.MV[T]{C: core.Coeffs[T]{
		slotE1: m.V.X, slotE2: m.V.Y, slotE3: m.V.Z, slotE4: m.V.W,
		slotE423: m.Tri.X, slotE431: m.Tri.Y, slotE412: m.Tri.Z, slotE321: m.Tri.W,
	}, M: maskU}
}

func (m MVec[T]) mv() core.MV[T] {
	return core.MV[T]{C: core.Coeffs[T]{
		slotS: m.S,
		slotE1: m.V.X, slotE2: m.V.Y, slotE3: m.V.Z, slotE4: m.V.W,
		slotE41: m.B.Vx, slotE42: m.B.Vy, slotE43: m.B.Vz,
		slotE23: m.B.Mx, slotE31: m.B.My, slotE12: m.B.Mz,
		slotE423: m.Tri.X, slotE431: m.Tri.Y, slotE412: m.Tri.Z, slotE321: m.Tri.W,
		slotE1234: m.PS,
	}, M: maskAll}
}

func scalarOf[T core.Float](m core.MV[T]) Scalar[T] { return Scalar[T]{S: m.C[slotS]} }

func vecOf[T core.Float](m core.MV[T]) Vec[T] {
	return Vec[T]{X: m.C[slotE1], Y: m.C[slotE2], Z: m.C[slotE3], W: m.C[slotE4]}
}

func bivecOf[T core.Float](m core.MV[T]) BiVec[T] {
	return BiVec[T]{
		Vx: m.C[slotE41], Vy: m.C[slotE42], Vz: m.C[slotE43],
		Mx: m.C[slotE23], My: m.C[slotE31], Mz: m.C[slotE12],
	}
}

func trivecOf[T core.Float](m core.MV[T]) TriVec[T] {
	return TriVec[T]{X: m.C[slotE423], Y: m.C[slotE431], Z: m.C[slotE412], W: m.C[slotE321]}
}

func pscalarOf[T core.Float](m core.MV[T]) PScalar[T] { return PScalar[T]{PS: m.C[slotE1234]} }

func mvecEOf[T core.Float](m core.MV[T]) MVecE[T] {
	return MVecE[T]{S: m.C[slotS], B: bivecOf(m), PS: m.C[slotE1234]}
}

func mvecUOf[T core.Float](m core.MV[T]) MVecU[T] {
	return MVecU[T]{V: vecOf(m), Tri: trivecOf(m)}
}

func mvecOf[T core.Float](m core.MV[T]) MVec[T] {
	return MVec[T]{S: m.C[slotS], V: vecOf(m), B: bivecOf(m), Tri: trivecOf(m), PS: m.C[slotE1234]}
}

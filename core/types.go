// SPDX-License-Identifier: MIT
// Package core: element types shared by every algebra package.

package core

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Float is the element constraint of every generic GA type (float32, float64).
type Float interface {
	constraints.Float
}

// MaxBlades is the number of basis blades of the largest supported algebra,
// G(3,0,1) with 2⁴ = 16 blades.
const MaxBlades = 16

// Mask selects basis-blade slots of an algebra; bit k set ⇒ slot k is stored.
type Mask uint16

// Has reports whether slot is part of the mask.
func (m Mask) Has(slot int) bool {
	return m&(1<<uint(slot)) != 0
}

// Count returns the number of slots in the mask.
func (m Mask) Count() int {
	return bits.OnesCount16(uint16(m))
}

// Coeffs holds multivector coefficients in the storage order of an Algebra.
type Coeffs[T Float] [MaxBlades]T

// MV is a sparse multivector of some Algebra.
// Slots outside M are zero and are never read by the kernel; the kernel
// always writes results with the structural mask of the product, so a slot
// may be present in M and still hold an exact zero.
type MV[T Float] struct {
	C Coeffs[T] // coefficients, indexed by slot
	M Mask      // slots carried by this value
}

// Blade names one basis blade of an Algebra.
//   - Bitmap: set of generators in canonical (ascending) order, bit k ⇔ e(k+1).
//   - Sign:   orientation of the named blade relative to the canonical one,
//     e.g. e31 = −e1∧e3 has Sign −1.
type Blade struct {
	Name   string
	Bitmap uint8
	Sign   int8
}

// Grade returns the number of generators in the blade.
func (b Blade) Grade() int {
	return bits.OnesCount8(b.Bitmap)
}

// term is one entry of a product or permutation table: the target slot and
// the sign of the contribution. sign == 0 marks an exactly vanishing entry.
type term struct {
	slot uint8
	sign int8
}

type (
	productTable [MaxBlades][MaxBlades]term
	permTable    [MaxBlades]term
	signTable    [MaxBlades]int8
)

// Add returns a+b; the result carries the union of both masks.
func Add[T Float](a, b MV[T]) MV[T] {
	out := MV[T]{M: a.M | b.M}
	for i := 0; i < MaxBlades; i++ {
		out.C[i] = a.C[i] + b.C[i]
	}

	return out
}

// Sub returns a−b; the result carries the union of both masks.
func Sub[T Float](a, b MV[T]) MV[T] {
	out := MV[T]{M: a.M | b.M}
	for i := 0; i < MaxBlades; i++ {
		out.C[i] = a.C[i] - b.C[i]
	}

	return out
}

// Neg returns −a.
func Neg[T Float](a MV[T]) MV[T] {
	return Scale(a, -1)
}

// Scale returns s·a.
func Scale[T Float](a MV[T], s T) MV[T] {
	out := MV[T]{M: a.M}
	for m := a.M; m != 0; m &= m - 1 {
		i := bits.TrailingZeros16(uint16(m))
		out.C[i] = a.C[i] * s
	}

	return out
}

// Restrict returns a with every slot outside mask cleared.
func Restrict[T Float](a MV[T], mask Mask) MV[T] {
	out := MV[T]{M: a.M & mask}
	for m := out.M; m != 0; m &= m - 1 {
		i := bits.TrailingZeros16(uint16(m))
		out.C[i] = a.C[i]
	}

	return out
}

// Convert returns a with every coefficient converted to U.
func Convert[U, T Float](a MV[T]) MV[U] {
	out := MV[U]{M: a.M}
	for i := 0; i < MaxBlades; i++ {
		out.C[i] = U(a.C[i])
	}

	return out
}

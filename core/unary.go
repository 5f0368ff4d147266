// SPDX-License-Identifier: MIT
// Package core: involutions, complements and grade selection.

package core

import "math/bits"

// applySigns multiplies each stored slot by its table sign.
func applySigns[T Float](tab *signTable, a MV[T]) MV[T] {
	out := MV[T]{M: a.M}
	for m := a.M; m != 0; m &= m - 1 {
		i := bits.TrailingZeros16(uint16(m))
		if tab[i] < 0 {
			out.C[i] = -a.C[i]
		} else {
			out.C[i] = a.C[i]
		}
	}

	return out
}

// permute moves each stored slot to its complement slot with sign.
func permute[T Float](tab *permTable, a MV[T]) MV[T] {
	var out MV[T]
	for m := a.M; m != 0; m &= m - 1 {
		i := bits.TrailingZeros16(uint16(m))
		t := tab[i]
		out.M |= 1 << t.slot
		if t.sign < 0 {
			out.C[t.slot] = -a.C[i]
		} else {
			out.C[t.slot] = a.C[i]
		}
	}

	return out
}

// Rev returns the reversion: grade k is multiplied by (−1)^(k(k−1)/2).
func Rev[T Float](alg *Algebra, a MV[T]) MV[T] {
	return applySigns(&alg.rev, a)
}

// RRev returns the regressive reversion: the reversion sign of the antigrade n−k.
func RRev[T Float](alg *Algebra, a MV[T]) MV[T] {
	return applySigns(&alg.rrev, a)
}

// GrInv returns the grade involution: grade k is multiplied by (−1)^k.
func GrInv[T Float](alg *Algebra, a MV[T]) MV[T] {
	return applySigns(&alg.grInv, a)
}

// Conj returns the Clifford conjugate: grade k is multiplied by (−1)^(k(k+1)/2).
func Conj[T Float](alg *Algebra, a MV[T]) MV[T] {
	return applySigns(&alg.conj, a)
}

// RCmpl returns the right complement, defined by u ∧ rcmpl(u) = I for basis blades.
func RCmpl[T Float](alg *Algebra, a MV[T]) MV[T] {
	return permute(&alg.rcmpl, a)
}

// LCmpl returns the left complement, defined by lcmpl(u) ∧ u = I for basis blades.
// LCmpl is the inverse of RCmpl.
func LCmpl[T Float](alg *Algebra, a MV[T]) MV[T] {
	return permute(&alg.lcmpl, a)
}

// Bulk returns the part of a free of degenerate generators.
func Bulk[T Float](alg *Algebra, a MV[T]) MV[T] {
	return Restrict(a, alg.bulk)
}

// Weight returns the part of a containing a degenerate generator.
func Weight[T Float](alg *Algebra, a MV[T]) MV[T] {
	return Restrict(a, alg.weight)
}

// GradePart returns the grade-k part of a.
func GradePart[T Float](alg *Algebra, a MV[T], k int) MV[T] {
	return Restrict(a, alg.GradeMask(k))
}

// NegateGrades returns a with the listed grades negated.
func NegateGrades[T Float](alg *Algebra, a MV[T], grades ...int) MV[T] {
	var mask Mask
	for _, k := range grades {
		mask |= alg.GradeMask(k)
	}
	out := a
	for m := a.M & mask; m != 0; m &= m - 1 {
		i := bits.TrailingZeros16(uint16(m))
		out.C[i] = -a.C[i]
	}

	return out
}

// ScalarPart returns the coefficient of the scalar blade.
func ScalarPart[T Float](alg *Algebra, a MV[T]) T {
	return a.C[alg.scalarSlot]
}

// PseudoscalarPart returns the coefficient of the pseudoscalar blade.
func PseudoscalarPart[T Float](alg *Algebra, a MV[T]) T {
	return a.C[alg.pseudoSlot]
}

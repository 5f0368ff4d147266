// SPDX-License-Identifier: MIT
// Package core: sparse table-driven products.
//
// Every product visits only the slot pairs present in both operand masks and
// skips table entries with sign 0 (vanishing outer products and products
// through the degenerate generator), so degenerate terms are exact zeros,
// never round-off.

package core

import "math/bits"

// product evaluates a bilinear table over the stored slots of a and b.
func product[T Float](tab *productTable, a, b MV[T]) MV[T] {
	var out MV[T]
	var i, j int
	for am := a.M; am != 0; am &= am - 1 {
		i = bits.TrailingZeros16(uint16(am))
		for bm := b.M; bm != 0; bm &= bm - 1 {
			j = bits.TrailingZeros16(uint16(bm))
			t := tab[i][j]
			if t.sign == 0 {
				continue
			}
			out.M |= 1 << t.slot
			if t.sign > 0 {
				out.C[t.slot] += a.C[i] * b.C[j]
			} else {
				out.C[t.slot] -= a.C[i] * b.C[j]
			}
		}
	}

	return out
}

// Gpr returns the geometric product a·b.
func Gpr[T Float](alg *Algebra, a, b MV[T]) MV[T] {
	return product(&alg.gpr, a, b)
}

// Wdg returns the outer (wedge) product a∧b.
func Wdg[T Float](alg *Algebra, a, b MV[T]) MV[T] {
	return product(&alg.wdg, a, b)
}

// Rwdg returns the regressive wedge product a∨b = lcmpl(rcmpl(a) ∧ rcmpl(b)).
func Rwdg[T Float](alg *Algebra, a, b MV[T]) MV[T] {
	return product(&alg.rwdg, a, b)
}

// Rgpr returns the regressive geometric product a⟇b = lcmpl(rcmpl(a)·rcmpl(b)).
func Rgpr[T Float](alg *Algebra, a, b MV[T]) MV[T] {
	return product(&alg.rgpr, a, b)
}

// Cmt returns the commutator product (a·b − b·a)/2.
func Cmt[T Float](alg *Algebra, a, b MV[T]) MV[T] {
	return Scale(Sub(Gpr(alg, a, b), Gpr(alg, b, a)), 0.5)
}

// Rcmt returns the regressive commutator product (a⟇b − b⟇a)/2.
func Rcmt[T Float](alg *Algebra, a, b MV[T]) MV[T] {
	return Scale(Sub(Rgpr(alg, a, b), Rgpr(alg, b, a)), 0.5)
}

// Dot returns the scalar product Σ aᵢ·bᵢ·(eᵢ·rev(eᵢ)).
// Blades containing a degenerate generator contribute exactly 0.
func Dot[T Float](alg *Algebra, a, b MV[T]) T {
	var sum T
	for m := a.M & b.M; m != 0; m &= m - 1 {
		i := bits.TrailingZeros16(uint16(m))
		switch alg.dotSign[i] {
		case 1:
			sum += a.C[i] * b.C[i]
		case -1:
			sum -= a.C[i] * b.C[i]
		}
	}

	return sum
}

// Rdot returns the pseudoscalar coefficient of the antidot product
// lcmpl(dot(rcmpl(a), rcmpl(b))).
func Rdot[T Float](alg *Algebra, a, b MV[T]) T {
	var sum T
	for m := a.M & b.M; m != 0; m &= m - 1 {
		i := bits.TrailingZeros16(uint16(m))
		switch alg.rdotSign[i] {
		case 1:
			sum += a.C[i] * b.C[i]
		case -1:
			sum -= a.C[i] * b.C[i]
		}
	}

	return sum
}

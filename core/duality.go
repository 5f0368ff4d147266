// SPDX-License-Identifier: MIT
// Package core: duality convention selector for the Euclidean algebras.

package core

// Duality selects how a Euclidean dual is formed from the pseudoscalar I.
type Duality uint8

const (
	// Macdonald forms dual(A) = A·I⁻¹.
	Macdonald Duality = iota
	// HestenesDoranLasenby forms dual(A) = I·A.
	HestenesDoranLasenby
)

// String returns the convention's name.
func (d Duality) String() string {
	switch d {
	case Macdonald:
		return "Macdonald"
	case HestenesDoranLasenby:
		return "Hestenes-Doran-Lasenby"
	default:
		return "Duality(?)"
	}
}

// Dual applies the convention d. It is defined for non-degenerate algebras only.
func Dual[T Float](alg *Algebra, d Duality, a MV[T]) MV[T] {
	pss := Basis[T](alg, alg.pseudoSlot)
	if d == HestenesDoranLasenby {
		return Gpr(alg, pss, a)
	}
	// I·rev(I) = ±1 in a Euclidean algebra, so I⁻¹ = rev(I)/(I·rev(I)).
	s := ScalarPart(alg, Gpr(alg, pss, Rev(alg, pss)))

	return Gpr(alg, a, Scale(Rev(alg, pss), 1/s))
}

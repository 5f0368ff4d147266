// SPDX-License-Identifier: MIT
// Package core: closed-form inverse of a general multivector.
//
// For n ≤ 4 the inverse follows from a chain of grade involutions that ends in
// a scalar (Hitzer & Sangwine): with the Clifford conjugate ā and the grade
// involution â,
//
//	n = 1, 2:  a⁻¹ = ā / (a·ā)
//	n = 3:     a⁻¹ = ā·â·ã / (a·ā·â·ã)
//	n = 4:     b = a·ā, b' = b with grades 3,4 negated, a⁻¹ = ā·b' / (b·b')
//
// The identities are polynomial in the metric, so they hold for the
// degenerate algebras as well.
//
// For n ≥ 3 the denominator of a blade is nrm_sq², so the strict check runs
// on √|den| to keep the threshold on the scale of nrm_sq.

package core

import "math"

// Inv returns the inverse of a under the algebra's product.
// Stage 1 (Prepare): build the numerator from involutions of a.
// Stage 2 (Validate): the denominator, taken on the scale of nrm_sq, must
// exceed the threshold (strict mode), otherwise ErrNotInvertible is returned.
// Stage 3 (Finalize): divide.
func Inv[T Float](alg *Algebra, a MV[T], opts ...Option) (MV[T], error) {
	// Stage 1: numerator and denominator
	var num MV[T]
	var den T
	switch alg.dim {
	case 1, 2:
		num = Conj(alg, a)
		den = ScalarPart(alg, Gpr(alg, a, num))
	case 3:
		num = Gpr(alg, Gpr(alg, Conj(alg, a), GrInv(alg, a)), Rev(alg, a))
		den = ScalarPart(alg, Gpr(alg, a, num))
	default:
		c := Conj(alg, a)
		b := Gpr(alg, a, c)
		bb := NegateGrades(alg, b, 3, 4)
		num = Gpr(alg, c, bb)
		den = ScalarPart(alg, Gpr(alg, b, bb))
	}

	// Stage 2: validate
	scale := den
	if alg.dim >= 3 {
		scale = T(math.Sqrt(math.Abs(float64(den))))
	}
	if err := CheckInvertible("Inv", alg.name+" multivector", scale, opts...); err != nil {
		return MV[T]{}, err
	}

	// Stage 3: finalize
	return Scale(num, 1/den), nil
}

// Package ega2d implements the Euclidean geometric algebra of the plane,
// G(2,0,0), with basis {1, e1, e2, e12}.
//
// Types (all generic over core.Float):
//
//	Scalar{S}          grade 0
//	Vec{X, Y}          grade 1
//	PScalar{PS}        grade 2, I = e12, I² = −1
//	MVecE{S, PS}       even subalgebra (rotors, isomorphic to ℂ)
//	MVec{S, X, Y, PS}  full multivector
//
// Products are methods on the left operand named after the right operand's
// type: v.Gpr(w) for two vectors, v.GprPScalar(i), r.GprVec(v) and so on.
// All products are evaluated by the table-driven kernel of package core over
// the slots the operands actually carry.
//
// Rotations: Rotor(I, θ) = cos(θ/2) − sin(θ/2)·Î turns e1 towards e2 by θ
// under Rotate(v, R) = R·v·rev(R). RotateOpt is the closed form.
package ega2d

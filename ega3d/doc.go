// Package ega3d implements the Euclidean geometric algebra of space,
// G(3,0,0), with basis {1, e1, e2, e3, e23, e31, e12, e123}.
//
// Types (all generic over core.Float):
//
//	Scalar{S}            grade 0
//	Vec{X, Y, Z}         grade 1
//	BiVec{X, Y, Z}       grade 2 on e23, e31, e12 (the plane dual to the axis)
//	PScalar{PS}          grade 3, I = e123, I² = −1
//	MVecE{S, B}          even subalgebra (rotors, isomorphic to the quaternions)
//	MVecU{V, PS}         odd part
//	MVec{S, V, B, PS}    full multivector
//
// A bivector carries the same components as the cross product of the vectors
// spanning it: v.Wdg(w) and v.Cross(w) differ only in type.
//
// Rotations: Rotor(B, θ) = cos(θ/2) − sin(θ/2)·B̂ turns vectors in the plane B
// by θ under Rotate(v, R) = R·v·rev(R). For B = e12 that is a counterclockwise
// turn about +e3. Quat and RotorFromQuat map rotors to gonum quaternions.
package ega3d

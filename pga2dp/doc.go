// Package pga2dp implements the projective geometric algebra of the plane,
// G(2,0,1), with basis {1, e1, e2, e3, e23, e31, e12, e321} and e3² = 0.
//
// Geometric objects:
//
//	Vec{X, Y, Z}      a point (Z is the homogeneous weight w; Z = 0 is a direction)
//	BiVec{X, Y, Z}    a line X·x + Y·y + Z·w = 0 on e23, e31, e12;
//	                  (X, Y) is the weight (normal), Z the bulk
//	PScalar{PS}       the antiscalar 𝟙 = e321
//	MVecU{V, PS}      motors: V·sin(θ/2) + 𝟙·cos(θ/2) rotates about V
//	MVecE{S, B}       even elements
//	MVec{S, V, B, PS} full multivector
//
// Joins use the wedge product, meets the regressive (anti-)wedge product.
// Motors act with the regressive sandwich Move(x, M) = M ⟇ x ⟇ rrev(M) and
// compose with Rgpr; the identity motor is 𝟙.
//
// Strict/permissive division handling follows core.Options; see Unitize.
package pga2dp

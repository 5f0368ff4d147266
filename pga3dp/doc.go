// Package pga3dp implements the projective geometric algebra of space,
// G(3,0,1), with e4² = 0 and the 16 basis blades
//
//	1, e1, e2, e3, e4, e41, e42, e43, e23, e31, e12,
//	e423, e431, e412, e321, e1234.
//
// Geometric objects:
//
//	Vec{X, Y, Z, W}                 a point (W = 0 is a direction)
//	BiVec{Vx, Vy, Vz, Mx, My, Mz}   a line: direction V (weight) and moment M (bulk)
//	TriVec{X, Y, Z, W}              a plane X·x + Y·y + Z·z + W = 0
//	PScalar{PS}                     the antiscalar 𝟙 = e1234
//	MVecE{S, B, PS}                 motors: l·sin(θ/2) + 𝟙·cos(θ/2) turns about l
//	MVecU{V, Tri}                   odd elements
//	MVec{S, V, B, Tri, PS}          full multivector
//
// Joins use the wedge product (Join, JoinLine, JoinPoint), meets the
// regressive product (Meet, MeetLine, MeetPlane). Motors act with
// Move(x, M) = M ⟇ x ⟇ rrev(M); MoveOpt and Matrix are closed forms of the
// same map, and DualQuat converts unit motors to gonum dual quaternions.
//
// Distances come back as pga.DualNum so that objects at infinity stay
// representable; Ratio yields the Euclidean value.
//
// Strict/permissive division handling follows core.Options; see Unitize.
package pga3dp

// Package ga is a small geometric algebra toolkit for 2D and 3D Euclidean
// and projective geometry, with every algebra generic over float32 and
// float64.
//
// 🚀 What lives here?
//
//	Four algebras built on one table-driven kernel:
//		• EGA 2D  G(2,0,0): vectors, rotors (isomorphic to ℂ)
//		• EGA 3D  G(3,0,0): vectors, bivectors, rotors (isomorphic to ℍ)
//		• PGA 2D  G(2,0,1): points, lines, motors in the plane
//		• PGA 3D  G(3,0,1): points, lines, planes, motors in space
//
// ✨ Operations:
//
//   - geometric, outer, inner, regressive products and commutators
//   - reversion, conjugations, complements, bulk/weight and the four duals
//   - inverses, norms, unitization
//   - rotors and motors with both sandwich and closed form application
//   - contractions, expansions, projections, reflections, distances, angles
//
// ⚙️ Numeric policy:
//
//	Every operation that divides takes ...core.Option. Strict mode (the
//	default) reports a near zero divisor as an error wrapping
//	core.ErrDivisionByZero, core.ErrNotInvertible or core.ErrNotUnitizable;
//	core.WithPermissive lets IEEE-754 Inf/NaN through instead.
//
// Under the hood, the module is organized in these packages:
//
//	core/    — blade tables, sparse multivectors and the kernel products
//	pga/     — duals, contractions, projections and norms shared by PGA
//	matrix/  — small dense matrices for closed form transforms
//	ega2d/   — Euclidean plane
//	ega3d/   — Euclidean space, quaternion interop
//	pga2dp/  — projective plane, dual complex number interop
//	pga3dp/  — projective space, dual quaternion interop
//
// Quick example, intersecting two lines of the plane:
//
//	d1 := pga2dp.LineFromPoints(pga2dp.Point(0.0, 0.0), pga2dp.Point(1.0, 1.0))
//	d2 := pga2dp.LineFromPoints(pga2dp.Point(0.0, 1.0), pga2dp.Point(1.0, 0.0))
//	p, err := d1.Meet(d2).Unitize() // (0.5, 0.5)
//
//	go get github.com/Daniel-G-W-Hug/ga-sub005
package ga

// Package core is the table-driven multivector kernel shared by every algebra
// package of the module.
//
// 🚀 What lives here?
//
//	An Algebra describes one geometric algebra G(p,0,r) of dimension ≤ 4:
//	its generators (each squaring to +1 or 0), the ordered list of named basis
//	blades (e.g. e31 instead of the canonical e13) and the product and sign
//	tables derived from them once, at package initialisation.
//
//	MV is a sparse multivector: a fixed array of coefficients plus a Mask of
//	the slots it carries. Products only visit slot pairs present in both masks,
//	so a vector·vector product never touches the trivector slots.
//
// ✨ Kernel operations:
//   - Gpr, Wdg, Dot            – geometric, outer and scalar product
//   - Rgpr, Rwdg, Rdot         – their regressive (anti-) counterparts
//   - Cmt, Rcmt                – commutator and regressive commutator
//   - Rev, RRev, GrInv, Conj   – grade-dependent sign involutions
//   - RCmpl, LCmpl             – right and left complements (u ∧ rcmpl(u) = I)
//   - Bulk, Weight             – split by the degenerate generator
//   - Inv                      – closed-form multivector inverse for n ≤ 4
//
// ⚙️ Numeric policy:
//
//	Every fallible operation takes ...Option. The default is strict: a
//	division by a (near) zero value returns an error wrapping one of
//	ErrDivisionByZero, ErrNotInvertible or ErrNotUnitizable. WithPermissive
//	turns the checks off and lets IEEE-754 Inf/NaN propagate instead.
//
// Approximate equality (ApproxEq, EqMV) uses a fixed tolerance of
// 5·eps(T) and is independent of WithEpsilon.
//
// Complexity: all kernel operations are O(|a|·|b|) in the number of stored
// slots, at most 16·16 for G(3,0,1), and allocation free.
package core

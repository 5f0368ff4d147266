// SPDX-License-Identifier: MIT
// Package ega2d: projection, rejection and reflection of vectors.

package ega2d

import "github.com/Daniel-G-W-Hug/ga-sub005/core"

// ProjectOnto returns the component of v parallel to u: (v·u)·u⁻¹.
func (v Vec[T]) ProjectOnto(u Vec[T], opts ...core.Option) (Vec[T], error) {
	inv, err := u.Inv(opts...)
	if err != nil {
		return Vec[T]{}, err
	}

	return inv.Scale(v.Dot(u).S), nil
}

// RejectFrom returns the component of v perpendicular to u: (v∧u)·u⁻¹.
func (v Vec[T]) RejectFrom(u Vec[T], opts ...core.Option) (Vec[T], error) {
	inv, err := u.Inv(opts...)
	if err != nil {
		return Vec[T]{}, err
	}

	return v.Wdg(u).GprVec(inv), nil
}

// ReflectOnHyp reflects v on the hyperplane (line through the origin) with
// normal n: −n·v·n⁻¹.
func (v Vec[T]) ReflectOnHyp(n Vec[T], opts ...core.Option) (Vec[T], error) {
	inv, err := n.Inv(opts...)
	if err != nil {
		return Vec[T]{}, err
	}

	return n.Gpr(v).GprVec(inv).Neg(), nil
}

// ReflectOnVec reflects v on the line spanned by u: u·v·u⁻¹.
func (v Vec[T]) ReflectOnVec(u Vec[T], opts ...core.Option) (Vec[T], error) {
	inv, err := u.Inv(opts...)
	if err != nil {
		return Vec[T]{}, err
	}

	return u.Gpr(v).GprVec(inv), nil
}

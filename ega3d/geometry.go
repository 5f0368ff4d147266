// SPDX-License-Identifier: MIT
// Package ega3d: projection, rejection and reflection.

package ega3d

import "github.com/Daniel-G-W-Hug/ga-sub005/core"

// ProjectOnto returns the component of v parallel to u.
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

	return v.Wdg(u).GprVec(inv).V, nil
}

// ProjectOntoPlane returns the component of v lying in the plane b:
// the vector part of (v·b)·b⁻¹ after dropping the trivector of v·b.
func (v Vec[T]) ProjectOntoPlane(b BiVec[T], opts ...core.Option) (Vec[T], error) {
	inv, err := b.Inv(opts...)
	if err != nil {
		return Vec[T]{}, err
	}

	return v.GprBiVec(b).V.GprBiVec(inv).V, nil
}

// RejectFromPlane returns the component of v normal to the plane b: (v∧b)·b⁻¹.
func (v Vec[T]) RejectFromPlane(b BiVec[T], opts ...core.Option) (Vec[T], error) {
	inv, err := b.Inv(opts...)
	if err != nil {
		return Vec[T]{}, err
	}

	return v.WdgBiVec(b).GprBiVec(inv), nil
}

// ReflectOn mirrors v on the plane b through the origin: −b·v·b⁻¹.
func (v Vec[T]) ReflectOn(b BiVec[T], opts ...core.Option) (Vec[T], error) {
	inv, err := b.Inv(opts...)
	if err != nil {
		return Vec[T]{}, err
	}

	return b.GprVec(v).GprMVecE(inv.MVecE()).V.Neg(), nil
}

// ReflectOnHyp mirrors v on the plane with normal n: −n·v·n⁻¹.
func (v Vec[T]) ReflectOnHyp(n Vec[T], opts ...core.Option) (Vec[T], error) {
	inv, err := n.Inv(opts...)
	if err != nil {
		return Vec[T]{}, err
	}

	return n.Gpr(v).GprVec(inv).V.Neg(), nil
}

// ReflectOnVec mirrors v on the line spanned by u: u·v·u⁻¹.
func (v Vec[T]) ReflectOnVec(u Vec[T], opts ...core.Option) (Vec[T], error) {
	inv, err := u.Inv(opts...)
	if err != nil {
		return Vec[T]{}, err
	}

	return u.Gpr(v).GprVec(inv).V, nil
}

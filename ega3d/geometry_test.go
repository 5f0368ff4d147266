// SPDX-License-Identifier: MIT
package ega3d_test

import (
	"testing"

	"github.com/Daniel-G-W-Hug/ga-sub005/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProjectReject_Vector: components along and across u sum to v.
func TestProjectReject_Vector(t *testing.T) {
	f := newFixture()
	for n := 0; n < 10; n++ {
		v, u := f.vec(), f.vec()
		p, err := v.ProjectOnto(u)
		require.NoError(t, err)
		r, err := v.RejectFrom(u)
		require.NoError(t, err)
		assertVec(t, v, p.Add(r))
		assert.InDelta(t, 0, r.Dot(u).S, tol)
		assertVec(t, vec{}, p.Cross(u))
	}
	_, err := vec{X: 1}.ProjectOnto(vec{})
	assert.ErrorIs(t, err, core.ErrNotInvertible)
}

// TestProjectReject_Plane splits (1,2,3) against the plane e12.
func TestProjectReject_Plane(t *testing.T) {
	v, b := vec{X: 1, Y: 2, Z: 3}, bivec{Z: 2}
	p, err := v.ProjectOntoPlane(b)
	require.NoError(t, err)
	r, err := v.RejectFromPlane(b)
	require.NoError(t, err)
	assertVec(t, vec{X: 1, Y: 2}, p)
	assertVec(t, vec{Z: 3}, r)

	f := newFixture()
	for n := 0; n < 10; n++ {
		v, b := f.vec(), f.bivec()
		p, err := v.ProjectOntoPlane(b)
		require.NoError(t, err)
		r, err := v.RejectFromPlane(b)
		require.NoError(t, err)
		assertVec(t, v, p.Add(r))
		// p lies in the plane, r along its normal
		assert.InDelta(t, 0, p.WdgBiVec(b).PS, tol)
		assertBiVec(t, bivec{}, r.Wdg(b.RCmpl()))
	}
	_, err = v.ProjectOntoPlane(bivec{})
	assert.ErrorIs(t, err, core.ErrNotInvertible)
	_, err = v.RejectFromPlane(bivec{})
	assert.ErrorIs(t, err, core.ErrNotInvertible)
}

// TestReflections mirrors (1,2,3) on the plane e12, on its normal and on the
// line through e3.
func TestReflections(t *testing.T) {
	v := vec{X: 1, Y: 2, Z: 3}
	m, err := v.ReflectOn(bivec{Z: 1})
	require.NoError(t, err)
	assertVec(t, vec{X: 1, Y: 2, Z: -3}, m)

	h, err := v.ReflectOnHyp(vec{Z: 5})
	require.NoError(t, err)
	assertVec(t, m, h)

	l, err := v.ReflectOnVec(vec{Z: 1})
	require.NoError(t, err)
	assertVec(t, vec{X: -1, Y: -2, Z: 3}, l)

	f := newFixture()
	for n := 0; n < 10; n++ {
		v, b := f.vec(), f.bivec()
		a, err := v.ReflectOn(b)
		require.NoError(t, err)
		c, err := v.ReflectOnHyp(b.RCmpl())
		require.NoError(t, err)
		assertVec(t, a, c)
		assert.InDelta(t, v.Nrm(), a.Nrm(), tol)
	}

	_, err = v.ReflectOn(bivec{})
	assert.ErrorIs(t, err, core.ErrNotInvertible)
	_, err = v.ReflectOnVec(vec{})
	assert.ErrorIs(t, err, core.ErrNotInvertible)
}

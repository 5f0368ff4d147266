// SPDX-License-Identifier: MIT
package ega2d_test

import (
	"testing"

	"github.com/Daniel-G-W-Hug/ga-sub005/core"
	"github.com/Daniel-G-W-Hug/ga-sub005/ega2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInvolutions checks the grade signs of rev, grinv and conj.
func TestInvolutions(t *testing.T) {
	m := ega2d.MVec[float64]{S: 1, X: 2, Y: 3, PS: 4}
	assert.Equal(t, ega2d.MVec[float64]{S: 1, X: 2, Y: 3, PS: -4}, m.Rev())
	assert.Equal(t, ega2d.MVec[float64]{S: 1, X: -2, Y: -3, PS: 4}, m.GrInv())
	assert.Equal(t, ega2d.MVec[float64]{S: 1, X: -2, Y: -3, PS: -4}, m.Conj())

	v := m.Gr1()
	assert.Equal(t, m.Rev().Gr1(), v.Rev())
	assert.Equal(t, m.GrInv().Gr1(), v.GrInv())
	assert.Equal(t, m.Conj().Gr1(), v.Conj())
	assert.Equal(t, m.Rev().Gr2(), m.Gr2().Rev())
	assert.Equal(t, m.Conj().Even(), m.Even().Conj())
	assert.Equal(t, m.Even(), m.Even().GrInv())
}

// TestComplements checks v∧rcmpl(v) = |v|²·I and lcmpl(v)∧v = |v|²·I.
func TestComplements(t *testing.T) {
	v := vec{X: 3, Y: 4}
	assert.Equal(t, vec{X: -4, Y: 3}, v.RCmpl())
	assert.Equal(t, vec{X: 4, Y: -3}, v.LCmpl())
	assert.Equal(t, ega2d.PScalar[float64]{PS: 25}, v.Wdg(v.RCmpl()))
	assert.Equal(t, ega2d.PScalar[float64]{PS: 25}, v.LCmpl().Wdg(v))
	assert.Equal(t, v.Neg(), v.RCmpl().RCmpl())
	assert.Equal(t, v, v.LCmpl().RCmpl())

	s := ega2d.Scalar[float64]{S: 2}
	assert.Equal(t, ega2d.PScalar[float64]{PS: 2}, s.RCmpl())
	assert.Equal(t, ega2d.PScalar[float64]{PS: 2}, s.LCmpl())
	assert.Equal(t, s, s.RCmpl().RCmpl())
	assert.Equal(t, s, s.LCmpl().LCmpl())

	f := newFixture()
	for n := 0; n < 10; n++ {
		m := f.mvec()
		assertMVec(t, m, m.RCmpl().LCmpl())
		assertMVec(t, m, m.LCmpl().RCmpl())
		assertMVec(t, m.Even().RCmpl().MVec(), m.Even().MVec().RCmpl())
		assertMVec(t, m.Even().LCmpl().MVec(), m.Even().MVec().LCmpl())
	}
}

// TestDual_Conventions: both conventions agree on vectors in two dimensions.
func TestDual_Conventions(t *testing.T) {
	v := vec{X: 1, Y: 2}
	assert.Equal(t, vec{X: 2, Y: -1}, v.Dual(core.Macdonald))
	assert.Equal(t, v.Dual(core.Macdonald), v.Dual(core.HestenesDoranLasenby))

	// Macdonald multiplies by I⁻¹ = −I from the right, the other convention by I from the left
	f := newFixture()
	m := f.mvec()
	assertMVec(t, m.GprPScalar(ega2d.PScalar[float64]{PS: -1}), m.Dual(core.Macdonald))
	assertMVec(t, ega2d.PScalar[float64]{PS: 1}.GprMVec(m), m.Dual(core.HestenesDoranLasenby))
	assert.Equal(t, ega2d.Scalar[float64]{S: -1}, ega2d.PScalar[float64]{PS: 1}.Dual(core.HestenesDoranLasenby))
	assert.Equal(t, ega2d.PScalar[float64]{PS: -1}, ega2d.Scalar[float64]{S: 1}.Dual(core.Macdonald))
}

// TestNorms_Normalize covers magnitudes and the zero-length failure.
func TestNorms_Normalize(t *testing.T) {
	v := vec{X: 3, Y: 4}
	assert.Equal(t, 5.0, v.Nrm())
	u, err := v.Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 1, u.Nrm(), tol)

	_, err = vec{}.Normalize()
	assert.ErrorIs(t, err, core.ErrDivisionByZero)
	_, err = vec{X: 1e-3}.Normalize(core.WithEpsilon(1e-2))
	assert.ErrorIs(t, err, core.ErrDivisionByZero)

	e := ega2d.MVecE[float64]{S: 3, PS: 4}
	assert.Equal(t, 5.0, e.Nrm())
	r, err := e.Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 1, r.Nrm(), tol)
	_, err = ega2d.MVecE[float64]{}.Normalize()
	assert.ErrorIs(t, err, core.ErrDivisionByZero)

	p, err := ega2d.PScalar[float64]{PS: -2}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, ega2d.PScalar[float64]{PS: -1}, p)
	assert.Equal(t, 2.0, ega2d.Scalar[float64]{S: -2}.Nrm())

	m := ega2d.MVec[float64]{S: 1, X: 1, Y: 1, PS: 1}
	assert.InDelta(t, 2, m.Nrm(), tol)
}

// TestInverses checks x·x⁻¹ = 1 per type and the strict/permissive split.
func TestInverses(t *testing.T) {
	one := ega2d.MVec[float64]{S: 1}

	v := vec{X: 3, Y: 4}
	vi, err := v.Inv()
	require.NoError(t, err)
	assertMVec(t, one, v.Gpr(vi).MVec())

	p := ega2d.PScalar[float64]{PS: 2}
	pi, err := p.Inv()
	require.NoError(t, err)
	assert.Equal(t, ega2d.PScalar[float64]{PS: -0.5}, pi)
	assert.Equal(t, ega2d.Scalar[float64]{S: 1}, p.Gpr(pi))

	s, err := ega2d.Scalar[float64]{S: 4}.Inv()
	require.NoError(t, err)
	assert.Equal(t, ega2d.Scalar[float64]{S: 0.25}, s)

	e := ega2d.MVecE[float64]{S: 1, PS: 2}
	ei, err := e.Inv()
	require.NoError(t, err)
	assertMVec(t, one, e.Gpr(ei).MVec())
	assertMVec(t, one, ei.Gpr(e).MVec())

	f := newFixture()
	for n := 0; n < 10; n++ {
		m := f.mvec()
		mi, err := m.Inv()
		require.NoError(t, err)
		if mi.Nrm() > 1e3 {
			continue
		}
		assert.True(t, one.Sub(m.Gpr(mi)).Nrm() < 1e-8, "m·m⁻¹")
		assert.True(t, one.Sub(mi.Gpr(m)).Nrm() < 1e-8, "m⁻¹·m")
	}

	_, err = vec{}.Inv()
	assert.ErrorIs(t, err, core.ErrNotInvertible)
	_, err = ega2d.PScalar[float64]{}.Inv()
	assert.ErrorIs(t, err, core.ErrNotInvertible)
	// a scalar inverse is a plain division
	_, err = ega2d.Scalar[float64]{}.Inv()
	assert.ErrorIs(t, err, core.ErrDivisionByZero)
	assert.ErrorContains(t, err, "ega2d scalar")
	tiny, err := ega2d.Scalar[float64]{S: 1e-9}.Inv()
	require.NoError(t, err)
	assert.InDelta(t, 1e9, tiny.S, 1e-6)
	_, err = ega2d.MVecE[float64]{}.Inv()
	assert.ErrorIs(t, err, core.ErrNotInvertible)

	// 1+e1 is a zero divisor: (1+e1)(1−e1) = 0
	_, err = ega2d.MVec[float64]{S: 1, X: 1}.Inv()
	assert.ErrorIs(t, err, core.ErrNotInvertible)
	_, err = ega2d.MVec[float64]{S: 1, X: 1}.Inv(core.WithPermissive())
	assert.NoError(t, err)
}

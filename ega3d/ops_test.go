// SPDX-License-Identifier: MIT
package ega3d_test

import (
	"testing"

	"github.com/Daniel-G-W-Hug/ga-sub005/core"
	"github.com/Daniel-G-W-Hug/ga-sub005/ega3d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInvolutions checks grade signs per type against the full multivector.
func TestInvolutions(t *testing.T) {
	f := newFixture()
	m := f.mvec()
	assertMVec(t, ega3d.MVec[float64]{S: m.S, V: m.V, B: m.B.Neg(), PS: -m.PS}, m.Rev())
	assertMVec(t, ega3d.MVec[float64]{S: m.S, V: m.V.Neg(), B: m.B, PS: -m.PS}, m.GrInv())
	assertMVec(t, ega3d.MVec[float64]{S: m.S, V: m.V.Neg(), B: m.B.Neg(), PS: m.PS}, m.Conj())
	assertMVec(t, m, m.Rev().Rev())

	assert.Equal(t, m.Rev().Even(), m.Even().Rev())
	assert.Equal(t, m.Conj().Even(), m.Even().Conj())
	assert.Equal(t, m.GrInv().Even(), m.Even().GrInv())
	assertMVec(t, m.Rev().Odd().MVec(), m.Odd().Rev().MVec())
	assertMVec(t, m.Conj().Odd().MVec(), m.Odd().Conj().MVec())
	assertMVec(t, m.GrInv().Odd().MVec(), m.Odd().GrInv().MVec())
	assert.Equal(t, m.Rev().Gr2(), m.B.Rev())
	assert.Equal(t, m.Conj().Gr2(), m.B.Conj())
	assert.Equal(t, m.GrInv().Gr3(), m.Gr3().GrInv())
	assert.Equal(t, m.Conj().Gr3(), m.Gr3().Conj())
}

// TestComplements: in three dimensions left and right complements agree and
// applying one twice is the identity.
func TestComplements(t *testing.T) {
	v := vec{X: 1, Y: 2, Z: 3}
	assert.Equal(t, bivec{X: 1, Y: 2, Z: 3}, v.RCmpl())
	assert.Equal(t, v.RCmpl(), v.LCmpl())
	assert.Equal(t, ega3d.PScalar[float64]{PS: 14}, v.WdgBiVec(v.RCmpl()))
	assert.Equal(t, v, v.RCmpl().RCmpl())
	assert.Equal(t, v, v.RCmpl().LCmpl())

	s := ega3d.Scalar[float64]{S: 2}
	assert.Equal(t, ega3d.PScalar[float64]{PS: 2}, s.RCmpl())
	assert.Equal(t, s, s.RCmpl().RCmpl())
	assert.Equal(t, s, s.LCmpl().LCmpl())

	f := newFixture()
	m := f.mvec()
	assertMVec(t, m, m.RCmpl().RCmpl())
	assertMVec(t, m.RCmpl(), m.LCmpl())
}

// TestDual_Conventions: Macdonald multiplies by I⁻¹ from the right, the other
// convention by I from the left; in 3D they differ by a sign.
func TestDual_Conventions(t *testing.T) {
	e1 := vec{X: 1}
	assert.Equal(t, bivec{X: -1}, e1.Dual(core.Macdonald))
	assert.Equal(t, bivec{X: 1}, e1.Dual(core.HestenesDoranLasenby))
	assert.Equal(t, vec{X: 1}, bivec{X: 1}.Dual(core.Macdonald))
	assert.Equal(t, vec{X: -1}, bivec{X: 1}.Dual(core.HestenesDoranLasenby))
	assert.Equal(t, ega3d.PScalar[float64]{PS: -1}, ega3d.Scalar[float64]{S: 1}.Dual(core.Macdonald))
	assert.Equal(t, ega3d.Scalar[float64]{S: 1}, ega3d.PScalar[float64]{PS: 1}.Dual(core.Macdonald))

	f := newFixture()
	m := f.mvec()
	assertMVec(t, m.Dual(core.Macdonald).Neg(), m.Dual(core.HestenesDoranLasenby))
	assertMVec(t, m.GprPScalar(ega3d.PScalar[float64]{PS: -1}), m.Dual(core.Macdonald))
}

// TestInverses checks x·x⁻¹ = 1 per type and the failure cases.
func TestInverses(t *testing.T) {
	one := ega3d.MVec[float64]{S: 1}
	f := newFixture()
	for n := 0; n < 10; n++ {
		v, b, e, u, m := f.vec(), f.bivec(), f.even(), f.odd(), f.mvec()

		vi, err := v.Inv()
		require.NoError(t, err)
		assertMVec(t, one, v.Gpr(vi).MVec())

		bi, err := b.Inv()
		require.NoError(t, err)
		assertMVec(t, one, b.Gpr(bi).MVec())

		ei, err := e.Inv()
		require.NoError(t, err)
		assertMVec(t, one, e.Gpr(ei).MVec())

		// general inverses of near-singular draws are skipped
		ui, err := u.Inv()
		require.NoError(t, err)
		if ui.Nrm() < 1e3 {
			assert.True(t, one.Sub(u.Gpr(ui).MVec()).Nrm() < 1e-8, "u·u⁻¹")
		}

		mi, err := m.Inv()
		require.NoError(t, err)
		if mi.Nrm() < 1e3 {
			assert.True(t, one.Sub(m.Gpr(mi)).Nrm() < 1e-8, "m·m⁻¹")
			assert.True(t, one.Sub(mi.Gpr(m)).Nrm() < 1e-8, "m⁻¹·m")
		}
	}

	p, err := ega3d.PScalar[float64]{PS: 2}.Inv()
	require.NoError(t, err)
	assert.Equal(t, ega3d.Scalar[float64]{S: 1}, ega3d.PScalar[float64]{PS: 2}.Gpr(p))

	_, err = vec{}.Inv()
	assert.ErrorIs(t, err, core.ErrNotInvertible)
	_, err = bivec{}.Inv()
	assert.ErrorIs(t, err, core.ErrNotInvertible)
	_, err = ega3d.PScalar[float64]{}.Inv()
	assert.ErrorIs(t, err, core.ErrNotInvertible)
	// a scalar inverse is a plain division
	_, err = ega3d.Scalar[float64]{}.Inv()
	assert.ErrorIs(t, err, core.ErrDivisionByZero)
	assert.ErrorContains(t, err, "ega3d scalar")
	tiny, err := ega3d.Scalar[float64]{S: 1e-9}.Inv()
	require.NoError(t, err)
	assert.InDelta(t, 1e9, tiny.S, 1e-6)
	_, err = ega3d.MVecE[float64]{}.Inv()
	assert.ErrorIs(t, err, core.ErrNotInvertible)
	_, err = ega3d.MVec[float64]{S: 1, V: vec{X: 1}}.Inv()
	assert.ErrorIs(t, err, core.ErrNotInvertible)
	_, err = ega3d.MVecU[float64]{}.Inv()
	assert.ErrorIs(t, err, core.ErrNotInvertible)
}

// TestNorms covers magnitudes and normalization of each type.
func TestNorms(t *testing.T) {
	assert.Equal(t, 3.0, vec{X: 1, Y: 2, Z: 2}.Nrm())
	assert.Equal(t, 3.0, bivec{X: 2, Y: 1, Z: 2}.Nrm())
	assert.Equal(t, 2.0, ega3d.PScalar[float64]{PS: -2}.Nrm())
	assert.Equal(t, 3.0, ega3d.MVecE[float64]{S: 1, B: bivec{Y: 2, Z: 2}}.Nrm())
	assert.Equal(t, 3.0, ega3d.MVecU[float64]{V: vec{X: 2, Y: 2}, PS: 1}.Nrm())
	assert.InDelta(t, 2, ega3d.MVec[float64]{S: 1, V: vec{X: 1}, B: bivec{Z: 1}, PS: 1}.Nrm(), tol)

	u, err := vec{X: 3, Y: 4}.Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 1, u.Nrm(), tol)
	bu, err := bivec{Z: -5}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, bivec{Z: -1}, bu)
	_, err = bivec{}.Normalize()
	assert.ErrorIs(t, err, core.ErrDivisionByZero)
	_, err = ega3d.MVecE[float64]{}.Normalize()
	assert.ErrorIs(t, err, core.ErrDivisionByZero)
}

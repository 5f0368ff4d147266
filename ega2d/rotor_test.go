// SPDX-License-Identifier: MIT
package ega2d_test

import (
	"math"
	"testing"

	"github.com/Daniel-G-W-Hug/ga-sub005/core"
	"github.com/Daniel-G-W-Hug/ga-sub005/ega2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRotor_QuarterTurn turns e1 into e2 with the rotor of I and π/2.
func TestRotor_QuarterTurn(t *testing.T) {
	r, err := ega2d.Rotor(ega2d.PScalar[float64]{PS: 1}, math.Pi/2)
	require.NoError(t, err)
	assertVec(t, vec{Y: 1}, ega2d.Rotate(vec{X: 1}, r))
	assertVec(t, vec{Y: 1}, ega2d.RotateOpt(vec{X: 1}, r))

	// the plane's magnitude does not matter, its orientation does
	r3, err := ega2d.Rotor(ega2d.PScalar[float64]{PS: 3}, math.Pi/2)
	require.NoError(t, err)
	assert.True(t, r.Eq(r3))
	rm, err := ega2d.Rotor(ega2d.PScalar[float64]{PS: -1}, math.Pi/2)
	require.NoError(t, err)
	assertVec(t, vec{Y: -1}, ega2d.Rotate(vec{X: 1}, rm))

	_, err = ega2d.Rotor(ega2d.PScalar[float64]{}, 1)
	assert.ErrorIs(t, err, core.ErrDivisionByZero)
}

// TestRotor_Algebra covers unit norm, composition and the exponential.
func TestRotor_Algebra(t *testing.T) {
	a, b := 0.3, 1.1
	ra, rb := ega2d.NewRotor(a), ega2d.NewRotor(b)
	assert.InDelta(t, 1, ra.Nrm(), tol)
	assertMVec(t, ega2d.NewRotor(a+b).MVec(), ra.Gpr(rb).MVec())
	assertMVec(t, ega2d.MVec[float64]{S: 1}, ra.Gpr(ra.Rev()).MVec())

	e := ega2d.Exp(ega2d.PScalar[float64]{PS: math.Pi})
	assert.InDelta(t, -1, e.S, tol)
	assert.InDelta(t, 0, e.PS, tol)

	z := ra.Complex()
	assert.InDelta(t, math.Cos(a/2), real(z), tol)
	assert.InDelta(t, -math.Sin(a/2), imag(z), tol)
	// complex multiplication is the even-subalgebra product
	assertMVec(t, ra.Gpr(rb).MVec(), ega2d.MVecEFromComplex[float64](z*rb.Complex()).MVec())
}

// TestRotate_ClosedFormMatchesSandwich compares RotateOpt, Rotate, the matrix
// and RotateMVec on random input, including non-unit rotors.
func TestRotate_ClosedFormMatchesSandwich(t *testing.T) {
	f := newFixture()
	for n := 0; n < 25; n++ {
		v, r := f.vec(), f.even()
		want := ega2d.Rotate(v, r)
		assertVec(t, want, ega2d.RotateOpt(v, r))
		assertVec(t, want, ega2d.RotateMVec(v.MVec(), r).Gr1())

		y, err := r.Matrix().MulVec([]float64{v.X, v.Y})
		require.NoError(t, err)
		assertVec(t, want, vec{X: y[0], Y: y[1]})
	}

	// scalars and the pseudoscalar are invariant under rotation
	r := ega2d.NewRotor(0.7)
	m := ega2d.MVec[float64]{S: 2, PS: 3}
	assertMVec(t, m, ega2d.RotateMVec(m, r))
}

// TestAngle_Range covers the clamp to [0, π].
func TestAngle_Range(t *testing.T) {
	v := vec{X: 1, Y: 1}
	a, err := v.Angle(v.Scale(1e8))
	require.NoError(t, err)
	assert.InDelta(t, 0, a, 1e-7)
	a, err = v.Angle(vec{X: -1, Y: 0})
	require.NoError(t, err)
	assert.InDelta(t, 3*math.Pi/4, a, tol)
}

// SPDX-License-Identifier: MIT
package ega2d_test

import (
	"math"
	"testing"

	"github.com/Daniel-G-W-Hug/ga-sub005/core"
	"github.com/Daniel-G-W-Hug/ga-sub005/ega2d"
	"github.com/stretchr/testify/assert"
)

type vec = ega2d.Vec[float64]

// TestOrthonormalBasis covers e1·e2 = 0, e1∧e2 = I and their angle.
func TestOrthonormalBasis(t *testing.T) {
	e1, e2 := vec{X: 1}, vec{Y: 1}
	assert.Equal(t, ega2d.Scalar[float64]{}, e1.Dot(e2))
	assert.Equal(t, ega2d.PScalar[float64]{PS: 1}, e1.Wdg(e2))
	assert.Equal(t, ega2d.PScalar[float64]{PS: -1}, e2.Wdg(e1))

	angle, err := e1.Angle(e2)
	assert.NoError(t, err)
	assert.InDelta(t, math.Pi/2, angle, tol)

	angle, err = e1.Angle(vec{X: -3})
	assert.NoError(t, err)
	assert.InDelta(t, math.Pi, angle, tol)

	_, err = e1.Angle(vec{})
	assert.ErrorIs(t, err, core.ErrDivisionByZero)

	// I² = −1, while the scalar product of I with itself is +1
	i := ega2d.PScalar[float64]{PS: 1}
	assert.Equal(t, ega2d.Scalar[float64]{S: -1}, i.Gpr(i))
	assert.Equal(t, ega2d.Scalar[float64]{S: 1}, i.Dot(i))
}

// TestGpr_MatchesFullProduct checks every typed product against the product
// of the promoted multivectors, which also proves grade closure.
func TestGpr_MatchesFullProduct(t *testing.T) {
	f := newFixture()
	for n := 0; n < 25; n++ {
		v, w, p, e, m := f.vec(), f.vec(), f.ps(), f.even(), f.mvec()

		assertMVec(t, v.MVec().Gpr(w.MVec()), v.Gpr(w).MVec(), "v·w")
		assertMVec(t, v.MVec().Gpr(p.MVec()), v.GprPScalar(p).MVec(), "v·I")
		assertMVec(t, p.MVec().Gpr(v.MVec()), p.GprVec(v).MVec(), "I·v")
		assertMVec(t, v.MVec().Gpr(e.MVec()), v.GprMVecE(e).MVec(), "v·E")
		assertMVec(t, e.MVec().Gpr(v.MVec()), e.GprVec(v).MVec(), "E·v")
		assertMVec(t, e.MVec().Gpr(e.MVec()), e.Gpr(e).MVec(), "E·E")
		assertMVec(t, e.MVec().Gpr(p.MVec()), e.GprPScalar(p).MVec(), "E·I")
		assertMVec(t, p.MVec().Gpr(e.MVec()), p.GprMVecE(e).MVec(), "I·E")
		assertMVec(t, p.MVec().Gpr(p.MVec()), p.Gpr(p).MVec(), "I·I")
		assertMVec(t, v.MVec().Gpr(m), v.GprMVec(m), "v·M")
		assertMVec(t, m.Gpr(v.MVec()), m.GprVec(v), "M·v")
		assertMVec(t, m.Gpr(e.MVec()), m.GprMVecE(e), "M·E")
		assertMVec(t, e.MVec().Gpr(m), e.GprMVec(m), "E·M")
		assertMVec(t, m.Gpr(p.MVec()), m.GprPScalar(p), "M·I")
		assertMVec(t, p.MVec().Gpr(m), p.GprMVec(m), "I·M")

		// gpr = dot + wdg for vectors
		assertMVec(t, v.Dot(w).MVec().Add(v.Wdg(w).MVec()), v.Gpr(w).MVec(), "dot+wdg")
		assertMVec(t, v.Wdg(w).MVec(), v.MVec().Wdg(w.MVec()), "wdg")
		assertMVec(t, v.Cmt(w).MVec(), v.MVec().Cmt(w.MVec()), "cmt")
		assert.InDelta(t, v.Dot(w).S, v.MVec().Dot(w.MVec()).S, tol)
		assert.InDelta(t, e.NrmSq(), e.Dot(e).S, tol)
	}
}

// TestContractions verifies the vector-vector reduction to the scalar product
// and the vector-pseudoscalar values.
func TestContractions(t *testing.T) {
	f := newFixture()
	v, w := f.vec(), f.vec()
	assert.InDelta(t, v.Dot(w).S, v.MVec().LContract(w.MVec()).S, tol)
	assert.InDelta(t, v.Dot(w).S, v.MVec().RContract(w.MVec()).S, tol)

	e1, i := vec{X: 1}, ega2d.PScalar[float64]{PS: 1}
	assertVec(t, vec{Y: -1}, e1.LContractPScalar(i))
	assertVec(t, vec{Y: 1}, i.RContractVec(e1))
	assertVec(t, e1.LContractPScalar(i), e1.MVec().LContract(i.MVec()).Gr1())
}

// TestArithmetic covers the linear operations and checked division.
func TestArithmetic(t *testing.T) {
	a, b := vec{X: 1, Y: 2}, vec{X: 3, Y: -1}
	assert.Equal(t, vec{X: 4, Y: 1}, a.Add(b))
	assert.Equal(t, vec{X: -2, Y: 3}, a.Sub(b))
	assert.Equal(t, vec{X: -1, Y: -2}, a.Neg())
	assert.Equal(t, vec{X: 2, Y: 4}, a.Scale(2))

	d, err := a.Div(2)
	assert.NoError(t, err)
	assert.Equal(t, vec{X: 0.5, Y: 1}, d)
	_, err = a.Div(0)
	assert.ErrorIs(t, err, core.ErrDivisionByZero)
	assert.EqualError(t, err, "Div: ega2d vector divisor=0: core: division by zero")
	d, err = a.Div(0, core.WithPermissive())
	assert.NoError(t, err)
	assert.True(t, math.IsInf(d.X, 1))

	m := ega2d.MVecFromParts(ega2d.Scalar[float64]{S: 1}, a, ega2d.PScalar[float64]{PS: 3})
	assert.Equal(t, ega2d.MVec[float64]{S: 1, X: 1, Y: 2, PS: 3}, m)
	assert.Equal(t, a, m.Gr1())
	assert.Equal(t, ega2d.MVecE[float64]{S: 1, PS: 3}, m.Even())
	assert.True(t, m.Scale(2).Sub(m).Eq(m))
	assert.True(t, m.Neg().Add(m).Eq(ega2d.MVec[float64]{}))
	_, err = m.Div(0)
	assert.ErrorIs(t, err, core.ErrDivisionByZero)

	s := ega2d.Scalar[float64]{S: 2}
	assert.Equal(t, ega2d.Scalar[float64]{S: 3}, s.Add(ega2d.Scalar[float64]{S: 1}))
	_, err = s.Div(0)
	assert.Error(t, err)
	_, err = ega2d.PScalar[float64]{PS: 1}.Div(0)
	assert.Error(t, err)
	_, err = ega2d.MVecE[float64]{S: 1}.Div(0)
	assert.Error(t, err)
}

// TestConversions covers element-type conversion and mixed comparison.
func TestConversions(t *testing.T) {
	v := vec{X: 0.1, Y: 0.2}
	v32 := ega2d.ConvertVec[float32](v)
	assert.Equal(t, float32(0.1), v32.X)
	assert.True(t, ega2d.EqVecMixed(v, v32))
	assert.False(t, ega2d.EqVecMixed(v, ega2d.Vec[float32]{X: 0.1, Y: 0.3}))
	assert.Equal(t, v, ega2d.VecFromF64[float64](v.F64()))

	m := ega2d.MVec[float64]{S: 1, X: 2, Y: 3, PS: 4}
	assert.Equal(t, ega2d.MVec[float32]{S: 1, X: 2, Y: 3, PS: 4}, ega2d.ConvertMVec[float32](m))
	assert.Equal(t, ega2d.MVecE[float32]{S: 1, PS: 4}, ega2d.ConvertMVecE[float32](m.Even()))
	assert.Equal(t, ega2d.Scalar[float32]{S: 1}, ega2d.ConvertScalar[float32](m.Gr0()))
	assert.Equal(t, ega2d.PScalar[float32]{PS: 4}, ega2d.ConvertPScalar[float32](m.Gr2()))
}

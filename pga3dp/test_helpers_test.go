// SPDX-License-Identifier: MIT
// Package pga3dp_test contains shared fixtures.

package pga3dp_test

import (
	"math"
	"math/rand"

	"github.com/Daniel-G-W-Hug/ga-sub005/pga3dp"
	"github.com/stretchr/testify/assert"
)

// tol is the absolute tolerance for chained products of values in [-1, 1].
const tol = 1e-12

const seed = 17

type (
	vec    = pga3dp.Vec[float64]
	bivec  = pga3dp.BiVec[float64]
	trivec = pga3dp.TriVec[float64]
	motor  = pga3dp.MVecE[float64]
)

type fixture struct{ rng *rand.Rand }

func newFixture() fixture { return fixture{rng: rand.New(rand.NewSource(seed))} }

func (f fixture) val() float64 { return 2*f.rng.Float64() - 1 }

func (f fixture) vec() vec { return vec{X: f.val(), Y: f.val(), Z: f.val(), W: f.val()} }

// point RETURNS a random unitized point.
func (f fixture) point() vec { return pga3dp.Point(f.val(), f.val(), f.val()) }

func (f fixture) bivec() bivec {
	return bivec{Vx: f.val(), Vy: f.val(), Vz: f.val(), Mx: f.val(), My: f.val(), Mz: f.val()}
}

// line RETURNS a random line, the join of two random points.
func (f fixture) line() bivec { return f.point().Wdg(f.point()) }

func (f fixture) trivec() trivec { return trivec{X: f.val(), Y: f.val(), Z: f.val(), W: f.val()} }

func (f fixture) motor() motor { return motor{S: f.val(), B: f.bivec(), PS: f.val()} }

// unitMotor RETURNS a random proper motor: a rotation about a random line
// composed with a random translation.
func (f fixture) unitMotor() motor {
	m, err := pga3dp.Motor(f.line(), math.Pi*f.val())
	if err != nil {
		panic(err)
	}

	return pga3dp.Translator(f.val(), f.val(), f.val()).Rgpr(m)
}

func (f fixture) mvec() pga3dp.MVec[float64] {
	return pga3dp.MVec[float64]{S: f.val(), V: f.vec(), B: f.bivec(), Tri: f.trivec(), PS: f.val()}
}

func assertVec(t assert.TestingT, want, got vec, msgAndArgs ...interface{}) {
	assert.InDelta(t, want.X, got.X, tol, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, tol, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, tol, msgAndArgs...)
	assert.InDelta(t, want.W, got.W, tol, msgAndArgs...)
}

func assertBiVec(t assert.TestingT, want, got bivec, msgAndArgs ...interface{}) {
	assert.InDelta(t, want.Vx, got.Vx, tol, msgAndArgs...)
	assert.InDelta(t, want.Vy, got.Vy, tol, msgAndArgs...)
	assert.InDelta(t, want.Vz, got.Vz, tol, msgAndArgs...)
	assert.InDelta(t, want.Mx, got.Mx, tol, msgAndArgs...)
	assert.InDelta(t, want.My, got.My, tol, msgAndArgs...)
	assert.InDelta(t, want.Mz, got.Mz, tol, msgAndArgs...)
}

func assertTriVec(t assert.TestingT, want, got trivec, msgAndArgs ...interface{}) {
	assertVec(t, vec(want), vec(got), msgAndArgs...)
}

func assertMVec(t assert.TestingT, want, got pga3dp.MVec[float64], msgAndArgs ...interface{}) {
	assert.InDelta(t, want.S, got.S, tol, msgAndArgs...)
	assertVec(t, want.V, got.V, msgAndArgs...)
	assertBiVec(t, want.B, got.B, msgAndArgs...)
	assertTriVec(t, want.Tri, got.Tri, msgAndArgs...)
	assert.InDelta(t, want.PS, got.PS, tol, msgAndArgs...)
}

// assertPoint compares the Euclidean positions of two finite points.
func assertPoint(t assert.TestingT, want, got vec, msgAndArgs ...interface{}) {
	assert.InDelta(t, want.X/want.W, got.X/got.W, 1e-9, msgAndArgs...)
	assert.InDelta(t, want.Y/want.W, got.Y/got.W, 1e-9, msgAndArgs...)
	assert.InDelta(t, want.Z/want.W, got.Z/got.W, 1e-9, msgAndArgs...)
}

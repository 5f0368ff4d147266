// SPDX-License-Identifier: MIT
// Package pga2dp_test contains shared fixtures.

package pga2dp_test

import (
	"math"
	"math/rand"

	"github.com/Daniel-G-W-Hug/ga-sub005/pga2dp"
	"github.com/stretchr/testify/assert"
)

// tol is the absolute tolerance for chained products of values in [-1, 1].
const tol = 1e-12

const seed = 11

type (
	vec   = pga2dp.Vec[float64]
	bivec = pga2dp.BiVec[float64]
	motor = pga2dp.MVecU[float64]
)

type fixture struct{ rng *rand.Rand }

func newFixture() fixture { return fixture{rng: rand.New(rand.NewSource(seed))} }

func (f fixture) val() float64 { return 2*f.rng.Float64() - 1 }

func (f fixture) vec() vec { return vec{X: f.val(), Y: f.val(), Z: f.val()} }

func (f fixture) bivec() bivec { return bivec{X: f.val(), Y: f.val(), Z: f.val()} }

func (f fixture) motor() motor { return motor{V: f.vec(), PS: f.val()} }

// unitMotor RETURNS a random motor with m3² + s² = 1.
func (f fixture) unitMotor() motor {
	m := f.motor()
	n := math.Hypot(m.V.Z, m.PS)

	return m.Scale(1 / n)
}

func (f fixture) mvec() pga2dp.MVec[float64] {
	return pga2dp.MVec[float64]{S: f.val(), V: f.vec(), B: f.bivec(), PS: f.val()}
}

func assertVec(t assert.TestingT, want, got vec, msgAndArgs ...interface{}) {
	assert.InDelta(t, want.X, got.X, tol, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, tol, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, tol, msgAndArgs...)
}

func assertBiVec(t assert.TestingT, want, got bivec, msgAndArgs ...interface{}) {
	assertVec(t, vec(want), vec(got), msgAndArgs...)
}

func assertMVec(t assert.TestingT, want, got pga2dp.MVec[float64], msgAndArgs ...interface{}) {
	assert.InDelta(t, want.S, got.S, tol, msgAndArgs...)
	assertVec(t, want.V, got.V, msgAndArgs...)
	assertBiVec(t, want.B, got.B, msgAndArgs...)
	assert.InDelta(t, want.PS, got.PS, tol, msgAndArgs...)
}

// assertPoint compares the Euclidean positions of two finite points.
func assertPoint(t assert.TestingT, want, got vec, msgAndArgs ...interface{}) {
	assert.InDelta(t, want.X/want.Z, got.X/got.Z, 1e-9, msgAndArgs...)
	assert.InDelta(t, want.Y/want.Z, got.Y/got.Z, 1e-9, msgAndArgs...)
}

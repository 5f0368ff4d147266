// SPDX-License-Identifier: MIT
// Package ega3d_test contains shared fixtures.

package ega3d_test

import (
	"math/rand"

	"github.com/Daniel-G-W-Hug/ga-sub005/ega3d"
	"github.com/stretchr/testify/assert"
)

// tol is the absolute tolerance for chained products of values in [-1, 1].
const tol = 1e-12

const seed = 7

type (
	vec   = ega3d.Vec[float64]
	bivec = ega3d.BiVec[float64]
)

type fixture struct{ rng *rand.Rand }

func newFixture() fixture { return fixture{rng: rand.New(rand.NewSource(seed))} }

func (f fixture) val() float64 { return 2*f.rng.Float64() - 1 }

func (f fixture) vec() vec { return vec{X: f.val(), Y: f.val(), Z: f.val()} }

func (f fixture) bivec() bivec { return bivec{X: f.val(), Y: f.val(), Z: f.val()} }

func (f fixture) ps() ega3d.PScalar[float64] { return ega3d.PScalar[float64]{PS: f.val()} }

func (f fixture) even() ega3d.MVecE[float64] { return ega3d.MVecE[float64]{S: f.val(), B: f.bivec()} }

func (f fixture) odd() ega3d.MVecU[float64] { return ega3d.MVecU[float64]{V: f.vec(), PS: f.val()} }

func (f fixture) mvec() ega3d.MVec[float64] {
	return ega3d.MVec[float64]{S: f.val(), V: f.vec(), B: f.bivec(), PS: f.val()}
}

func assertVec(t assert.TestingT, want, got vec, msgAndArgs ...interface{}) {
	assert.InDelta(t, want.X, got.X, tol, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, tol, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, tol, msgAndArgs...)
}

func assertBiVec(t assert.TestingT, want, got bivec, msgAndArgs ...interface{}) {
	assertVec(t, vec(want), vec(got), msgAndArgs...)
}

func assertMVec(t assert.TestingT, want, got ega3d.MVec[float64], msgAndArgs ...interface{}) {
	assert.InDelta(t, want.S, got.S, tol, msgAndArgs...)
	assertVec(t, want.V, got.V, msgAndArgs...)
	assertBiVec(t, want.B, got.B, msgAndArgs...)
	assert.InDelta(t, want.PS, got.PS, tol, msgAndArgs...)
}

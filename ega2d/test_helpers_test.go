// SPDX-License-Identifier: MIT
// Package ega2d_test contains shared fixtures.

package ega2d_test

import (
	"math/rand"

	"github.com/Daniel-G-W-Hug/ga-sub005/ega2d"
	"github.com/stretchr/testify/assert"
)

// tol is the absolute tolerance for chained products of values in [-1, 1].
const tol = 1e-12

const seed = 42

type fixture struct{ rng *rand.Rand }

func newFixture() fixture { return fixture{rng: rand.New(rand.NewSource(seed))} }

func (f fixture) val() float64 { return 2*f.rng.Float64() - 1 }

func (f fixture) vec() ega2d.Vec[float64] { return ega2d.Vec[float64]{X: f.val(), Y: f.val()} }

func (f fixture) ps() ega2d.PScalar[float64] { return ega2d.PScalar[float64]{PS: f.val()} }

func (f fixture) even() ega2d.MVecE[float64] { return ega2d.MVecE[float64]{S: f.val(), PS: f.val()} }

func (f fixture) mvec() ega2d.MVec[float64] {
	return ega2d.MVec[float64]{S: f.val(), X: f.val(), Y: f.val(), PS: f.val()}
}

func assertMVec(t assert.TestingT, want, got ega2d.MVec[float64], msgAndArgs ...interface{}) {
	assert.InDelta(t, want.S, got.S, tol, msgAndArgs...)
	assert.InDelta(t, want.X, got.X, tol, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, tol, msgAndArgs...)
	assert.InDelta(t, want.PS, got.PS, tol, msgAndArgs...)
}

func assertVec(t assert.TestingT, want, got ega2d.Vec[float64], msgAndArgs ...interface{}) {
	assert.InDelta(t, want.X, got.X, tol, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, tol, msgAndArgs...)
}

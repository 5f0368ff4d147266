// Package ega2d_test provides benchmarks of the typed products and rotations.
package ega2d_test

import (
	"testing"

	"github.com/Daniel-G-W-Hug/ga-sub005/ega2d"
)

var (
	sinkVec  ega2d.Vec[float64]
	sinkMVec ega2d.MVec[float64]
)

func BenchmarkRotate(b *testing.B) {
	f := newFixture()
	v, r := f.vec(), ega2d.NewRotor(0.5)
	b.Run("sandwich", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkVec = ega2d.Rotate(v, r)
		}
	})
	b.Run("closed", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkVec = ega2d.RotateOpt(v, r)
		}
	})
}

func BenchmarkMVecGpr(b *testing.B) {
	f := newFixture()
	x, y := f.mvec(), f.mvec()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkMVec = x.Gpr(y)
	}
}

// Package ega3d_test provides benchmarks of rotations.
package ega3d_test

import (
	"testing"

	"github.com/Daniel-G-W-Hug/ga-sub005/ega3d"
)

var sinkVec ega3d.Vec[float64]

func BenchmarkRotate(b *testing.B) {
	f := newFixture()
	v := f.vec()
	r, err := ega3d.Rotor(f.bivec(), 0.5)
	if err != nil {
		b.Fatal(err)
	}
	b.Run("sandwich", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkVec = ega3d.Rotate(v, r)
		}
	})
	b.Run("closed", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkVec = ega3d.RotateOpt(v, r)
		}
	})
}

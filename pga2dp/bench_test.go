// Package pga2dp_test provides benchmarks of motor application.
package pga2dp_test

import (
	"testing"

	"github.com/Daniel-G-W-Hug/ga-sub005/pga2dp"
)

var (
	sinkVec   pga2dp.Vec[float64]
	sinkBiVec pga2dp.BiVec[float64]
)

func BenchmarkMove(b *testing.B) {
	f := newFixture()
	p, l, m := f.vec(), f.bivec(), f.unitMotor()
	b.Run("sandwich", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkVec = pga2dp.Move(p, m)
		}
	})
	b.Run("closed", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkVec = pga2dp.MoveOpt(p, m)
		}
	})
	b.Run("line", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkBiVec = pga2dp.MoveOptBiVec(l, m)
		}
	})
}

func BenchmarkMeet(b *testing.B) {
	f := newFixture()
	l, k := f.bivec(), f.bivec()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkVec = l.Meet(k)
	}
}

// SPDX-License-Identifier: MIT
package pga2dp_test

import (
	"math"
	"testing"

	"github.com/Daniel-G-W-Hug/ga-sub005/core"
	"github.com/Daniel-G-W-Hug/ga-sub005/matrix"
	"github.com/Daniel-G-W-Hug/ga-sub005/pga2dp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/num/dualcmplx"
)

// MotorSuite exercises motors built from points, translations and lines.
type MotorSuite struct {
	suite.Suite
	f fixture
}

func (s *MotorSuite) SetupTest() { s.f = newFixture() }

// TestRotationAboutOrigin turns (1, 0) counterclockwise into (0, 1).
func (s *MotorSuite) TestRotationAboutOrigin() {
	m, err := pga2dp.Motor(pga2dp.Point(0.0, 0.0), math.Pi/2)
	require.NoError(s.T(), err)
	assertVec(s.T(), vec{Y: 1, Z: 1}, pga2dp.Move(pga2dp.Point(1.0, 0.0), m))
	assertVec(s.T(), vec{Y: 1, Z: 1}, pga2dp.MoveOpt(pga2dp.Point(1.0, 0.0), m))
	s.InDelta(1, m.WeightNrm(), tol)
}

// TestRotationAboutPoint keeps the center fixed and moves the rest.
func (s *MotorSuite) TestRotationAboutPoint() {
	c := vec{X: 2, Y: 2, Z: 2}
	m, err := pga2dp.Motor(c, math.Pi)
	require.NoError(s.T(), err)
	assertPoint(s.T(), pga2dp.Point(1.0, 1.0), pga2dp.MoveOpt(pga2dp.Point(1.0, 1.0), m))
	assertPoint(s.T(), pga2dp.Point(2.0, 1.0), pga2dp.MoveOpt(pga2dp.Point(0.0, 1.0), m))

	_, err = pga2dp.Motor(pga2dp.Direction(1.0, 0.0), 1)
	s.ErrorIs(err, core.ErrNotUnitizable)
}

// TestTranslator moves points but leaves directions alone.
func (s *MotorSuite) TestTranslator() {
	m := pga2dp.Translator(1.0, 2.0)
	assertVec(s.T(), pga2dp.Point(1.0, 2.0), pga2dp.Move(pga2dp.Point(0.0, 0.0), m))
	assertVec(s.T(), pga2dp.Point(4.0, 1.0), pga2dp.MoveOpt(pga2dp.Point(3.0, -1.0), m))
	assertVec(s.T(), pga2dp.Direction(1.0, 1.0), pga2dp.MoveOpt(pga2dp.Direction(1.0, 1.0), m))

	// the x-axis moves up to y = 2
	l := pga2dp.MoveOptBiVec(bivec{Y: 1}, m)
	assertBiVec(s.T(), bivec{Y: 1, Z: -2}, l)
	s.Zero(pga2dp.Point(5.0, 2.0).RwdgBiVec(l).S)
}

// TestComposition: Rgpr composes motors with the right operand first.
func (s *MotorSuite) TestComposition() {
	rot, err := pga2dp.Motor(pga2dp.Point(0.0, 0.0), math.Pi/2)
	require.NoError(s.T(), err)
	tr := pga2dp.Translator(1.0, 0.0)

	// translate first, then rotate: (0,0) -> (1,0) -> (0,1)
	m := rot.Rgpr(tr)
	assertPoint(s.T(), pga2dp.Point(0.0, 1.0), pga2dp.MoveOpt(pga2dp.Point(0.0, 0.0), m))
	// rotate first, then translate: (0,0) -> (0,0) -> (1,0)
	m = tr.Rgpr(rot)
	assertPoint(s.T(), pga2dp.Point(1.0, 0.0), pga2dp.MoveOpt(pga2dp.Point(0.0, 0.0), m))

	id := pga2dp.IdentityMotor[float64]()
	for n := 0; n < 10; n++ {
		u := s.f.motor()
		assertMVec(s.T(), u.MVec(), u.Rgpr(id).MVec())
		assertMVec(s.T(), u.MVec(), id.Rgpr(u).MVec())
	}
}

// TestMotorFromLines: two reflections compose into a motor.
func (s *MotorSuite) TestMotorFromLines() {
	h := math.Sqrt(0.5)
	xAxis, diagonal := bivec{Y: 1}, bivec{X: -h, Y: h}
	m := pga2dp.MotorFromLines(xAxis, diagonal)
	assertVec(s.T(), pga2dp.Point(0.0, 1.0), pga2dp.MoveOpt(pga2dp.Point(1.0, 0.0), m))

	for n := 0; n < 10; n++ {
		l1, l2 := s.f.bivec(), s.f.bivec()
		p := s.f.vec()
		m := pga2dp.MotorFromLines(l1, l2)
		assertVec(s.T(), p.ReflectOn(l1).ReflectOn(l2), pga2dp.MoveOpt(p, m))
	}

	// parallel lines one apart translate by two
	m = pga2dp.MotorFromLines(bivec{X: 1}, bivec{X: 1, Z: -1})
	assertPoint(s.T(), pga2dp.Point(2.0, 3.0), pga2dp.MoveOpt(pga2dp.Point(0.0, 3.0), m))
}

// TestMoveOpt_MatchesSandwich compares the closed forms and the matrix with
// the kernel sandwich on random, non-unit motors.
func (s *MotorSuite) TestMoveOpt_MatchesSandwich() {
	for n := 0; n < 25; n++ {
		m, p, l := s.f.motor(), s.f.vec(), s.f.bivec()

		want := pga2dp.Move(p, m)
		assertVec(s.T(), want, pga2dp.MoveOpt(p, m))
		assertBiVec(s.T(), pga2dp.MoveBiVec(l, m), pga2dp.MoveOptBiVec(l, m))

		y, err := m.Matrix().MulVec([]float64{p.X, p.Y, p.Z})
		require.NoError(s.T(), err)
		assertVec(s.T(), want, vec{X: y[0], Y: y[1], Z: y[2]})

		// incidence survives the motion
		on := pga2dp.OrthoProjPointLine(pga2dp.Point(0.0, 0.0), l)
		moved := pga2dp.MoveOpt(on, m)
		s.InDelta(0, moved.RwdgBiVec(pga2dp.MoveOptBiVec(l, m)).S, 1e-9)
	}
}

// TestUnitize scales the motor so that its rotational part has norm 1.
func (s *MotorSuite) TestUnitize() {
	m, err := motor{V: vec{X: 1, Y: 2, Z: 3}, PS: 4}.Unitize()
	require.NoError(s.T(), err)
	s.InDelta(1, m.WeightNrm(), tol)
	s.InDelta(0.2, m.V.X, tol)

	_, err = pga2dp.Translator(1.0, 1.0).Scale(0).Unitize()
	s.ErrorIs(err, core.ErrNotUnitizable)
}

// TestDualCmplx checks that the dual complex number acts like the motor.
func (s *MotorSuite) TestDualCmplx() {
	for n := 0; n < 10; n++ {
		m, p := s.f.unitMotor(), s.f.vec()
		p.Z = 1

		z := m.DualCmplx()
		s.InDelta(1, dualcmplx.Abs(z), 1e-12)
		pp := dualcmplx.Mul(dualcmplx.Mul(z, dualcmplx.Number{Real: 1, Dual: complex(p.X, p.Y)}), dualcmplx.Conj(z))
		want := pga2dp.MoveOpt(p, m)
		s.InDelta(want.X, real(pp.Dual), 1e-12)
		s.InDelta(want.Y, imag(pp.Dual), 1e-12)

		back, err := pga2dp.MotorFromDualCmplx[float64](z)
		require.NoError(s.T(), err)
		assertMVec(s.T(), m.MVec(), back.MVec())
	}

	_, err := pga2dp.MotorFromDualCmplx[float64](dualcmplx.Number{Dual: 1})
	s.ErrorIs(err, core.ErrNotUnitizable)
}

// TestMatrix_Inverse undoes rotations with the inverse of their matrix.
func (s *MotorSuite) TestMatrix_Inverse() {
	for _, theta := range []float64{math.Pi / 2, math.Pi} {
		m, err := pga2dp.Motor(pga2dp.Point(1.0, 1.0), theta)
		require.NoError(s.T(), err)
		a := m.Matrix()
		inv, err := matrix.Inverse(a)
		require.NoError(s.T(), err)
		prod, err := matrix.Mul(inv, a)
		require.NoError(s.T(), err)
		id, _ := matrix.Identity(3)
		s.True(matrix.Equal(id, prod, 1e-12), "θ = %g", theta)

		p := pga2dp.MoveOpt(pga2dp.Point(3.0, -2.0), m)
		back, err := inv.MulVec([]float64{p.X, p.Y, p.Z})
		require.NoError(s.T(), err)
		assertVec(s.T(), pga2dp.Point(3.0, -2.0), vec{X: back[0], Y: back[1], Z: back[2]})
	}
}

func TestMotorSuite(t *testing.T) {
	suite.Run(t, new(MotorSuite))
}

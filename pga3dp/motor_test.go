// SPDX-License-Identifier: MIT
package pga3dp_test

import (
	"math"
	"testing"

	"github.com/Daniel-G-W-Hug/ga-sub005/core"
	"github.com/Daniel-G-W-Hug/ga-sub005/matrix"
	"github.com/Daniel-G-W-Hug/ga-sub005/pga3dp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

// MotorSuite exercises rotations, translations and their compositions.
type MotorSuite struct {
	suite.Suite
	f fixture
}

func (s *MotorSuite) SetupTest() { s.f = newFixture() }

func (s *MotorSuite) zAxis() bivec {
	return pga3dp.LineFromPoints(pga3dp.Point(0.0, 0.0, 0.0), pga3dp.Point(0.0, 0.0, 1.0))
}

// TestRotationAboutAxis turns (1, 0, 0) a quarter turn about the z-axis.
func (s *MotorSuite) TestRotationAboutAxis() {
	m, err := pga3dp.Motor(s.zAxis(), math.Pi/2)
	require.NoError(s.T(), err)
	assertVec(s.T(), pga3dp.Point(0.0, 1.0, 0.0), pga3dp.Move(pga3dp.Point(1.0, 0.0, 0.0), m))
	assertVec(s.T(), pga3dp.Point(0.0, 1.0, 0.0), pga3dp.MoveOpt(pga3dp.Point(1.0, 0.0, 0.0), m))
	s.InDelta(1, m.WeightNrm(), tol)

	// a half turn about the vertical line through (1, 0, 0)
	axis := pga3dp.LineFromPoints(pga3dp.Point(1.0, 0.0, 0.0), pga3dp.Point(1.0, 0.0, 1.0))
	m, err = pga3dp.Motor(axis, math.Pi)
	require.NoError(s.T(), err)
	assertPoint(s.T(), pga3dp.Point(2.0, 0.0, 5.0), pga3dp.MoveOpt(pga3dp.Point(0.0, 0.0, 5.0), m))
	assertPoint(s.T(), pga3dp.Point(1.0, 0.0, -4.0), pga3dp.MoveOpt(pga3dp.Point(1.0, 0.0, -4.0), m))

	_, err = pga3dp.Motor(bivec{Mz: 1}, 1)
	s.ErrorIs(err, core.ErrNotUnitizable)
}

// TestTranslator moves points but leaves directions alone.
func (s *MotorSuite) TestTranslator() {
	m := pga3dp.Translator(1.0, 2.0, 3.0)
	assertVec(s.T(), pga3dp.Point(1.0, 2.0, 3.0), pga3dp.Move(pga3dp.Point(0.0, 0.0, 0.0), m))
	assertVec(s.T(), pga3dp.Point(4.0, 1.0, 3.0), pga3dp.MoveOpt(pga3dp.Point(3.0, -1.0, 0.0), m))
	assertVec(s.T(), pga3dp.Direction(1.0, 1.0, 1.0), pga3dp.MoveOpt(pga3dp.Direction(1.0, 1.0, 1.0), m))

	// the plane z = 0 moves up to z = 3
	assertTriVec(s.T(), trivec{Z: 1, W: -3}, pga3dp.MoveOptTriVec(pga3dp.Plane(0.0, 0.0, 1.0, 0.0), m))
	// the x-axis keeps its direction and passes through (0, 2, 3)
	l := pga3dp.MoveOptBiVec(bivec{Vx: 1}, m)
	assertBiVec(s.T(), pga3dp.LineThrough(pga3dp.Point(0.0, 2.0, 3.0).Euclid(), pga3dp.Direction(1.0, 0.0, 0.0).Euclid()), l)
}

// TestComposition: Rgpr composes motors with the right operand first.
func (s *MotorSuite) TestComposition() {
	rot, err := pga3dp.Motor(s.zAxis(), math.Pi/2)
	require.NoError(s.T(), err)
	tr := pga3dp.Translator(1.0, 2.0, 3.0)
	origin := pga3dp.Point(0.0, 0.0, 0.0)

	// translate first, then rotate
	assertPoint(s.T(), pga3dp.Point(-2.0, 1.0, 3.0), pga3dp.MoveOpt(origin, rot.Rgpr(tr)))
	// rotate first, then translate
	assertPoint(s.T(), pga3dp.Point(1.0, 2.0, 3.0), pga3dp.MoveOpt(origin, tr.Rgpr(rot)))

	id := pga3dp.IdentityMotor[float64]()
	for n := 0; n < 10; n++ {
		u, v, p := s.f.motor(), s.f.unitMotor(), s.f.point()
		assertMVec(s.T(), u.MVec(), u.Rgpr(id).MVec())
		assertMVec(s.T(), u.MVec(), id.Rgpr(u).MVec())
		w := s.f.unitMotor()
		assertPoint(s.T(), pga3dp.MoveOpt(pga3dp.MoveOpt(p, v), w), pga3dp.MoveOpt(p, w.Rgpr(v)))
	}
}

// TestMotorFromPlanes: two reflections compose into a motor.
func (s *MotorSuite) TestMotorFromPlanes() {
	h := math.Sqrt(0.5)
	yz, diagonal := pga3dp.Plane(1.0, 0.0, 0.0, 0.0), pga3dp.Plane(h, h, 0.0, 0.0)
	m := pga3dp.MotorFromPlanes(yz, diagonal)
	assertVec(s.T(), pga3dp.Point(0.0, 1.0, 0.0), pga3dp.MoveOpt(pga3dp.Point(1.0, 0.0, 0.0), m))
	assertVec(s.T(), pga3dp.Point(-1.0, 0.0, 0.0), pga3dp.MoveOpt(pga3dp.Point(0.0, 1.0, 0.0), m))

	// parallel planes one apart translate by two
	m = pga3dp.MotorFromPlanes(yz, pga3dp.Plane(1.0, 0.0, 0.0, -1.0))
	assertPoint(s.T(), pga3dp.Point(2.0, 3.0, 0.0), pga3dp.MoveOpt(pga3dp.Point(0.0, 3.0, 0.0), m))

	for n := 0; n < 10; n++ {
		t1, err := s.f.trivec().Unitize()
		require.NoError(s.T(), err)
		t2, err := s.f.trivec().Unitize()
		require.NoError(s.T(), err)
		p := s.f.point()
		assertVec(s.T(), p.ReflectOn(t1).ReflectOn(t2), pga3dp.MoveOpt(p, pga3dp.MotorFromPlanes(t1, t2)))
	}
}

// TestMoveOpt_MatchesSandwich compares the closed forms and the matrix with
// the kernel sandwich on random, non-unit motors.
func (s *MotorSuite) TestMoveOpt_MatchesSandwich() {
	for n := 0; n < 25; n++ {
		m, p, l, t := s.f.motor(), s.f.vec(), s.f.bivec(), s.f.trivec()

		want := pga3dp.Move(p, m)
		assertVec(s.T(), want, pga3dp.MoveOpt(p, m))
		assertBiVec(s.T(), pga3dp.MoveBiVec(l, m), pga3dp.MoveOptBiVec(l, m))
		assertTriVec(s.T(), pga3dp.MoveTriVec(t, m), pga3dp.MoveOptTriVec(t, m))

		y, err := m.Matrix().MulVec([]float64{p.X, p.Y, p.Z, p.W})
		require.NoError(s.T(), err)
		assertVec(s.T(), want, vec{X: y[0], Y: y[1], Z: y[2], W: y[3]})
	}
}

// TestMove_KeepsIncidence moves a point on a line inside a plane.
func (s *MotorSuite) TestMove_KeepsIncidence() {
	for n := 0; n < 25; n++ {
		m, a, b, c := s.f.unitMotor(), s.f.point(), s.f.point(), s.f.point()
		l, t := a.Wdg(b), a.Wdg(b).WdgVec(c)

		ma, ml, mt := pga3dp.MoveOpt(a, m), pga3dp.MoveOptBiVec(l, m), pga3dp.MoveOptTriVec(t, m)
		assertTriVec(s.T(), trivec{}, ml.WdgVec(ma))
		assertVec(s.T(), vec{}, ml.MeetPlane(mt))
		assertBiVec(s.T(), ml, ma.Wdg(pga3dp.MoveOpt(b, m)))
		s.InDelta(1, pga3dp.MoveOpt(a, m).W, 1e-12)

		d0, err := pga3dp.DistPoints(a, c).Ratio()
		require.NoError(s.T(), err)
		d1, err := pga3dp.DistPoints(ma, pga3dp.MoveOpt(c, m)).Ratio()
		require.NoError(s.T(), err)
		s.InDelta(d0, d1, 1e-12)
	}
}

// TestUnitize scales the motor to unit weight norm.
func (s *MotorSuite) TestUnitize() {
	m, err := motor{B: bivec{Vx: 1, Vy: 2, Vz: 2, Mx: 7}, PS: 4}.Unitize()
	require.NoError(s.T(), err)
	s.InDelta(1, m.WeightNrm(), tol)
	s.InDelta(0.2, m.B.Vx, tol)
	s.InDelta(1.4, m.B.Mx, tol)

	_, err = pga3dp.Translator(1.0, 1.0, 1.0).Scale(0).Unitize()
	s.ErrorIs(err, core.ErrNotUnitizable)
}

// TestDualQuat checks that the dual quaternion acts like the motor.
func (s *MotorSuite) TestDualQuat() {
	for n := 0; n < 10; n++ {
		m, p := s.f.unitMotor(), s.f.point()

		q := m.DualQuat()
		s.InDelta(1, dualquat.Abs(q).Real, 1e-12)
		x := dualquat.Number{Real: quat.Number{Real: 1}, Dual: quat.Number{Imag: p.X, Jmag: p.Y, Kmag: p.Z}}
		moved := dualquat.Mul(dualquat.Mul(q, x), dualquat.Conj(q))
		want := pga3dp.MoveOpt(p, m)
		s.InDelta(want.X, moved.Dual.Imag, 1e-12)
		s.InDelta(want.Y, moved.Dual.Jmag, 1e-12)
		s.InDelta(want.Z, moved.Dual.Kmag, 1e-12)

		back, err := pga3dp.MotorFromDualQuat[float64](q)
		require.NoError(s.T(), err)
		assertMVec(s.T(), m.MVec(), back.MVec())
	}

	// a non-unit motor converts to the same unit dual quaternion
	m := s.f.unitMotor()
	q1, q2 := m.DualQuat(), m.Scale(3).DualQuat()
	s.InDelta(q1.Real.Real, q2.Real.Real, 1e-12)
	s.InDelta(q1.Dual.Kmag, q2.Dual.Kmag, 1e-12)

	s.Equal(dualquat.Number{}, motor{B: bivec{Mx: 1}}.DualQuat())
	_, err := pga3dp.MotorFromDualQuat[float64](dualquat.Number{Dual: quat.Number{Real: 1}})
	s.ErrorIs(err, core.ErrNotUnitizable)
}

// TestMatrix_Inverse undoes motions with the inverse of their matrix.
func (s *MotorSuite) TestMatrix_Inverse() {
	quarter, err := pga3dp.Motor(s.zAxis(), math.Pi/2)
	require.NoError(s.T(), err)
	half, err := pga3dp.Motor(s.zAxis(), math.Pi)
	require.NoError(s.T(), err)
	id, _ := matrix.Identity(4)
	for _, m := range []motor{quarter, half, s.f.unitMotor(), s.f.unitMotor()} {
		a := m.Matrix()
		inv, err := matrix.Inverse(a)
		require.NoError(s.T(), err)
		prod, err := matrix.Mul(inv, a)
		require.NoError(s.T(), err)
		s.True(matrix.Equal(id, prod, 1e-12))

		p := pga3dp.Point(3.0, -2.0, 1.0)
		q := pga3dp.MoveOpt(p, m)
		back, err := inv.MulVec([]float64{q.X, q.Y, q.Z, q.W})
		require.NoError(s.T(), err)
		assertVec(s.T(), p, vec{X: back[0], Y: back[1], Z: back[2], W: back[3]})
	}
}

func TestMotorSuite(t *testing.T) {
	suite.Run(t, new(MotorSuite))
}

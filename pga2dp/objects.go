// SPDX-License-Identifier: MIT
// Package pga2dp: constructors of points and lines.

package pga2dp

import (
	"github.com/Daniel-G-W-Hug/ga-sub005/core"
	"github.com/Daniel-G-W-Hug/ga-sub005/pga"
)

// Point returns the unitized point (x, y): x·e1 + y·e2 + e3.
func Point[T core.Float](x, y T) Vec[T] { return Vec[T]{X: x, Y: y, Z: 1} }

// Direction returns the point at infinity in direction (x, y).
func Direction[T core.Float](x, y T) Vec[T] { return Vec[T]{X: x, Y: y} }

// LineFromPoints returns the line through p and q oriented from p to q.
func LineFromPoints[T core.Float](p, q Vec[T]) BiVec[T] { return p.Wdg(q) }

// Horizon returns the line at infinity rcmpl(e3) = −e12.
func Horizon[T core.Float]() BiVec[T] { return bivecOf(pga.Horizon[T](alg)) }

// SPDX-License-Identifier: MIT
// Package matrix: conversions to and from golang.org/x/image/math/f64.

package matrix

import (
	"fmt"

	"golang.org/x/image/math/f64"
)

// Mat3 returns m as a row-major f64.Mat3; m must be 3×3.
func (m *Dense) Mat3() (f64.Mat3, error) {
	var out f64.Mat3
	if m.r != 3 || m.c != 3 {
		return out, fmt.Errorf("Mat3: %dx%d: %w", m.r, m.c, ErrDimensionMismatch)
	}
	copy(out[:], m.data)

	return out, nil
}

// Mat4 returns m as a row-major f64.Mat4; m must be 4×4.
func (m *Dense) Mat4() (f64.Mat4, error) {
	var out f64.Mat4
	if m.r != 4 || m.c != 4 {
		return out, fmt.Errorf("Mat4: %dx%d: %w", m.r, m.c, ErrDimensionMismatch)
	}
	copy(out[:], m.data)

	return out, nil
}

// FromMat3 builds a 3×3 Dense from a row-major f64.Mat3.
func FromMat3(a f64.Mat3) *Dense { return FromValues(3, 3, a[:]...) }

// FromMat4 builds a 4×4 Dense from a row-major f64.Mat4.
func FromMat4(a f64.Mat4) *Dense { return FromValues(4, 4, a[:]...) }

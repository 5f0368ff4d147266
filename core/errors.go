// SPDX-License-Identifier: MIT
// Package core: sentinel error set.
// Every message is prefixed with "core: ...". Operations wrap these sentinels
// with the operation name, the operand kind and the offending value; callers
// match with errors.Is. Only programmer errors (a malformed algebra handed to
// MustAlgebra, a negative epsilon handed to WithEpsilon) panic.

package core

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned when a divisor's magnitude is below epsilon.
	ErrDivisionByZero = errors.New("core: division by zero")

	// ErrNotInvertible is returned when a blade or multivector has no inverse
	// (its norm, or the scalar denominator of the closed-form inverse, vanishes).
	ErrNotInvertible = errors.New("core: not invertible")

	// ErrNotUnitizable is returned when an object's weight norm vanishes,
	// e.g. a projective point at infinity.
	ErrNotUnitizable = errors.New("core: not unitizable")

	// ErrBadAlgebra is returned by NewAlgebra for malformed definitions.
	ErrBadAlgebra = errors.New("core: invalid algebra definition")
)

// numericErrorf wraps a sentinel with "<op>: <operand> <quantity>=<value>".
func numericErrorf(op, operand, quantity string, value float64, err error) error {
	return fmt.Errorf("%s: %s %s=%g: %w", op, operand, quantity, value, err)
}

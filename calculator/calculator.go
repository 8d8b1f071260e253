// Package calculator provides multiplication and guarded division.
//
// Both operations are pure: they hold no state, perform no I/O, and are
// safe to call concurrently from any number of goroutines.
package calculator

import "errors"

// ErrDivisionByZero is returned by Divide and DivideDecimal when the
// divisor is zero. Negative zero counts as zero.
var ErrDivisionByZero = errors.New("division by zero")

// Multiply returns the product of a and b.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a divided by b. It returns ErrDivisionByZero when b is
// zero; otherwise the quotient follows IEEE-754 float64 semantics, so a
// NaN divisor yields NaN and infinities propagate as usual.
func Divide(a, b float64) (float64, error) {
	// -0 == 0 holds for float64, so negative zero is rejected here too.
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

package calculator

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrUnknownOperation is returned by Apply and ApplyDecimal for an
// operation they do not support.
var ErrUnknownOperation = errors.New("unknown operation")

// Operation names one of the supported arithmetic operations.
type Operation string

// Supported operations.
const (
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"
)

// Operations lists every supported operation in display order.
func Operations() []Operation {
	return []Operation{OpMultiply, OpDivide}
}

// Symbol returns the conventional infix symbol for the operation.
func (op Operation) Symbol() string {
	switch op {
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	default:
		return "?"
	}
}

// Valid reports whether op is a supported operation.
func (op Operation) Valid() bool {
	return op == OpMultiply || op == OpDivide
}

// Apply evaluates op on a and b.
func Apply(op Operation, a, b float64) (float64, error) {
	switch op {
	case OpMultiply:
		return Multiply(a, b), nil
	case OpDivide:
		return Divide(a, b)
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, string(op))
}

// ApplyDecimal evaluates op on a and b using exact decimal arithmetic.
func ApplyDecimal(op Operation, a, b decimal.Decimal) (decimal.Decimal, error) {
	switch op {
	case OpMultiply:
		return MultiplyDecimal(a, b), nil
	case OpDivide:
		return DivideDecimal(a, b)
	}
	return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownOperation, string(op))
}

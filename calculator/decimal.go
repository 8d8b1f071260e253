package calculator

import "github.com/shopspring/decimal"

// MultiplyDecimal returns the exact product of a and b.
func MultiplyDecimal(a, b decimal.Decimal) decimal.Decimal {
	return a.Mul(b)
}

// DivideDecimal returns a divided by b, rounded to
// decimal.DivisionPrecision fractional digits. It returns
// ErrDivisionByZero when b is zero.
func DivideDecimal(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}
	return a.Div(b), nil
}

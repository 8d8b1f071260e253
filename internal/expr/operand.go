package expr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidOperand is returned when an operand is not a number.
var ErrInvalidOperand = errors.New("invalid operand")

// ParseFloat reads a float64 operand. IEEE-754 spellings such as "NaN",
// "Inf" and "-0" are accepted since they are valid float64 values.
func ParseFloat(s string) (float64, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidOperand)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q is out of float64 range", ErrInvalidOperand, s)
		}
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidOperand, s)
	}
	return v, nil
}

// ParseDecimal reads an exact decimal operand. Non-finite values have
// no decimal representation and are rejected.
func ParseDecimal(s string) (decimal.Decimal, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return decimal.Zero, fmt.Errorf("%w: empty", ErrInvalidOperand)
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidOperand, s)
	}
	return d, nil
}

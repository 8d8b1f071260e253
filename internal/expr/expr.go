// Package expr turns user-supplied text into operands and operations
// for the calculator. Non-numeric operands are rejected rather than
// coerced.
package expr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/unbound-force/calc/calculator"
)

// ErrInvalidExpression is returned when text cannot be read as
// "<a> <op> <b>".
var ErrInvalidExpression = errors.New("invalid expression")

// Expr is a parsed binary expression. Operands are kept as text so the
// caller can choose the numeric mode.
type Expr struct {
	Op    calculator.Operation
	Left  string
	Right string
}

// String renders the expression in canonical "a op b" form.
func (e Expr) String() string {
	return fmt.Sprintf("%s %s %s", e.Left, e.Op.Symbol(), e.Right)
}

// symbolOps are operators that may appear without surrounding spaces.
var symbolOps = []string{"*", "/", "×", "÷"}

// ParseOperation resolves an operation from its name ("multiply",
// "divide", case-insensitive) or symbol ("*", "x", "×", "/", "÷").
func ParseOperation(s string) (calculator.Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "multiply", "mul", "times", "*", "x", "×":
		return calculator.OpMultiply, nil
	case "divide", "div", "over", "/", "÷":
		return calculator.OpDivide, nil
	}
	return "", fmt.Errorf("%w: %q", calculator.ErrUnknownOperation, s)
}

// Parse reads a binary expression such as "3 * 4", "10/2" or
// "7 divide 0".
//
// Symbol operators are located at their first occurrence after the
// first character, so a leading sign stays with the left operand.
// Word operators must be separated from both operands by whitespace.
func Parse(s string) (Expr, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return Expr{}, fmt.Errorf("%w: empty input", ErrInvalidExpression)
	}

	if e, ok, err := splitSymbol(text); ok {
		return e, err
	}

	fields := strings.Fields(text)
	if len(fields) != 3 {
		return Expr{}, fmt.Errorf("%w: %q (want <a> <op> <b>)", ErrInvalidExpression, s)
	}
	op, err := ParseOperation(fields[1])
	if err != nil {
		return Expr{}, fmt.Errorf("%w: %w", ErrInvalidExpression, err)
	}
	return Expr{Op: op, Left: fields[0], Right: fields[2]}, nil
}

// splitSymbol splits text at the earliest symbol operator. ok is false
// when no symbol operator is present.
func splitSymbol(text string) (Expr, bool, error) {
	idx, sym := -1, ""
	for _, candidate := range symbolOps {
		// Skip the first byte so "-2*5" keeps its sign.
		i := strings.Index(text[1:], candidate)
		if i < 0 {
			continue
		}
		i++
		if idx < 0 || i < idx {
			idx, sym = i, candidate
		}
	}
	if idx < 0 {
		return Expr{}, false, nil
	}

	left := strings.TrimSpace(text[:idx])
	right := strings.TrimSpace(text[idx+len(sym):])
	if left == "" || right == "" || strings.ContainsAny(right, "*/×÷") {
		return Expr{}, true, fmt.Errorf("%w: %q", ErrInvalidExpression, text)
	}

	op, err := ParseOperation(sym)
	if err != nil {
		return Expr{}, true, err
	}
	return Expr{Op: op, Left: left, Right: right}, true, nil
}

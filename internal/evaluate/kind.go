package evaluate

import (
	"errors"

	"github.com/unbound-force/calc/calculator"
	"github.com/unbound-force/calc/internal/expr"
	"github.com/unbound-force/calc/internal/taxonomy"
)

// KindOf returns the error kind for err. Unrecognized errors map to
// taxonomy.KindInternal; a nil error maps to taxonomy.KindNone.
func KindOf(err error) taxonomy.ErrorKind {
	if err == nil {
		return taxonomy.KindNone
	}
	// Order matters: expression errors may wrap an unknown operation.
	for _, k := range kindTable {
		if errors.Is(err, k.target) {
			return k.kind
		}
	}
	return taxonomy.KindInternal
}

var kindTable = []struct {
	target error
	kind   taxonomy.ErrorKind
}{
	{calculator.ErrDivisionByZero, taxonomy.KindDivisionByZero},
	{expr.ErrInvalidOperand, taxonomy.KindInvalidOperand},
	{expr.ErrInvalidExpression, taxonomy.KindInvalidExpression},
	{calculator.ErrUnknownOperation, taxonomy.KindUnknownOperation},
}

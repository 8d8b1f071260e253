// Package evaluate runs calculation requests through the calculator
// and records each outcome as a taxonomy.Calculation.
package evaluate

import (
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/unbound-force/calc/calculator"
	"github.com/unbound-force/calc/internal/expr"
	"github.com/unbound-force/calc/internal/taxonomy"
)

// Options configures evaluation.
type Options struct {
	// Mode selects float64 or decimal arithmetic.
	// If empty, defaults to float.
	Mode taxonomy.Mode

	// Fixed rounds results to Precision fractional digits. When false,
	// results use the shortest exact representation and Precision is
	// ignored.
	Fixed bool

	// Precision is the number of fractional digits used when Fixed is
	// set. 0 rounds to a whole number.
	Precision int

	// Version is the calc version string to embed in metadata.
	// If empty, defaults to "dev".
	Version string
}

// Request is one operation with textual operands. Expression, when
// set, is the original input that produced the request.
type Request struct {
	Operation  calculator.Operation
	A          string
	B          string
	Expression string
}

// Evaluate applies req under opts. Failures are reported in the
// returned record rather than as a Go error.
func Evaluate(req Request, opts Options) taxonomy.Calculation {
	mode := opts.Mode
	if mode == "" {
		mode = taxonomy.ModeFloat
	}

	c := taxonomy.Calculation{
		ID:         taxonomy.GenerateID(string(req.Operation), req.A, req.B, mode),
		Operation:  req.Operation,
		Expression: req.Expression,
		A:          req.A,
		B:          req.B,
		Mode:       mode,
	}
	if c.Expression == "" {
		c.Expression = expr.Expr{Op: req.Operation, Left: req.A, Right: req.B}.String()
	}

	var (
		result string
		err    error
	)
	precision := -1
	if opts.Fixed {
		precision = max(opts.Precision, 0)
	}
	switch mode {
	case taxonomy.ModeDecimal:
		result, err = applyDecimal(req, precision)
	case taxonomy.ModeFloat:
		result, err = applyFloat(req, precision)
	default:
		err = fmt.Errorf("unsupported mode %q", mode)
	}

	if err != nil {
		c.Error = err.Error()
		c.ErrorKind = KindOf(err)
		return c
	}
	c.Result = result
	return c
}

// EvaluateExpression parses s as "<a> <op> <b>" and evaluates it.
func EvaluateExpression(s string, opts Options) taxonomy.Calculation {
	e, err := expr.Parse(s)
	if err != nil {
		mode := opts.Mode
		if mode == "" {
			mode = taxonomy.ModeFloat
		}
		return taxonomy.Calculation{
			ID:         taxonomy.GenerateID("", s, "", mode),
			Expression: s,
			Mode:       mode,
			Error:      err.Error(),
			ErrorKind:  KindOf(err),
		}
	}
	return Evaluate(Request{Operation: e.Op, A: e.Left, B: e.Right, Expression: s}, opts)
}

// Run evaluates every request in order and returns a report with run
// metadata. It fails only when opts.Mode is not a known mode.
func Run(reqs []Request, opts Options) (*taxonomy.Report, error) {
	return run(len(reqs), func(i int) taxonomy.Calculation {
		return Evaluate(reqs[i], opts)
	}, opts)
}

// RunExpressions is Run for unparsed "<a> <op> <b>" inputs.
func RunExpressions(exprs []string, opts Options) (*taxonomy.Report, error) {
	return run(len(exprs), func(i int) taxonomy.Calculation {
		return EvaluateExpression(exprs[i], opts)
	}, opts)
}

func run(n int, eval func(int) taxonomy.Calculation, opts Options) (*taxonomy.Report, error) {
	if opts.Mode == "" {
		opts.Mode = taxonomy.ModeFloat
	}
	if !opts.Mode.Valid() {
		return nil, fmt.Errorf("invalid mode %q: must be 'float' or 'decimal'", opts.Mode)
	}
	version := opts.Version
	if version == "" {
		version = "dev"
	}

	start := time.Now()
	calcs := make([]taxonomy.Calculation, 0, n)
	for i := 0; i < n; i++ {
		calcs = append(calcs, eval(i))
	}

	return &taxonomy.Report{
		Calculations: calcs,
		Metadata: taxonomy.Metadata{
			CalcVersion: version,
			GoVersion:   runtime.Version(),
			Mode:        opts.Mode,
			Timestamp:   start,
			Duration:    time.Since(start),
		},
	}, nil
}

func applyFloat(req Request, precision int) (string, error) {
	a, err := expr.ParseFloat(req.A)
	if err != nil {
		return "", fmt.Errorf("operand a: %w", err)
	}
	b, err := expr.ParseFloat(req.B)
	if err != nil {
		return "", fmt.Errorf("operand b: %w", err)
	}
	v, err := calculator.Apply(req.Operation, a, b)
	if err != nil {
		return "", err
	}
	return FormatFloat(v, precision), nil
}

func applyDecimal(req Request, precision int) (string, error) {
	a, err := expr.ParseDecimal(req.A)
	if err != nil {
		return "", fmt.Errorf("operand a: %w", err)
	}
	b, err := expr.ParseDecimal(req.B)
	if err != nil {
		return "", fmt.Errorf("operand b: %w", err)
	}
	v, err := calculator.ApplyDecimal(req.Operation, a, b)
	if err != nil {
		return "", err
	}
	return FormatDecimal(v, precision), nil
}

// FormatFloat renders v with precision fractional digits, or in the
// shortest form that round-trips when precision is negative.
func FormatFloat(v float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// FormatDecimal renders d with precision fractional digits, or exactly
// when precision is negative.
func FormatDecimal(d decimal.Decimal, precision int) string {
	if precision < 0 {
		return d.String()
	}
	return d.StringFixed(int32(precision))
}

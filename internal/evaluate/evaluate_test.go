package evaluate

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/unbound-force/calc/calculator"
	"github.com/unbound-force/calc/internal/taxonomy"
)

func TestEvaluate_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		req  Request
		want string
	}{
		{"multiply positives", Request{Operation: calculator.OpMultiply, A: "3", B: "4"}, "12"},
		{"multiply negative", Request{Operation: calculator.OpMultiply, A: "-2", B: "5"}, "-10"},
		{"divide exact", Request{Operation: calculator.OpDivide, A: "10", B: "2"}, "5"},
		{"divide zero dividend", Request{Operation: calculator.OpDivide, A: "0", B: "5"}, "0"},
	}

	for _, mode := range []taxonomy.Mode{taxonomy.ModeFloat, taxonomy.ModeDecimal} {
		for _, tc := range cases {
			t.Run(string(mode)+"/"+tc.name, func(t *testing.T) {
				c := Evaluate(tc.req, Options{Mode: mode})
				if c.Failed() {
					t.Fatalf("unexpected failure: %s", c.Error)
				}
				if c.Result != tc.want {
					t.Errorf("result = %q, want %q", c.Result, tc.want)
				}
				if c.Mode != mode {
					t.Errorf("mode = %q, want %q", c.Mode, mode)
				}
			})
		}
	}
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	for _, b := range []string{"0", "-0", "0.0"} {
		for _, mode := range []taxonomy.Mode{taxonomy.ModeFloat, taxonomy.ModeDecimal} {
			c := Evaluate(Request{Operation: calculator.OpDivide, A: "7", B: b}, Options{Mode: mode})
			if c.ErrorKind != taxonomy.KindDivisionByZero {
				t.Errorf("7 / %s (%s): error_kind = %q, want %q", b, mode, c.ErrorKind, taxonomy.KindDivisionByZero)
			}
			if !strings.Contains(c.Error, "division by zero") {
				t.Errorf("7 / %s (%s): error = %q, want it to mention division by zero", b, mode, c.Error)
			}
			if c.Result != "" {
				t.Errorf("7 / %s (%s): result = %q, want empty", b, mode, c.Result)
			}
		}
	}
}

func TestEvaluate_InvalidOperand(t *testing.T) {
	c := Evaluate(Request{Operation: calculator.OpMultiply, A: "three", B: "4"}, Options{})
	if c.ErrorKind != taxonomy.KindInvalidOperand {
		t.Fatalf("error_kind = %q, want %q", c.ErrorKind, taxonomy.KindInvalidOperand)
	}
	if !strings.Contains(c.Error, "operand a") {
		t.Errorf("error should name operand a, got: %s", c.Error)
	}

	c = Evaluate(Request{Operation: calculator.OpDivide, A: "1", B: "Inf"}, Options{Mode: taxonomy.ModeDecimal})
	if c.ErrorKind != taxonomy.KindInvalidOperand {
		t.Errorf("decimal Inf: error_kind = %q, want %q", c.ErrorKind, taxonomy.KindInvalidOperand)
	}
	if !strings.Contains(c.Error, "operand b") {
		t.Errorf("error should name operand b, got: %s", c.Error)
	}
}

func TestEvaluate_NonFiniteFloat(t *testing.T) {
	c := Evaluate(Request{Operation: calculator.OpDivide, A: "1", B: "NaN"}, Options{})
	if c.Failed() {
		t.Fatalf("NaN divisor should not fail in float mode: %s", c.Error)
	}
	if c.Result != "NaN" {
		t.Errorf("result = %q, want NaN", c.Result)
	}

	c = Evaluate(Request{Operation: calculator.OpDivide, A: "-Inf", B: "2"}, Options{})
	if c.Result != "-Inf" {
		t.Errorf("result = %q, want -Inf", c.Result)
	}
}

func TestEvaluate_UnknownOperation(t *testing.T) {
	c := Evaluate(Request{Operation: "modulo", A: "7", B: "2"}, Options{})
	if c.ErrorKind != taxonomy.KindUnknownOperation {
		t.Errorf("error_kind = %q, want %q", c.ErrorKind, taxonomy.KindUnknownOperation)
	}
}

func TestEvaluate_Precision(t *testing.T) {
	c := Evaluate(Request{Operation: calculator.OpDivide, A: "1", B: "3"}, Options{Fixed: true, Precision: 4})
	if c.Result != "0.3333" {
		t.Errorf("float result = %q, want 0.3333", c.Result)
	}

	c = Evaluate(Request{Operation: calculator.OpDivide, A: "2", B: "3"},
		Options{Mode: taxonomy.ModeDecimal, Fixed: true, Precision: 2})
	if c.Result != "0.67" {
		t.Errorf("decimal result = %q, want 0.67", c.Result)
	}

	c = Evaluate(Request{Operation: calculator.OpDivide, A: "5", B: "2"}, Options{Fixed: true})
	if c.Result != "2" {
		t.Errorf("fixed zero-digit result = %q, want 2", c.Result)
	}
}

func TestEvaluate_ZeroOptionsKeepFraction(t *testing.T) {
	cases := []struct {
		mode taxonomy.Mode
		a, b string
		want string
	}{
		{taxonomy.ModeFloat, "1", "4", "0.25"},
		{taxonomy.ModeDecimal, "1", "8", "0.125"},
		{"", "1", "3", "0.3333333333333333"},
	}
	for _, tc := range cases {
		c := Evaluate(Request{Operation: calculator.OpDivide, A: tc.a, B: tc.b}, Options{Mode: tc.mode})
		if c.Result != tc.want {
			t.Errorf("%s / %s (%q): result = %q, want %q", tc.a, tc.b, tc.mode, c.Result, tc.want)
		}
	}

	c := Evaluate(Request{Operation: calculator.OpMultiply, A: "1.5", B: "3"}, Options{Precision: 0})
	if c.Result != "4.5" {
		t.Errorf("Precision without Fixed should be ignored: result = %q, want 4.5", c.Result)
	}
}

func TestEvaluate_CanonicalExpressionAndID(t *testing.T) {
	req := Request{Operation: calculator.OpDivide, A: "10", B: "2"}
	c := Evaluate(req, Options{})
	if c.Expression != "10 / 2" {
		t.Errorf("expression = %q, want %q", c.Expression, "10 / 2")
	}
	if c.ID != taxonomy.GenerateID("divide", "10", "2", taxonomy.ModeFloat) {
		t.Errorf("unexpected ID %q", c.ID)
	}
	if again := Evaluate(req, Options{}); again.ID != c.ID {
		t.Errorf("ID not stable: %q != %q", again.ID, c.ID)
	}
}

func TestEvaluateExpression(t *testing.T) {
	c := EvaluateExpression("6*7", Options{})
	if c.Result != "42" {
		t.Errorf("6*7 = %q, want 42", c.Result)
	}
	if c.Expression != "6*7" {
		t.Errorf("expression should keep user input, got %q", c.Expression)
	}
	if c.Operation != calculator.OpMultiply {
		t.Errorf("operation = %q, want multiply", c.Operation)
	}

	c = EvaluateExpression("7 / 0", Options{})
	if c.ErrorKind != taxonomy.KindDivisionByZero {
		t.Errorf("7 / 0: error_kind = %q, want %q", c.ErrorKind, taxonomy.KindDivisionByZero)
	}

	c = EvaluateExpression("hello", Options{})
	if c.ErrorKind != taxonomy.KindInvalidExpression {
		t.Errorf("hello: error_kind = %q, want %q", c.ErrorKind, taxonomy.KindInvalidExpression)
	}
	if c.Operation != "" {
		t.Errorf("unparsed expression should have no operation, got %q", c.Operation)
	}
}

func TestRun(t *testing.T) {
	reqs := []Request{
		{Operation: calculator.OpMultiply, A: "3", B: "4"},
		{Operation: calculator.OpDivide, A: "7", B: "0"},
	}
	rpt, err := Run(reqs, Options{Version: "1.2.3"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rpt.Calculations) != 2 {
		t.Fatalf("expected 2 calculations, got %d", len(rpt.Calculations))
	}
	if rpt.Calculations[0].Result != "12" {
		t.Errorf("first result = %q, want 12", rpt.Calculations[0].Result)
	}
	if rpt.Failures() != 1 {
		t.Errorf("Failures() = %d, want 1", rpt.Failures())
	}
	if rpt.Metadata.CalcVersion != "1.2.3" {
		t.Errorf("calc_version = %q, want 1.2.3", rpt.Metadata.CalcVersion)
	}
	if rpt.Metadata.Mode != taxonomy.ModeFloat {
		t.Errorf("metadata mode = %q, want float", rpt.Metadata.Mode)
	}
	if rpt.Metadata.GoVersion == "" {
		t.Error("expected go_version to be set")
	}
	if rpt.Metadata.Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
}

func TestRun_DefaultVersion(t *testing.T) {
	rpt, err := RunExpressions([]string{"1 x 1"}, Options{})
	if err != nil {
		t.Fatalf("RunExpressions: %v", err)
	}
	if rpt.Metadata.CalcVersion != "dev" {
		t.Errorf("calc_version = %q, want dev", rpt.Metadata.CalcVersion)
	}
}

func TestRun_InvalidMode(t *testing.T) {
	_, err := Run(nil, Options{Mode: "integer"})
	if err == nil {
		t.Fatal("expected error for invalid mode")
	}
	if !strings.Contains(err.Error(), `invalid mode "integer"`) {
		t.Errorf("unexpected error message: %s", err)
	}
}

func TestFormatFloat(t *testing.T) {
	cases := []struct {
		v         float64
		precision int
		want      string
	}{
		{12, -1, "12"},
		{0.1, -1, "0.1"},
		{2.5, 0, "2"},
		{1.0 / 3.0, 3, "0.333"},
	}
	for _, tc := range cases {
		if got := FormatFloat(tc.v, tc.precision); got != tc.want {
			t.Errorf("FormatFloat(%v, %d) = %q, want %q", tc.v, tc.precision, got, tc.want)
		}
	}
}

func TestFormatDecimal(t *testing.T) {
	d := decimal.RequireFromString("1.005")
	if got := FormatDecimal(d, -1); got != "1.005" {
		t.Errorf("FormatDecimal(1.005, -1) = %q, want 1.005", got)
	}
	if got := FormatDecimal(d, 1); got != "1.0" {
		t.Errorf("FormatDecimal(1.005, 1) = %q, want 1.0", got)
	}
}

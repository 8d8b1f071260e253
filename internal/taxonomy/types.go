// Package taxonomy defines the calculation record types, error kinds,
// and stable ID generation for calc results.
package taxonomy

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/unbound-force/calc/calculator"
)

// Mode selects the numeric representation used for evaluation.
type Mode string

// Evaluation modes.
const (
	// ModeFloat evaluates with IEEE-754 float64 arithmetic.
	ModeFloat Mode = "float"

	// ModeDecimal evaluates with arbitrary-precision decimals.
	ModeDecimal Mode = "decimal"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeFloat || m == ModeDecimal
}

// ErrorKind categorizes why a calculation failed.
type ErrorKind string

// Error kind constants. KindNone is used for successful calculations
// and is omitted from JSON.
const (
	KindNone              ErrorKind = ""
	KindDivisionByZero    ErrorKind = "division_by_zero"
	KindInvalidOperand    ErrorKind = "invalid_operand"
	KindInvalidExpression ErrorKind = "invalid_expression"
	KindUnknownOperation  ErrorKind = "unknown_operation"
	KindInternal          ErrorKind = "internal"
)

// Calculation is the outcome of evaluating one operation.
type Calculation struct {
	// ID is a stable identifier for diffing across runs.
	// Generated from sha256(operation+a+b+mode).
	ID string `json:"id"`

	// Operation is the operation that was applied. Empty when the
	// input could not be parsed into an operation.
	Operation calculator.Operation `json:"operation,omitempty"`

	// Expression is the input as the user wrote it, or a canonical
	// "a op b" rendering for argument-based requests.
	Expression string `json:"expression"`

	// A and B are the operands as supplied.
	A string `json:"a"`
	B string `json:"b"`

	// Mode is the numeric mode used for evaluation.
	Mode Mode `json:"mode"`

	// Result is the formatted result. Omitted when Error is set.
	Result string `json:"result,omitempty"`

	// Error is the failure message. Omitted on success.
	Error string `json:"error,omitempty"`

	// ErrorKind classifies Error. Omitted on success.
	ErrorKind ErrorKind `json:"error_kind,omitempty"`
}

// Failed reports whether the calculation produced an error.
func (c Calculation) Failed() bool {
	return c.Error != ""
}

// Metadata holds evaluation run metadata.
type Metadata struct {
	CalcVersion string        `json:"calc_version"`
	GoVersion   string        `json:"go_version"`
	Mode        Mode          `json:"mode"`
	Timestamp   time.Time     `json:"-"`
	Duration    time.Duration `json:"-"`
}

// MarshalJSON customizes JSON encoding to use duration_ms and
// ISO 8601 timestamp.
func (m Metadata) MarshalJSON() ([]byte, error) {
	type Alias Metadata
	ts := ""
	if !m.Timestamp.IsZero() {
		ts = m.Timestamp.UTC().Format(time.RFC3339)
	}
	return json.Marshal(&struct {
		Alias
		DurationMS int64  `json:"duration_ms"`
		Timestamp  string `json:"timestamp,omitempty"`
	}{
		Alias:      Alias(m),
		DurationMS: m.Duration.Milliseconds(),
		Timestamp:  ts,
	})
}

// Report is the complete output of one evaluation run.
type Report struct {
	// Calculations holds one record per request, in request order.
	Calculations []Calculation `json:"calculations"`

	// Metadata contains run information.
	Metadata Metadata `json:"metadata"`
}

// Failures returns the number of failed calculations.
func (r *Report) Failures() int {
	n := 0
	for _, c := range r.Calculations {
		if c.Failed() {
			n++
		}
	}
	return n
}

// GenerateID produces a stable, deterministic ID for a calculation
// based on its inputs. The ID is a sha256 hash truncated to 8 hex
// characters, prefixed with "calc-".
func GenerateID(op, a, b string, mode Mode) string {
	input := fmt.Sprintf("%s:%s:%s:%s", op, a, b, mode)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("calc-%x", hash[:4])
}

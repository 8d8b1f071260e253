package taxonomy

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/unbound-force/calc/calculator"
)

func TestGenerateID_Deterministic(t *testing.T) {
	id1 := GenerateID("divide", "10", "2", ModeFloat)
	id2 := GenerateID("divide", "10", "2", ModeFloat)

	if id1 != id2 {
		t.Errorf("GenerateID not deterministic: %q != %q", id1, id2)
	}
}

func TestGenerateID_Format(t *testing.T) {
	id := GenerateID("multiply", "3", "4", ModeFloat)

	if len(id) != 13 { // "calc-" + 8 hex chars
		t.Errorf("expected ID length 13, got %d: %q", len(id), id)
	}
	if !strings.HasPrefix(id, "calc-") {
		t.Errorf("expected ID to start with 'calc-', got %q", id)
	}
}

func TestGenerateID_UniqueForDifferentInputs(t *testing.T) {
	id1 := GenerateID("divide", "10", "2", ModeFloat)
	id2 := GenerateID("multiply", "10", "2", ModeFloat)
	id3 := GenerateID("divide", "10", "2", ModeDecimal)
	id4 := GenerateID("divide", "2", "10", ModeFloat)

	if id1 == id2 {
		t.Errorf("different operations should produce different IDs")
	}
	if id1 == id3 {
		t.Errorf("different modes should produce different IDs")
	}
	if id1 == id4 {
		t.Errorf("swapped operands should produce different IDs")
	}
}

func TestMode_Valid(t *testing.T) {
	if !ModeFloat.Valid() || !ModeDecimal.Valid() {
		t.Error("expected float and decimal modes to be valid")
	}
	if Mode("integer").Valid() {
		t.Error("Mode(\"integer\").Valid() = true, want false")
	}
}

func TestMetadata_MarshalJSON(t *testing.T) {
	m := Metadata{
		CalcVersion: "1.0.0",
		GoVersion:   "go1.24.2",
		Mode:        ModeFloat,
		Timestamp:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Duration:    1500 * time.Millisecond,
	}

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if parsed["duration_ms"] != float64(1500) {
		t.Errorf("duration_ms = %v, want 1500", parsed["duration_ms"])
	}
	if parsed["timestamp"] != "2026-01-02T03:04:05Z" {
		t.Errorf("timestamp = %v, want 2026-01-02T03:04:05Z", parsed["timestamp"])
	}
	if parsed["calc_version"] != "1.0.0" {
		t.Errorf("calc_version = %v, want 1.0.0", parsed["calc_version"])
	}
}

func TestMetadata_MarshalJSON_OmitsZeroTimestamp(t *testing.T) {
	data, err := json.Marshal(Metadata{Mode: ModeDecimal})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(data), "timestamp") {
		t.Errorf("zero timestamp should be omitted, got %s", data)
	}
}

func TestCalculation_OmitsEmptyFields(t *testing.T) {
	ok := Calculation{ID: "calc-1", Operation: calculator.OpMultiply, A: "3", B: "4", Mode: ModeFloat, Result: "12"}
	data, err := json.Marshal(ok)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), `"error"`) || strings.Contains(string(data), `"error_kind"`) {
		t.Errorf("successful calculation should omit error fields, got %s", data)
	}

	failed := Calculation{ID: "calc-2", Operation: calculator.OpDivide, A: "7", B: "0", Mode: ModeFloat,
		Error: "division by zero", ErrorKind: KindDivisionByZero}
	data, err = json.Marshal(failed)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), `"result"`) {
		t.Errorf("failed calculation should omit result, got %s", data)
	}
	if !failed.Failed() || ok.Failed() {
		t.Error("Failed() disagrees with Error field")
	}
}

func TestReport_Failures(t *testing.T) {
	r := &Report{Calculations: []Calculation{
		{Result: "12"},
		{Error: "division by zero"},
		{Error: "invalid operand"},
	}}
	if got := r.Failures(); got != 2 {
		t.Errorf("Failures() = %d, want 2", got)
	}
}

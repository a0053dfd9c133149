package sdk

import (
	"encoding/json"
	"testing"
)

func TestSeverityConstants(t *testing.T) {
	if SeverityError != "error" || SeverityWarning != "warning" || SeverityInfo != "info" {
		t.Errorf("unexpected severity values: %q %q %q", SeverityError, SeverityWarning, SeverityInfo)
	}
}

func TestFindingJSON(t *testing.T) {
	f := Finding{
		Rule:     "style.pointer-spacing",
		Message:  "put '*' next to variable (e.g., 'int* x')",
		File:     "main.c",
		Line:     3,
		Severity: SeverityWarning,
		Fixable:  true,
	}

	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded Finding
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if decoded != f {
		t.Errorf("round trip mismatch: got %+v, want %+v", decoded, f)
	}
}

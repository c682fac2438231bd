package dto

import (
	"encoding/json"
	"testing"
)

func TestNumber_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in        string
		wantValid bool
		want      float64
	}{
		{"json number", `7300.5`, true, 7300.5},
		{"numeric string", `"7300.5"`, true, 7300.5},
		{"negative string", `"-0.25"`, true, -0.25},
		{"null", `null`, false, 0},
		{"empty string", `""`, false, 0},
		{"garbage string", `"n/a"`, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var n Number
			if err := json.Unmarshal([]byte(tt.in), &n); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n.Valid != tt.wantValid {
				t.Fatalf("valid = %v, want %v", n.Valid, tt.wantValid)
			}
			if n.Valid && n.Float64 != tt.want {
				t.Errorf("value = %v, want %v", n.Float64, tt.want)
			}
			if !n.Valid && n.Ptr() != nil {
				t.Error("Ptr() should be nil for absent values")
			}
		})
	}
}

func TestNumber_PtrIsCopy(t *testing.T) {
	t.Parallel()

	n := Number{Float64: 1.5, Valid: true}
	p := n.Ptr()
	*p = 2.5
	if n.Float64 != 1.5 {
		t.Error("Ptr() must not alias the Number's value")
	}
}

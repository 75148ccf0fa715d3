package otp

import (
	"testing"
	"unicode"
)

func TestGenerateCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateCode()
		if err != nil {
			t.Fatalf("GenerateCode() error = %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("GenerateCode() = %q, want 6 digits", code)
		}
		for _, r := range code {
			if !unicode.IsDigit(r) {
				t.Fatalf("GenerateCode() = %q, contains a non-digit", code)
			}
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Error("GenerateCode() produced the same code on every call")
	}
}

package utils

import (
	"strings"
	"testing"
	"time"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"User@Example.COM", "user@example.com"},
		{"  spaced@example.com  ", "spaced@example.com"},
		{"already@example.com", "already@example.com"},
	}

	for _, tt := range tests {
		if got := NormalizeEmail(tt.in); got != tt.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-06-15")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	want := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate() = %v, want %v", got, want)
	}

	for _, bad := range []string{"", "15/06/2024", "2024-13-01", "june 15"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) returned nil error", bad)
		}
	}
}

func TestIsLikelyBase64(t *testing.T) {
	base64ish := strings.Repeat("QUJDREVGabcdef0123456789+/=", 10)
	if !isLikelyBase64(base64ish) {
		t.Error("isLikelyBase64() rejected base64-looking content")
	}

	prose := strings.Repeat("I would like to enroll in the tally course. ", 10)
	if isLikelyBase64(prose) {
		t.Error("isLikelyBase64() flagged plain prose")
	}

	if isLikelyBase64("short") {
		t.Error("isLikelyBase64() flagged short content")
	}
}

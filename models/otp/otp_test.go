package otp

import (
	"testing"
	"time"
)

func TestIsExpired(t *testing.T) {
	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{"future expiry", time.Now().Add(5 * time.Minute), false},
		{"past expiry", time.Now().Add(-1 * time.Minute), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := OTPVerification{ExpiresAt: tt.expiresAt}
			if got := record.IsExpired(); got != tt.want {
				t.Errorf("IsExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsUsable(t *testing.T) {
	tests := []struct {
		name       string
		isVerified bool
		expiresAt  time.Time
		want       bool
	}{
		{"fresh unverified", false, time.Now().Add(5 * time.Minute), true},
		{"already verified", true, time.Now().Add(5 * time.Minute), false},
		{"verified and expired", true, time.Now().Add(-1 * time.Minute), false},
		{"expired", false, time.Now().Add(-1 * time.Minute), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := OTPVerification{IsVerified: tt.isVerified, ExpiresAt: tt.expiresAt}
			if got := record.IsUsable(); got != tt.want {
				t.Errorf("IsUsable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithinResetWindow(t *testing.T) {
	window := 15 * time.Minute

	tests := []struct {
		name      string
		createdAt time.Time
		want      bool
	}{
		{"just created", time.Now(), true},
		{"inside window", time.Now().Add(-10 * time.Minute), true},
		{"outside window", time.Now().Add(-20 * time.Minute), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := OTPVerification{CreatedAt: tt.createdAt}
			if got := record.WithinResetWindow(window); got != tt.want {
				t.Errorf("WithinResetWindow() = %v, want %v", got, tt.want)
			}
		})
	}
}

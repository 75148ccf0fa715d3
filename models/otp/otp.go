package otp

import (
	"time"
)

// OTPVerification stores a one-time code mailed to a student's address.
// A code is consumed in two steps: verify marks it verified, and the
// password reset that follows deletes every record for the email.
type OTPVerification struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email      string    `gorm:"type:varchar(255);not null;index" json:"email"`
	Code       string    `gorm:"type:varchar(6);not null" json:"code"`
	Purpose    Purpose   `gorm:"type:varchar(20);not null;default:password_reset" json:"purpose"`
	IsVerified bool      `gorm:"default:false" json:"is_verified"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	ExpiresAt  time.Time `gorm:"not null" json:"expires_at"`
}

// Purpose tags what an OTP may be consumed for.
type Purpose string

const (
	PurposePasswordReset Purpose = "password_reset"
	PurposeLogin         Purpose = "login"
	PurposeRegistration  Purpose = "registration"
)

// IsExpired checks if the code's validity window has passed.
func (o *OTPVerification) IsExpired() bool {
	return time.Now().After(o.ExpiresAt)
}

// IsUsable reports whether the code can still be matched by the verify
// step: not yet verified and not expired.
func (o *OTPVerification) IsUsable() bool {
	return !o.IsVerified && !o.IsExpired()
}

// WithinResetWindow reports whether the code was issued recently enough
// for the password-reset step, which enforces a stricter replay window
// than verification does.
func (o *OTPVerification) WithinResetWindow(window time.Duration) bool {
	return time.Since(o.CreatedAt) <= window
}

package otp

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	authTypes "institute-backend/types/auth"
)

var validate = validator.New()

// RequestOTPRequest asks for a reset code to be mailed to a registered
// student address.
type RequestOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (r RequestOTPRequest) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if err := validate.Var(r.Email, "email"); err != nil {
		return fmt.Errorf("email address is not valid")
	}
	return nil
}

// VerifyOTPRequest matches a mailed code against its email.
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

func (r VerifyOTPRequest) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Code == "" {
		return fmt.Errorf("code is required")
	}
	if err := validate.Var(r.Code, "len=6,numeric"); err != nil {
		return fmt.Errorf("code must be a 6-digit number")
	}
	return nil
}

// ResetPasswordRequest completes the forgot-password flow with a
// previously verified code.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required,len=6,numeric"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

func (r ResetPasswordRequest) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Code == "" {
		return fmt.Errorf("code is required")
	}
	if len(r.NewPassword) < authTypes.MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", authTypes.MinPasswordLength)
	}
	return nil
}

// OTPResponse reports the outcome of OTP operations.
type OTPResponse struct {
	Message   string `json:"message"`
	ExpiresAt string `json:"expires_at,omitempty"`
	Success   bool   `json:"success"`
}

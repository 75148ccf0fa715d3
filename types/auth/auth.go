package auth

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// MinPasswordLength applies at registration and at password reset.
const MinPasswordLength = 6

// RegisterRequest is the payload for student self-registration.
type RegisterRequest struct {
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Password    string `json:"password" validate:"required,min=6"`
	Phone       string `json:"phone" validate:"omitempty,max=20"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Address     string `json:"address" validate:"omitempty"`
}

func (r RegisterRequest) Validate() error {
	if r.FirstName == "" {
		return fmt.Errorf("first name is required")
	}
	if r.LastName == "" {
		return fmt.Errorf("last name is required")
	}
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	if len(r.Password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}
	if err := validate.Var(r.Email, "email"); err != nil {
		return fmt.Errorf("email address is not valid")
	}
	if r.DateOfBirth != "" {
		if err := validate.Var(r.DateOfBirth, "datetime=2006-01-02"); err != nil {
			return fmt.Errorf("date_of_birth must use YYYY-MM-DD format")
		}
	}
	return nil
}

// LoginRequest is shared by student and staff logins; the backend tries
// the student credential set first and falls back to administrators.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r LoginRequest) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// MeResponse mirrors the session-introspection contract of the portal
// frontend.
type MeResponse struct {
	IsAuthenticated bool        `json:"is_authenticated"`
	Student         interface{} `json:"student"`
}

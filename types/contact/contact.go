package contact

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CreateRequest is the public contact-form payload.
type CreateRequest struct {
	Name    string `json:"name" validate:"required,max=150"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Subject string `json:"subject" validate:"omitempty,max=200"`
	Message string `json:"message" validate:"required"`
}

func (r CreateRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Message == "" {
		return fmt.Errorf("message is required")
	}
	if err := validate.Var(r.Email, "email"); err != nil {
		return fmt.Errorf("email address is not valid")
	}
	return nil
}

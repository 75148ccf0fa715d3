package notification

import (
	"fmt"
)

// BulkEmailRequest targets either an explicit recipient list or every
// active student when Recipients is empty.
type BulkEmailRequest struct {
	Subject    string   `json:"subject" validate:"required,max=200"`
	Body       string   `json:"body" validate:"required"`
	Recipients []string `json:"recipients" validate:"omitempty,dive,email"`
}

func (r BulkEmailRequest) Validate() error {
	if r.Subject == "" {
		return fmt.Errorf("subject is required")
	}
	if r.Body == "" {
		return fmt.Errorf("body is required")
	}
	return nil
}

package enrollment

import (
	"fmt"

	enrollmentModel "institute-backend/models/enrollment"
)

// CreateRequest is the student-facing enrollment payload. The student
// identity comes from the session, never from the body.
type CreateRequest struct {
	CourseID uint  `json:"course_id" validate:"required"`
	BatchID  *uint `json:"batch_id" validate:"omitempty"`
}

func (r CreateRequest) Validate() error {
	if r.CourseID == 0 {
		return fmt.Errorf("course_id is required")
	}
	return nil
}

// StatusUpdateRequest moves an enrollment to a new workflow status.
type StatusUpdateRequest struct {
	Status  string `json:"status" validate:"required"`
	Remarks string `json:"remarks" validate:"omitempty"`
}

func (r StatusUpdateRequest) Validate() error {
	if r.Status == "" {
		return fmt.Errorf("status is required")
	}
	if !enrollmentModel.Status(r.Status).IsValid() {
		return fmt.Errorf("status %q is not a valid enrollment status", r.Status)
	}
	return nil
}

// UpdateRequest covers the administrative edit of enrollment bookkeeping
// fields. Pointer fields distinguish "absent" from zero values.
type UpdateRequest struct {
	BatchID            *uint    `json:"batch_id"`
	StartDate          *string  `json:"start_date"`
	EndDate            *string  `json:"end_date"`
	PaymentStatus      *string  `json:"payment_status"`
	AmountPaid         *float64 `json:"amount_paid"`
	ProgressPercentage *int     `json:"progress_percentage"`
	Remarks            *string  `json:"remarks"`
}

func (r UpdateRequest) Validate() error {
	if r.ProgressPercentage != nil {
		if *r.ProgressPercentage < 0 || *r.ProgressPercentage > 100 {
			return fmt.Errorf("progress_percentage must be between 0 and 100")
		}
	}
	if r.AmountPaid != nil && *r.AmountPaid < 0 {
		return fmt.Errorf("amount_paid cannot be negative")
	}
	return nil
}

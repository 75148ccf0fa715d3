package enrollment

// Status values an enrollment can carry.
const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Status is the lifecycle state of an enrollment.
type Status string

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal returns true for states that are not re-entered from in the
// normal flow.
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCompleted || s == StatusCancelled
}

// BlocksReenrollment reports whether an enrollment in this state stops
// the student from applying to the same course again.
func (s Status) BlocksReenrollment() bool {
	return s == StatusPending || s == StatusApproved
}

// GetAllStatuses returns all valid enrollment statuses.
func GetAllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusApproved,
		StatusRejected,
		StatusCompleted,
		StatusCancelled,
	}
}

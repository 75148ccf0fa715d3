package enrollment

import "testing"

func TestStatusIsValid(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusPending, true},
		{StatusApproved, true},
		{StatusRejected, true},
		{StatusCompleted, true},
		{StatusCancelled, true},
		{Status(""), false},
		{Status("active"), false},
		{Status("PENDING"), false},
	}

	for _, tt := range tests {
		if got := tt.status.IsValid(); got != tt.want {
			t.Errorf("Status(%q).IsValid() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestStatusIsTerminal(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusPending, false},
		{StatusApproved, false},
		{StatusRejected, true},
		{StatusCompleted, true},
		{StatusCancelled, true},
	}

	for _, tt := range tests {
		if got := tt.status.IsTerminal(); got != tt.want {
			t.Errorf("Status(%q).IsTerminal() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestStatusBlocksReenrollment(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusPending, true},
		{StatusApproved, true},
		{StatusRejected, false},
		{StatusCompleted, false},
		{StatusCancelled, false},
	}

	for _, tt := range tests {
		if got := tt.status.BlocksReenrollment(); got != tt.want {
			t.Errorf("Status(%q).BlocksReenrollment() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestGetAllStatuses(t *testing.T) {
	statuses := GetAllStatuses()
	if len(statuses) != 5 {
		t.Fatalf("GetAllStatuses() returned %d statuses, want 5", len(statuses))
	}
	for _, s := range statuses {
		if !s.IsValid() {
			t.Errorf("GetAllStatuses() contains invalid status %q", s)
		}
	}
}

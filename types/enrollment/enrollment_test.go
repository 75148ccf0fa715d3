package enrollment

import "testing"

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestCreateRequestValidate(t *testing.T) {
	if err := (CreateRequest{CourseID: 3}).Validate(); err != nil {
		t.Errorf("Validate() with course id = %v, want nil", err)
	}
	if err := (CreateRequest{}).Validate(); err == nil {
		t.Error("Validate() without course id returned nil")
	}
}

func TestStatusUpdateRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		wantErr bool
	}{
		{"approved", "approved", false},
		{"rejected", "rejected", false},
		{"completed", "completed", false},
		{"cancelled", "cancelled", false},
		{"pending", "pending", false},
		{"empty", "", true},
		{"unknown", "done", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (StatusUpdateRequest{Status: tt.status}).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     UpdateRequest
		wantErr bool
	}{
		{"empty", UpdateRequest{}, false},
		{"progress zero", UpdateRequest{ProgressPercentage: intPtr(0)}, false},
		{"progress full", UpdateRequest{ProgressPercentage: intPtr(100)}, false},
		{"progress negative", UpdateRequest{ProgressPercentage: intPtr(-1)}, true},
		{"progress over limit", UpdateRequest{ProgressPercentage: intPtr(101)}, true},
		{"negative amount", UpdateRequest{AmountPaid: floatPtr(-10)}, true},
		{"valid amount", UpdateRequest{AmountPaid: floatPtr(5000)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

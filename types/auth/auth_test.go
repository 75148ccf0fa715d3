package auth

import "testing"

func TestRegisterRequestValidate(t *testing.T) {
	valid := RegisterRequest{
		FirstName: "Asha",
		LastName:  "Verma",
		Email:     "asha@example.com",
		Password:  "secret123",
	}

	tests := []struct {
		name    string
		mutate  func(r *RegisterRequest)
		wantErr bool
	}{
		{"valid", func(r *RegisterRequest) {}, false},
		{"valid with dob", func(r *RegisterRequest) { r.DateOfBirth = "2000-05-17" }, false},
		{"missing first name", func(r *RegisterRequest) { r.FirstName = "" }, true},
		{"missing last name", func(r *RegisterRequest) { r.LastName = "" }, true},
		{"missing email", func(r *RegisterRequest) { r.Email = "" }, true},
		{"bad email", func(r *RegisterRequest) { r.Email = "not-an-email" }, true},
		{"missing password", func(r *RegisterRequest) { r.Password = "" }, true},
		{"short password", func(r *RegisterRequest) { r.Password = "abc" }, true},
		{"bad dob format", func(r *RegisterRequest) { r.DateOfBirth = "17/05/2000" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoginRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     LoginRequest
		wantErr bool
	}{
		{"valid", LoginRequest{Email: "a@b.com", Password: "x"}, false},
		{"missing email", LoginRequest{Password: "x"}, true},
		{"missing password", LoginRequest{Email: "a@b.com"}, true},
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

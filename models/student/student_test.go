package student

import "testing"

func TestSetAndCheckPassword(t *testing.T) {
	var s Student
	if err := s.SetPassword("secret123"); err != nil {
		t.Fatalf("SetPassword() error = %v", err)
	}

	if s.Password == "secret123" {
		t.Fatal("SetPassword() stored the raw password")
	}

	if !s.CheckPassword("secret123") {
		t.Error("CheckPassword() rejected the correct password")
	}
	if s.CheckPassword("wrong") {
		t.Error("CheckPassword() accepted a wrong password")
	}
	if s.CheckPassword("") {
		t.Error("CheckPassword() accepted an empty password")
	}
}

func TestFullName(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Asha", "Verma", "Asha Verma"},
		{"Asha", "", "Asha"},
		{"", "Verma", "Verma"},
		{"", "", ""},
	}

	for _, tt := range tests {
		s := Student{FirstName: tt.first, LastName: tt.last}
		if got := s.FullName(); got != tt.want {
			t.Errorf("FullName() with %q %q = %q, want %q", tt.first, tt.last, got, tt.want)
		}
	}
}

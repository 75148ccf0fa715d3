package session

import (
	"testing"
	"time"
)

func TestIssueAndParse(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	tests := []struct {
		name     string
		identity Identity
	}{
		{"student", Identity{Kind: KindStudent, ID: 42, Email: "student@example.com"}},
		{"admin", Identity{Kind: KindAdmin, ID: 1, Email: "admin@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := m.Issue(tt.identity)
			if err != nil {
				t.Fatalf("Issue() error = %v", err)
			}

			parsed, err := m.Parse(token)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			if parsed != tt.identity {
				t.Errorf("Parse() = %+v, want %+v", parsed, tt.identity)
			}
		})
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", time.Hour)
	verifier := NewManager("secret-b", time.Hour)

	token, err := issuer.Issue(Identity{Kind: KindStudent, ID: 7, Email: "s@example.com"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := verifier.Parse(token); err == nil {
		t.Error("Parse() accepted a token signed with a different secret")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	token, err := m.Issue(Identity{Kind: KindStudent, ID: 7, Email: "s@example.com"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := m.Parse(token); err == nil {
		t.Error("Parse() accepted an expired token")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := m.Parse(token); err == nil {
			t.Errorf("Parse(%q) accepted an invalid token", token)
		}
	}
}

func TestIdentityKindChecks(t *testing.T) {
	student := Identity{Kind: KindStudent}
	admin := Identity{Kind: KindAdmin}

	if !student.IsStudent() || student.IsAdmin() {
		t.Error("student identity misreported its kind")
	}
	if !admin.IsAdmin() || admin.IsStudent() {
		t.Error("admin identity misreported its kind")
	}
}

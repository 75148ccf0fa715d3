package notification

import "testing"

func TestNormalizeWhatsApp(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+919876543210", "whatsapp:+919876543210"},
		{"whatsapp:+919876543210", "whatsapp:+919876543210"},
		{"  +919876543210  ", "whatsapp:+919876543210"},
	}

	for _, tt := range tests {
		if got := normalizeWhatsApp(tt.in); got != tt.want {
			t.Errorf("normalizeWhatsApp(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

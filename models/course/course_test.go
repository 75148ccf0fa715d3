package course

import "testing"

func TestFormattedFees(t *testing.T) {
	tests := []struct {
		fees float64
		want string
	}{
		{4500, "₹ 4500.00"},
		{12999.5, "₹ 12999.50"},
		{0, "₹ 0.00"},
	}

	for _, tt := range tests {
		c := Course{Fees: tt.fees}
		if got := c.FormattedFees(); got != tt.want {
			t.Errorf("FormattedFees() with %v = %q, want %q", tt.fees, got, tt.want)
		}
	}
}

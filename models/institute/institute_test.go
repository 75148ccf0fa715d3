package institute

import "testing"

func TestYearsOfExperience(t *testing.T) {
	tests := []struct {
		name         string
		foundingYear int
		nowYear      int
		want         int
	}{
		{"typical", 2001, 2026, 25},
		{"same year", 2026, 2026, 0},
		{"future founding year", 2030, 2026, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := InstituteProfile{FoundingYear: tt.foundingYear}
			if got := p.YearsOfExperience(tt.nowYear); got != tt.want {
				t.Errorf("YearsOfExperience(%d) = %d, want %d", tt.nowYear, got, tt.want)
			}
		})
	}
}

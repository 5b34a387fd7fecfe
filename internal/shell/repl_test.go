package shell

import "testing"

func TestLineTooLong(t *testing.T) {
	cases := []struct {
		name  string
		line  string
		limit int
		want  bool
	}{
		{"under limit", "echo hi", 10, false},
		{"at limit", "0123456789", 10, false},
		{"over limit", "01234567890", 10, true},
		{"limit disabled", "01234567890", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := lineTooLong(tc.line, tc.limit); got != tc.want {
				t.Errorf("lineTooLong(%q, %d) = %v, want %v", tc.line, tc.limit, got, tc.want)
			}
		})
	}
}

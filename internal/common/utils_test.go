package common

import "testing"

func TestHasAny(t *testing.T) {
	if !HasAny("connection refused by peer", "timeout", "connection refused") {
		t.Errorf("expected match")
	}
	if HasAny("all good", "timeout", "refused") {
		t.Errorf("unexpected match")
	}
}

func TestSanitizeToken(t *testing.T) {
	tests := map[string]struct {
		in   string
		want string
	}{
		"plain":          {in: "London", want: "London"},
		"inner space":    {in: "New York", want: "New_York"},
		"extra space":    {in: "  Rio  de   Janeiro ", want: "Rio_de_Janeiro"},
		"already padded": {in: " Oslo ", want: "Oslo"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := SanitizeToken(tc.in); got != tc.want {
				t.Errorf("SanitizeToken(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

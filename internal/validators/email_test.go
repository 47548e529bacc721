package validators

import "testing"

func TestIsEmailValid(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"ayse@example.com", true},
		{"a.b+c@sub.example.org", true},
		{"", false},
		{"not-an-email", false},
		{"@example.com", false},
		{"ayse@", false},
		{"Ayşe Kaya <ayse@example.com>", false},
	}

	for _, tt := range tests {
		if got := IsEmailValid(tt.email); got != tt.want {
			t.Errorf("IsEmailValid(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

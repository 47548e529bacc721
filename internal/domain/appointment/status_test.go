package appointment

import "testing"

func TestIsValid(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusScheduled, true},
		{StatusAttended, true},
		{StatusMissed, true},
		{"", false},
		{"scheduled", false}, // English vocabulary belongs to events
		{"Geldi ", false},
	}

	for _, tt := range tests {
		if got := IsValid(tt.status); got != tt.want {
			t.Errorf("IsValid(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestInitialStatus(t *testing.T) {
	if InitialStatus() != StatusScheduled {
		t.Errorf("InitialStatus() = %q, want %q", InitialStatus(), StatusScheduled)
	}
}

func TestIsValidEventStatus(t *testing.T) {
	tests := []struct {
		status EventStatus
		want   bool
	}{
		{EventScheduled, true},
		{EventAttended, true},
		{EventMissed, true},
		{"Geldi", false}, // Turkish vocabulary belongs to appointments
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidEventStatus(tt.status); got != tt.want {
			t.Errorf("IsValidEventStatus(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

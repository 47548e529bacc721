package session

import (
	"testing"
	"time"
)

func TestCookieRoundTrip(t *testing.T) {
	value, err := EncodeCookie("secret", "abc-123", time.Hour)
	if err != nil {
		t.Fatalf("EncodeCookie: %v", err)
	}

	sid, err := DecodeCookie("secret", value)
	if err != nil {
		t.Fatalf("DecodeCookie: %v", err)
	}
	if sid != "abc-123" {
		t.Errorf("sid = %q, want %q", sid, "abc-123")
	}
}

func TestDecodeCookie_Rejects(t *testing.T) {
	valid, err := EncodeCookie("secret", "abc-123", time.Hour)
	if err != nil {
		t.Fatalf("EncodeCookie: %v", err)
	}

	expired, err := EncodeCookie("secret", "abc-123", -time.Hour)
	if err != nil {
		t.Fatalf("EncodeCookie: %v", err)
	}

	tests := []struct {
		name   string
		secret string
		value  string
	}{
		{"garbage", "secret", "not-a-token"},
		{"empty", "secret", ""},
		{"wrong secret", "other", valid},
		{"expired", "secret", expired},
		{"tampered payload", "secret", valid[:len(valid)-4] + "AAAA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeCookie(tt.secret, tt.value); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

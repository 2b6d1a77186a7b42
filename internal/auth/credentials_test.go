package auth

import (
	"testing"

	"github.com/amakha/storefront-backend/pkg/config"
)

func TestAdminVerifier(t *testing.T) {
	verifier, err := NewAdminVerifier(config.AdminConfig{Username: "admin", Password: "admin123"})
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}

	cases := []struct {
		username string
		password string
		want     bool
	}{
		{"admin", "admin123", true},
		{"admin", "wrong", false},
		{"root", "admin123", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := verifier.Verify(tc.username, tc.password)
		if err != nil {
			t.Fatalf("verify %q/%q: %v", tc.username, tc.password, err)
		}
		if got != tc.want {
			t.Fatalf("verify %q/%q: expected %v got %v", tc.username, tc.password, tc.want, got)
		}
	}
}

func TestNewAdminVerifierRequiresUsername(t *testing.T) {
	if _, err := NewAdminVerifier(config.AdminConfig{Username: "", Password: "x"}); err == nil {
		t.Fatalf("expected error for empty username")
	}
}

func TestNewAdminVerifierRequiresPassword(t *testing.T) {
	if _, err := NewAdminVerifier(config.AdminConfig{Username: "admin", Password: ""}); err == nil {
		t.Fatalf("expected error for empty password")
	}
}

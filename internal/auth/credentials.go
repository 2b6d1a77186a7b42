package auth

import (
	"crypto/subtle"
	"fmt"

	"github.com/amakha/storefront-backend/pkg/config"
	"github.com/amakha/storefront-backend/pkg/security"
)

// CredentialVerifier checks an admin username/password pair. Keeping this
// behind an interface means the demo hash-in-memory verifier can be swapped
// for a real credential store without touching the auth service.
type CredentialVerifier interface {
	Verify(username, password string) (bool, error)
}

// argonVerifier holds the expected username and an Argon2id hash of the
// password; the plaintext is discarded at construction.
type argonVerifier struct {
	username     string
	passwordHash string
}

// NewAdminVerifier hashes the configured admin password and returns a
// verifier for it.
func NewAdminVerifier(cfg config.AdminConfig) (CredentialVerifier, error) {
	if cfg.Username == "" {
		return nil, fmt.Errorf("admin username required")
	}
	hash, err := security.HashPassword(cfg.Password, security.DefaultParams())
	if err != nil {
		return nil, fmt.Errorf("hashing admin password: %w", err)
	}
	return &argonVerifier{username: cfg.Username, passwordHash: hash}, nil
}

func (v *argonVerifier) Verify(username, password string) (bool, error) {
	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	passMatch, err := security.VerifyPassword(password, v.passwordHash)
	if err != nil {
		return false, err
	}
	return userMatch && passMatch, nil
}

// Package session tracks the single live storefront session. The demo client
// holds at most one authenticated user at a time, so the registry is a slot
// rather than a table: starting a new session revokes whatever came before.
package session

import (
	"context"
	"sync"

	"github.com/amakha/storefront-backend/pkg/enums"
	"github.com/google/uuid"
)

// AccessSessionChecker verifies that a token's session is still live.
type AccessSessionChecker interface {
	HasSession(ctx context.Context, accessID string) (bool, error)
}

// Session is the current authenticated user context.
type Session struct {
	AccessID string
	UserID   int64
	Name     string
	Email    string
	Role     enums.UserRole
}

// Manager owns the process-wide session slot.
type Manager struct {
	mu      sync.Mutex
	current *Session
}

func NewManager() *Manager {
	return &Manager{}
}

// NewAccessID returns a fresh session identifier for a minted token.
func NewAccessID() string {
	return uuid.NewString()
}

// Start installs the session, replacing any previous one. It returns the
// access id of the session that was displaced, if any.
func (m *Manager) Start(_ context.Context, s Session) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var revoked string
	if m.current != nil {
		revoked = m.current.AccessID
	}
	held := s
	m.current = &held
	return revoked, nil
}

// HasSession reports whether the access id matches the live session.
func (m *Manager) HasSession(_ context.Context, accessID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current != nil && m.current.AccessID == accessID, nil
}

// Revoke clears the slot when the access id matches the live session.
// Revoking a stale id is a no-op.
func (m *Manager) Revoke(_ context.Context, accessID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current != nil && m.current.AccessID == accessID {
		m.current = nil
	}
	return nil
}

// Current returns a copy of the live session, if one exists.
func (m *Manager) Current() (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return Session{}, false
	}
	return *m.current, true
}

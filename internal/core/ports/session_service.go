package ports

import (
	"context"

	"github.com/carelink/portal-api/internal/core/domain"
)

// SessionService owns the active session: two states, Anonymous and
// Authenticated, with login/logout/restore as the only transitions.
type SessionService interface {
	// Login verifies (email, password) against the role's directory list.
	// Role is mandatory; its absence is a usage error, not a credential
	// failure. On success the session is applied in memory and persisted.
	Login(ctx context.Context, email, password, role string) (*domain.Session, error)

	// Logout clears the session and deletes the persisted slot. Idempotent.
	Logout(ctx context.Context) error

	// Restore loads the persisted slot, called once at startup. A corrupt
	// or invalid record is deleted and never surfaced as an error.
	Restore(ctx context.Context) error

	// Current returns the active session, if any.
	Current() (*domain.Session, bool)
}

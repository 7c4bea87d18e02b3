package ports

import "context"

// SessionStore holds at most one serialized session record under a fixed
// slot owned by the implementation. The session service is the only writer.
//
// Get returns domain.ErrNoSession when the slot is empty. The store never
// inspects the payload; parsing and validation belong to the caller.
type SessionStore interface {
	Get(ctx context.Context) ([]byte, error)
	Set(ctx context.Context, data []byte) error
	Delete(ctx context.Context) error
}

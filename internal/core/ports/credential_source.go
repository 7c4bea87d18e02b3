package ports

import (
	"context"

	"github.com/carelink/portal-api/internal/core/domain"
)

// CredentialSource provides the read-only, role-partitioned credential
// directory. Implementations fetch the whole document; the session service
// performs exactly one Fetch per login attempt.
type CredentialSource interface {
	Fetch(ctx context.Context) (*domain.CredentialDocument, error)
}

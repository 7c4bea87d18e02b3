package ports

import (
	"context"

	"github.com/carelink/portal-api/internal/core/domain"
)

// AuditRepository persists audit entries.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}

// AuditSink accepts audit entries for asynchronous recording. Record must
// not block the caller beyond queueing and must never fail the session
// operation that produced the entry.
type AuditSink interface {
	Record(entry domain.AuditEntry)
}

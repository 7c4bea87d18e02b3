package domain

import "time"

// Audit actions recorded on the session trail.
const (
	AuditLogin          = "login"
	AuditLogout         = "logout"
	AuditSessionDiscard = "session_discard"
)

// AuditEntry records a single session event for the audit trail.
type AuditEntry struct {
	AccountID string    `json:"account_id" bson:"account_id"`
	Role      string    `json:"role" bson:"role"`
	Action    string    `json:"action" bson:"action"`
	Detail    string    `json:"detail,omitempty" bson:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

package models

import "time"

// AuditOutcome classifies the result recorded in an audit entry.
type AuditOutcome string

const (
	AuditSuccess AuditOutcome = "success"
	AuditFailure AuditOutcome = "failure"
	AuditInfo    AuditOutcome = "info"
)

// AuditLogEntry is an immutable record of a significant action. Entries are
// kept newest-first and are never mutated or removed once written.
type AuditLogEntry struct {
	ID        string       `json:"id"`
	Timestamp time.Time    `json:"timestamp"`
	ActorID   string       `json:"actor_id"`
	ActorName string       `json:"actor_name"`
	Action    string       `json:"action"`
	Origin    string       `json:"origin"`
	Outcome   AuditOutcome `json:"outcome"`
	Detail    string       `json:"detail,omitempty"`
}

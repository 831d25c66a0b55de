package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hanafi-dev/sentra-portal-api/internal/models"
)

type originContextKey struct{}

// WithOrigin attaches the caller's network origin to the context so audit
// entries written further down record where the action came from.
func WithOrigin(ctx context.Context, origin string) context.Context {
	return context.WithValue(ctx, originContextKey{}, origin)
}

func originFromContext(ctx context.Context) string {
	if origin, ok := ctx.Value(originContextKey{}).(string); ok && origin != "" {
		return origin
	}
	return "local"
}

// AuditLog returns a copy of the audit trail, newest entry first.
func (s *Store) AuditLog() []models.AuditLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.auditLog.Get()
	out := make([]models.AuditLogEntry, len(entries))
	copy(out, entries)
	return out
}

// RecordAudit prepends an entry to the audit trail. Recording never fails:
// the in-memory prepend always happens and a failed durable write is only
// logged. There is no size cap and no rotation.
func (s *Store) RecordAudit(ctx context.Context, actorID, actorName, action string, outcome models.AuditOutcome, detail string) {
	entry := models.AuditLogEntry{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		ActorID:   actorID,
		ActorName: actorName,
		Action:    action,
		Origin:    originFromContext(ctx),
		Outcome:   outcome,
		Detail:    detail,
	}

	s.mu.Lock()
	s.auditLog.Update(ctx, func(entries []models.AuditLogEntry) []models.AuditLogEntry {
		return append([]models.AuditLogEntry{entry}, entries...)
	})
	s.mu.Unlock()

	s.broker.publish(CollectionAuditLog)
}

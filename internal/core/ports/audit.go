package ports

import (
	"context"
	"time"

	"github.com/rutacampus/ticketing-api/internal/core/domain"
)

// AuditEventInput is the raw event handed to the audit pipeline.
type AuditEventInput struct {
	Actor     string
	Action    string
	Entity    string
	EntityID  string
	Timestamp time.Time
}

// AuditSink accepts events for asynchronous processing. Enqueue must not
// block the caller beyond channel buffering.
type AuditSink interface {
	Enqueue(event AuditEventInput)
}

// AuditService processes a single audit event.
type AuditService interface {
	Process(ctx context.Context, event AuditEventInput) error
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}

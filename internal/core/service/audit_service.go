package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rutacampus/ticketing-api/internal/core/domain"
	"github.com/rutacampus/ticketing-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists entries through the
// audit repository. Processing runs on the dispatcher workers, off the
// request path.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Process(ctx context.Context, event ports.AuditEventInput) error {
	entry := &domain.AuditEntry{
		ID:        uuid.NewString(),
		Actor:     event.Actor,
		Action:    event.Action,
		Entity:    event.Entity,
		EntityID:  event.EntityID,
		Timestamp: event.Timestamp,
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}

	s.log.Debug().
		Str("action", event.Action).
		Str("entity", event.Entity).
		Str("entity_id", event.EntityID).
		Msg("audit entry recorded")
	return nil
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rutacampus/ticketing-api/internal/api/metrics"
	"github.com/rutacampus/ticketing-api/internal/core/domain"
	"github.com/rutacampus/ticketing-api/internal/core/ports"
)

// RedemptionDeduper abstracts the double-scan guard (Redis). A scan of the
// same student inside the dedup window is treated as a replay.
type RedemptionDeduper interface {
	IsDuplicate(ctx context.Context, identificacion string) (bool, error)
	Mark(ctx context.Context, identificacion string) error
}

// LedgerService implements the ticket/trip balance operations. The
// repository provides atomicity; this layer owns policy: input checks, the
// dedup window, metrics and the audit trail.
type LedgerService struct {
	ledger   ports.LedgerRepository
	students ports.StudentRepository
	dedup    RedemptionDeduper // optional, nil disables the scan window
	audit    ports.AuditSink
	log      zerolog.Logger
}

func NewLedgerService(ledger ports.LedgerRepository, students ports.StudentRepository, dedup RedemptionDeduper, audit ports.AuditSink, log zerolog.Logger) *LedgerService {
	return &LedgerService{ledger: ledger, students: students, dedup: dedup, audit: audit, log: log}
}

// SetTickets assigns a new ticket balance and resets the trip counter.
func (s *LedgerService) SetTickets(ctx context.Context, identificacion string, tickets int, actor *domain.Administrador) (*domain.Estudiante, error) {
	if identificacion == "" || tickets < 0 {
		return nil, domain.ErrInvalidTicketRequest
	}

	student, err := s.ledger.SetTickets(ctx, identificacion, tickets)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("identificacion", identificacion).
		Int("tickets", tickets).
		Str("actor", actor.Identificacion).
		Msg("ticket balance set")
	s.audit.Enqueue(ports.AuditEventInput{
		Actor:     actor.Identificacion,
		Action:    domain.AuditTicketsSet,
		Entity:    "estudiante",
		EntityID:  identificacion,
		Timestamp: time.Now().UTC(),
	})
	return student, nil
}

// DiscountTicket redeems one ticket: the trip row and the balance update
// commit together or not at all.
func (s *LedgerService) DiscountTicket(ctx context.Context, identificacion string, actor *domain.Administrador) (*domain.Estudiante, error) {
	if identificacion == "" {
		return nil, domain.ErrInvalidTicketRequest
	}

	if s.dedup != nil {
		isDup, err := s.dedup.IsDuplicate(ctx, identificacion)
		if err != nil {
			s.log.Warn().Err(err).Str("identificacion", identificacion).Msg("dedup check failed, processing anyway")
		} else if isDup {
			metrics.RedemptionsRejectedTotal.WithLabelValues("duplicate_scan").Inc()
			return nil, domain.ErrDuplicateRedemption
		}
	}

	now := time.Now().UTC()
	trip := &domain.Viaje{
		ID:              uuid.NewString(),
		AdministradorID: actor.ID,
		FechaViaje:      now,
		Hora:            now.Format("15:04:05"),
		Activo:          true,
		FechaCreacion:   now,
	}

	student, err := s.ledger.RedeemTicket(ctx, identificacion, trip)
	if err != nil {
		switch err {
		case domain.ErrInsufficientBalance:
			metrics.RedemptionsRejectedTotal.WithLabelValues("insufficient_balance").Inc()
		case domain.ErrStudentNotFound:
			metrics.RedemptionsRejectedTotal.WithLabelValues("student_not_found").Inc()
		}
		return nil, err
	}

	if s.dedup != nil {
		if markErr := s.dedup.Mark(ctx, identificacion); markErr != nil {
			s.log.Warn().Err(markErr).Str("identificacion", identificacion).Msg("failed to set dedup key")
		}
	}

	metrics.TripsRedeemedTotal.Inc()
	s.log.Info().
		Str("identificacion", identificacion).
		Int("numero_tiquetes", student.NumeroTiquetes).
		Str("actor", actor.Identificacion).
		Msg("ticket redeemed")
	s.audit.Enqueue(ports.AuditEventInput{
		Actor:     actor.Identificacion,
		Action:    domain.AuditTicketRedeemed,
		Entity:    "viaje",
		EntityID:  trip.ID,
		Timestamp: now,
	})
	return student, nil
}

// ListTrips returns the redemption history of a student, newest first.
func (s *LedgerService) ListTrips(ctx context.Context, identificacion string) ([]*domain.Viaje, error) {
	student, err := s.students.FindByIdentificacion(ctx, identificacion)
	if err != nil {
		return nil, err
	}
	return s.ledger.TripsByStudent(ctx, student.ID)
}

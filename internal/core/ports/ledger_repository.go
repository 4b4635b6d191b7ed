package ports

import (
	"context"

	"github.com/rutacampus/ticketing-api/internal/core/domain"
)

// LedgerRepository owns the ticket-balance mutations. Both operations must
// be atomic with respect to concurrent callers: two simultaneous redemptions
// of a balance of 1 must yield exactly one success.
type LedgerRepository interface {
	// SetTickets assigns a new ticket balance and resets the trip counter
	// to zero. Returns domain.ErrStudentNotFound when no student matches.
	SetTickets(ctx context.Context, identificacion string, tickets int) (*domain.Estudiante, error)

	// RedeemTicket decrements numero_tiquetes, increments numero_viajes
	// and inserts the given trip row in a single transaction. Returns
	// domain.ErrInsufficientBalance when the balance is already zero and
	// domain.ErrStudentNotFound when the student does not exist. The
	// trip's EstudianteID is filled in by the implementation.
	RedeemTicket(ctx context.Context, identificacion string, trip *domain.Viaje) (*domain.Estudiante, error)

	// TripsByStudent lists the trips recorded for a student, newest first.
	TripsByStudent(ctx context.Context, estudianteID string) ([]*domain.Viaje, error)
}

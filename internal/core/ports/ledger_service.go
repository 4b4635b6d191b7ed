package ports

import (
	"context"

	"github.com/rutacampus/ticketing-api/internal/core/domain"
)

// LedgerService defines the ticket-balance use cases. The actor is the
// administrator authorizing the mutation; DiscountTicket records it on the
// resulting trip row.
type LedgerService interface {
	SetTickets(ctx context.Context, identificacion string, tickets int, actor *domain.Administrador) (*domain.Estudiante, error)
	DiscountTicket(ctx context.Context, identificacion string, actor *domain.Administrador) (*domain.Estudiante, error)
	ListTrips(ctx context.Context, identificacion string) ([]*domain.Viaje, error)
}

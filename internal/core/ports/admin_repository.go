package ports

import (
	"context"

	"github.com/rutacampus/ticketing-api/internal/core/domain"
)

// AdminRepository defines persistence operations for administrators.
type AdminRepository interface {
	Create(ctx context.Context, a *domain.Administrador) (*domain.Administrador, error)
	FindByIdentificacion(ctx context.Context, identificacion string) (*domain.Administrador, error)
	Update(ctx context.Context, a *domain.Administrador) (*domain.Administrador, error)
	// Delete hard-deletes the administrator. Implementations must refuse
	// the delete with domain.ErrAdminHasTrips while trip rows still
	// reference the administrator.
	Delete(ctx context.Context, identificacion string) error
	Count(ctx context.Context) (int64, error)
}

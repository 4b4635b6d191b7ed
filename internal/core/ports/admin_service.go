package ports

import (
	"context"

	"github.com/rutacampus/ticketing-api/internal/core/domain"
)

// CreateAdminInput carries the registration payload for a new administrator.
type CreateAdminInput struct {
	Identificacion string
	Nombres        string
	Apellidos      string
	Telefono       string
	Cargo          string
	Empresa        string
	Email          string
	Password       string
}

// EditAdminInput carries a partial administrator update keyed by
// identificacion. Empty Password leaves the stored hash untouched.
type EditAdminInput struct {
	Identificacion string
	Nombres        string
	Apellidos      string
	Telefono       string
	Cargo          string
	Empresa        string
	Email          string
	Password       string
}

// AdminService defines the administrator registry use cases. Every
// operation requires an already-authenticated actor; the first
// administrator must be seeded out of band.
type AdminService interface {
	Create(ctx context.Context, input CreateAdminInput, actor *domain.Administrador) (*domain.Administrador, error)
	Edit(ctx context.Context, input EditAdminInput, actor *domain.Administrador) (*domain.Administrador, error)
	Delete(ctx context.Context, identificacion string, actor *domain.Administrador) (string, error)
}

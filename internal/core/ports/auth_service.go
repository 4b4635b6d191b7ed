package ports

import (
	"context"

	"github.com/rutacampus/ticketing-api/internal/core/domain"
)

// AuthService authenticates administrators and issues session tokens.
type AuthService interface {
	Authenticate(ctx context.Context, identificacion, password string) (*domain.Administrador, error)
	IssueToken(admin *domain.Administrador) (string, error)
}

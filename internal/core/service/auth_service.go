package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/rutacampus/ticketing-api/internal/core/domain"
	"github.com/rutacampus/ticketing-api/internal/core/ports"
)

// AuthService verifies administrator credentials and issues signed session
// tokens. The JWT secret and TTL come from configuration, never from
// package-level state.
type AuthService struct {
	repo      ports.AdminRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.AdminRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 15 * time.Minute
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Authenticate resolves an administrator by identificacion and verifies the
// password. Unknown identity and wrong password return the same error so
// callers cannot enumerate accounts.
func (s *AuthService) Authenticate(ctx context.Context, identificacion, password string) (*domain.Administrador, error) {
	if identificacion == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	admin, err := s.repo.FindByIdentificacion(ctx, identificacion)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return admin, nil
}

// IssueToken signs an HS256 token embedding the administrator's internal id
// (sub) and identificacion (id).
func (s *AuthService) IssueToken(admin *domain.Administrador) (string, error) {
	claims := jwt.MapClaims{
		"sub": admin.ID,
		"id":  admin.Identificacion,
		"exp": time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

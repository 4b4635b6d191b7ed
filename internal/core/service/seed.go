package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rutacampus/ticketing-api/internal/core/domain"
	"github.com/rutacampus/ticketing-api/internal/core/ports"
)

// EnsureSeedAdmin creates the bootstrap administrator when the registry is
// empty. Administrator creation through the API requires an authenticated
// actor, so the very first account has to come from configuration.
func EnsureSeedAdmin(ctx context.Context, repo ports.AdminRepository, input ports.CreateAdminInput, log zerolog.Logger) error {
	if input.Identificacion == "" {
		return nil
	}

	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	if err := ValidatePassword(input.Password); err != nil {
		return err
	}
	hash, err := hashPassword(input.Password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = repo.Create(ctx, &domain.Administrador{
		ID:             uuid.NewString(),
		Identificacion: input.Identificacion,
		Nombres:        input.Nombres,
		Apellidos:      input.Apellidos,
		Telefono:       input.Telefono,
		Cargo:          input.Cargo,
		Empresa:        input.Empresa,
		Email:          input.Email,
		PasswordHash:   hash,
		Activo:         true,
		FechaCreacion:  now,
		Actualiza:      now,
	})
	if err != nil {
		return err
	}

	log.Info().Str("identificacion", input.Identificacion).Msg("seed administrator created")
	return nil
}

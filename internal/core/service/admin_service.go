package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rutacampus/ticketing-api/internal/core/domain"
	"github.com/rutacampus/ticketing-api/internal/core/ports"
)

// AdminService implements the administrator registry. All operations are
// gated behind an authenticated actor by the transport layer; the actor is
// received here only for logging and the audit trail.
type AdminService struct {
	repo  ports.AdminRepository
	audit ports.AuditSink
	log   zerolog.Logger
}

func NewAdminService(repo ports.AdminRepository, audit ports.AuditSink, log zerolog.Logger) *AdminService {
	return &AdminService{repo: repo, audit: audit, log: log}
}

func (s *AdminService) Create(ctx context.Context, input ports.CreateAdminInput, actor *domain.Administrador) (*domain.Administrador, error) {
	if err := ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	admin := &domain.Administrador{
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
	}

	created, err := s.repo.Create(ctx, admin)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("identificacion", created.Identificacion).
		Str("actor", actor.Identificacion).
		Msg("administrator created")
	s.audit.Enqueue(ports.AuditEventInput{
		Actor:     actor.Identificacion,
		Action:    domain.AuditAdminCreated,
		Entity:    "administrador",
		EntityID:  created.Identificacion,
		Timestamp: now,
	})
	return created, nil
}

// Edit applies a partial update. Name, phone and cargo fields are only
// overwritten when the stored value is non-empty; empresa and email are
// always overwritten; a supplied password is re-hashed.
func (s *AdminService) Edit(ctx context.Context, input ports.EditAdminInput, actor *domain.Administrador) (*domain.Administrador, error) {
	admin, err := s.repo.FindByIdentificacion(ctx, input.Identificacion)
	if err != nil {
		return nil, err
	}

	if admin.Nombres != "" {
		admin.Nombres = input.Nombres
	}
	if admin.Apellidos != "" {
		admin.Apellidos = input.Apellidos
	}
	if admin.Telefono != "" {
		admin.Telefono = input.Telefono
	}
	if admin.Cargo != "" {
		admin.Cargo = input.Cargo
	}
	admin.Empresa = input.Empresa
	admin.Email = input.Email

	if input.Password != "" {
		if err := ValidatePassword(input.Password); err != nil {
			return nil, err
		}
		hash, err := hashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		admin.PasswordHash = hash
	}
	admin.Actualiza = time.Now().UTC()

	updated, err := s.repo.Update(ctx, admin)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("identificacion", updated.Identificacion).
		Str("actor", actor.Identificacion).
		Msg("administrator edited")
	s.audit.Enqueue(ports.AuditEventInput{
		Actor:     actor.Identificacion,
		Action:    domain.AuditAdminEdited,
		Entity:    "administrador",
		EntityID:  updated.Identificacion,
		Timestamp: admin.Actualiza,
	})
	return updated, nil
}

func (s *AdminService) Delete(ctx context.Context, identificacion string, actor *domain.Administrador) (string, error) {
	admin, err := s.repo.FindByIdentificacion(ctx, identificacion)
	if err != nil {
		return "", err
	}

	if err := s.repo.Delete(ctx, identificacion); err != nil {
		return "", err
	}

	s.log.Info().
		Str("identificacion", identificacion).
		Str("actor", actor.Identificacion).
		Msg("administrator deleted")
	s.audit.Enqueue(ports.AuditEventInput{
		Actor:     actor.Identificacion,
		Action:    domain.AuditAdminDeleted,
		Entity:    "administrador",
		EntityID:  identificacion,
		Timestamp: time.Now().UTC(),
	})
	return fmt.Sprintf("administrator %s (%s %s) deleted", admin.Identificacion, admin.Nombres, admin.Apellidos), nil
}

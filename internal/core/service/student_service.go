package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rutacampus/ticketing-api/internal/api/metrics"
	"github.com/rutacampus/ticketing-api/internal/core/domain"
	"github.com/rutacampus/ticketing-api/internal/core/ports"
)

// StudentService implements the student registry.
type StudentService struct {
	repo  ports.StudentRepository
	qr    ports.QRGenerator
	audit ports.AuditSink
	log   zerolog.Logger
}

func NewStudentService(repo ports.StudentRepository, qr ports.QRGenerator, audit ports.AuditSink, log zerolog.Logger) *StudentService {
	return &StudentService{repo: repo, qr: qr, audit: audit, log: log}
}

// Create registers a new student with a hashed password, a QR code derived
// from the identificacion, and zero ticket/trip balances.
func (s *StudentService) Create(ctx context.Context, input ports.CreateStudentInput, actor *domain.Administrador) (*domain.Estudiante, error) {
	if err := ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	qrImage, err := s.qr.Generate(input.Identificacion)
	if err != nil {
		return nil, fmt.Errorf("generate qr code: %w", err)
	}

	now := time.Now().UTC()
	student := &domain.Estudiante{
		ID:                 uuid.NewString(),
		TipoIdentificacion: input.TipoIdentificacion,
		Identificacion:     input.Identificacion,
		Nombres:            input.Nombres,
		Apellidos:          input.Apellidos,
		Institucion:        input.Institucion,
		Telefono:           input.Telefono,
		Direccion:          input.Direccion,
		Email:              input.Email,
		PasswordHash:       hash,
		NumeroTiquetes:     0,
		NumeroViajes:       0,
		CodigoQR:           qrImage,
		Activo:             true,
		FechaCreacion:      now,
		Actualiza:          now,
	}

	created, err := s.repo.Create(ctx, student)
	if err != nil {
		return nil, err
	}

	metrics.StudentsCreatedTotal.Inc()
	s.log.Info().
		Str("identificacion", created.Identificacion).
		Str("actor", actor.Identificacion).
		Msg("student registered")
	s.audit.Enqueue(ports.AuditEventInput{
		Actor:     actor.Identificacion,
		Action:    domain.AuditStudentCreated,
		Entity:    "estudiante",
		EntityID:  created.Identificacion,
		Timestamp: now,
	})
	return created, nil
}

func (s *StudentService) GetByIdentificacion(ctx context.Context, identificacion string) (*domain.Estudiante, error) {
	return s.repo.FindByIdentificacion(ctx, identificacion)
}

// List returns every student row, including inactive ones.
func (s *StudentService) List(ctx context.Context) ([]*domain.Estudiante, error) {
	return s.repo.FindAll(ctx)
}

// Delete hard-deletes a student and returns a confirmation message. The
// repository refuses the delete while trips still reference the student.
func (s *StudentService) Delete(ctx context.Context, identificacion string, actor *domain.Administrador) (string, error) {
	student, err := s.repo.FindByIdentificacion(ctx, identificacion)
	if err != nil {
		return "", err
	}

	if err := s.repo.Delete(ctx, identificacion); err != nil {
		return "", err
	}

	s.log.Info().
		Str("identificacion", identificacion).
		Str("actor", actor.Identificacion).
		Msg("student deleted")
	s.audit.Enqueue(ports.AuditEventInput{
		Actor:     actor.Identificacion,
		Action:    domain.AuditStudentDeleted,
		Entity:    "estudiante",
		EntityID:  identificacion,
		Timestamp: time.Now().UTC(),
	})
	return fmt.Sprintf("student %s (%s %s) deleted", student.Identificacion, student.Nombres, student.Apellidos), nil
}

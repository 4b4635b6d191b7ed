package ports

import (
	"context"

	"github.com/rutacampus/ticketing-api/internal/core/domain"
)

// CreateStudentInput carries the registration payload for a new student.
// Password is the plaintext candidate; the service hashes it after the
// policy check.
type CreateStudentInput struct {
	TipoIdentificacion string
	Identificacion     string
	Nombres            string
	Apellidos          string
	Institucion        string
	Telefono           string
	Direccion          string
	Email              string
	Password           string
}

// StudentService defines the student registry use cases.
type StudentService interface {
	Create(ctx context.Context, input CreateStudentInput, actor *domain.Administrador) (*domain.Estudiante, error)
	GetByIdentificacion(ctx context.Context, identificacion string) (*domain.Estudiante, error)
	List(ctx context.Context) ([]*domain.Estudiante, error)
	Delete(ctx context.Context, identificacion string, actor *domain.Administrador) (string, error)
}

package ports

import (
	"context"

	"github.com/rutacampus/ticketing-api/internal/core/domain"
)

// StudentRepository defines persistence operations for students.
type StudentRepository interface {
	Create(ctx context.Context, e *domain.Estudiante) (*domain.Estudiante, error)
	FindByIdentificacion(ctx context.Context, identificacion string) (*domain.Estudiante, error)
	FindAll(ctx context.Context) ([]*domain.Estudiante, error)
	// Delete hard-deletes the student. Implementations must refuse the
	// delete with domain.ErrStudentHasTrips while trip rows still
	// reference the student.
	Delete(ctx context.Context, identificacion string) error
}

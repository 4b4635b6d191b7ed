package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rutacampus/ticketing-api/internal/core/domain"
)

// StudentRepository persists students. It also reads the trips collection
// to enforce the delete restriction on students with recorded trips.
type StudentRepository struct {
	students *mongo.Collection
	trips    *mongo.Collection
}

func NewStudentRepository(db *mongo.Database) *StudentRepository {
	return &StudentRepository{
		students: db.Collection(collectionStudents),
		trips:    db.Collection(collectionTrips),
	}
}

func (r *StudentRepository) Create(ctx context.Context, e *domain.Estudiante) (*domain.Estudiante, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.students.InsertOne(ctx, e); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrStudentExists
		}
		return nil, fmt.Errorf("insert student: %w", err)
	}
	return e, nil
}

func (r *StudentRepository) FindByIdentificacion(ctx context.Context, identificacion string) (*domain.Estudiante, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e domain.Estudiante
	if err := r.students.FindOne(ctx, bson.M{"identificacion": identificacion}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("find student: %w", err)
	}
	return &e, nil
}

func (r *StudentRepository) FindAll(ctx context.Context) ([]*domain.Estudiante, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.students.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer cursor.Close(ctx)

	var list []*domain.Estudiante
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode students: %w", err)
	}
	return list, nil
}

// Delete removes the student row. Students referenced by trip rows cannot
// be deleted; the trip history is the redemption audit trail.
func (r *StudentRepository) Delete(ctx context.Context, identificacion string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e domain.Estudiante
	if err := r.students.FindOne(ctx, bson.M{"identificacion": identificacion}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrStudentNotFound
		}
		return fmt.Errorf("find student: %w", err)
	}

	n, err := r.trips.CountDocuments(ctx, bson.M{"estudiante_id": e.ID})
	if err != nil {
		return fmt.Errorf("count trips: %w", err)
	}
	if n > 0 {
		return domain.ErrStudentHasTrips
	}

	res, err := r.students.DeleteOne(ctx, bson.M{"identificacion": identificacion})
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}

// EnsureIndexes creates the uniqueness and lookup indexes for the student
// and trip collections.
func (r *StudentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "identificacion", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.students.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("student indexes: %w", err)
	}

	tripIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "estudiante_id", Value: 1}}},
		{Keys: bson.D{{Key: "administrador_id", Value: 1}}},
	}
	if _, err := r.trips.Indexes().CreateMany(ctx, tripIndexes); err != nil {
		return fmt.Errorf("trip indexes: %w", err)
	}
	return nil
}

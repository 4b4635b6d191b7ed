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

// AdminRepository persists administrators. It also reads the trips
// collection to refuse deleting an administrator who authorized trips.
type AdminRepository struct {
	admins *mongo.Collection
	trips  *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{
		admins: db.Collection(collectionAdmins),
		trips:  db.Collection(collectionTrips),
	}
}

func (r *AdminRepository) Create(ctx context.Context, a *domain.Administrador) (*domain.Administrador, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.admins.InsertOne(ctx, a); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAdminExists
		}
		return nil, fmt.Errorf("insert administrator: %w", err)
	}
	return a, nil
}

func (r *AdminRepository) FindByIdentificacion(ctx context.Context, identificacion string) (*domain.Administrador, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Administrador
	if err := r.admins.FindOne(ctx, bson.M{"identificacion": identificacion}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("find administrator: %w", err)
	}
	return &a, nil
}

func (r *AdminRepository) Update(ctx context.Context, a *domain.Administrador) (*domain.Administrador, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.admins.ReplaceOne(ctx, bson.M{"_id": a.ID}, a)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAdminExists
		}
		return nil, fmt.Errorf("update administrator: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrAdminNotFound
	}
	return a, nil
}

// Delete removes the administrator row. Administrators referenced by trip
// rows cannot be deleted; every trip must keep resolving to the
// administrator who authorized it.
func (r *AdminRepository) Delete(ctx context.Context, identificacion string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Administrador
	if err := r.admins.FindOne(ctx, bson.M{"identificacion": identificacion}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrAdminNotFound
		}
		return fmt.Errorf("find administrator: %w", err)
	}

	n, err := r.trips.CountDocuments(ctx, bson.M{"administrador_id": a.ID})
	if err != nil {
		return fmt.Errorf("count trips: %w", err)
	}
	if n > 0 {
		return domain.ErrAdminHasTrips
	}

	res, err := r.admins.DeleteOne(ctx, bson.M{"identificacion": identificacion})
	if err != nil {
		return fmt.Errorf("delete administrator: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAdminNotFound
	}
	return nil
}

func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.admins.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count administrators: %w", err)
	}
	return n, nil
}

// EnsureIndexes creates the uniqueness indexes for the administrator
// collection.
func (r *AdminRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "identificacion", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.admins.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("administrator indexes: %w", err)
	}
	return nil
}

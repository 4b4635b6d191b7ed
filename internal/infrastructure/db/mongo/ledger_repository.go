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

// LedgerRepository implements the ticket-balance mutations. RedeemTicket is
// the only multi-document write in the system and runs inside a session
// transaction so the trip row and the balance update commit together.
type LedgerRepository struct {
	client   *mongo.Client
	students *mongo.Collection
	trips    *mongo.Collection
}

func NewLedgerRepository(client *mongo.Client, db *mongo.Database) *LedgerRepository {
	return &LedgerRepository{
		client:   client,
		students: db.Collection(collectionStudents),
		trips:    db.Collection(collectionTrips),
	}
}

// SetTickets assigns the new balance and resets the trip counter in a single
// document update.
func (r *LedgerRepository) SetTickets(ctx context.Context, identificacion string, tickets int) (*domain.Estudiante, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e domain.Estudiante
	err := r.students.FindOneAndUpdate(ctx,
		bson.M{"identificacion": identificacion},
		bson.M{"$set": bson.M{
			"numero_tiquetes": tickets,
			"numero_viajes":   0,
			"actualiza":       time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("set tickets: %w", err)
	}
	return &e, nil
}

// RedeemTicket decrements the balance and records the trip atomically. The
// balance filter (numero_tiquetes > 0) makes the decrement conditional, so
// two concurrent redemptions of a balance of 1 cannot both succeed.
func (r *LedgerRepository) RedeemTicket(ctx context.Context, identificacion string, trip *domain.Viaje) (*domain.Estudiante, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	session, err := r.client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var e domain.Estudiante
		err := r.students.FindOneAndUpdate(sc,
			bson.M{"identificacion": identificacion, "numero_tiquetes": bson.M{"$gt": 0}},
			bson.M{
				"$inc": bson.M{"numero_tiquetes": -1, "numero_viajes": 1},
				"$set": bson.M{"actualiza": trip.FechaCreacion},
			},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&e)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				n, cerr := r.students.CountDocuments(sc, bson.M{"identificacion": identificacion})
				if cerr != nil {
					return nil, fmt.Errorf("count students: %w", cerr)
				}
				if n == 0 {
					return nil, domain.ErrStudentNotFound
				}
				return nil, domain.ErrInsufficientBalance
			}
			return nil, fmt.Errorf("discount ticket: %w", err)
		}

		trip.EstudianteID = e.ID
		if _, err := r.trips.InsertOne(sc, trip); err != nil {
			return nil, fmt.Errorf("insert trip: %w", err)
		}
		return &e, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.Estudiante), nil
}

// TripsByStudent lists a student's trips, newest first.
func (r *LedgerRepository) TripsByStudent(ctx context.Context, estudianteID string) ([]*domain.Viaje, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.trips.Find(ctx,
		bson.M{"estudiante_id": estudianteID},
		options.Find().SetSort(bson.D{{Key: "fecha_creacion", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	defer cursor.Close(ctx)

	var trips []*domain.Viaje
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, fmt.Errorf("decode trips: %w", err)
	}
	return trips, nil
}

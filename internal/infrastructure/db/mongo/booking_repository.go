package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SantoSarker101/airbnb-server/internal/core/domain"
)

const collectionBookings = "bookings"

type bookingDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	domain.Booking `bson:",inline"`
}

// BookingRepository persists reservations in the bookings collection.
type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection(collectionBookings)}
}

// Insert stores a new booking and returns the generated id in hex form.
func (r *BookingRepository) Insert(ctx context.Context, booking *domain.Booking) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, bookingDoc{Booking: *booking})
	if err != nil {
		return "", fmt.Errorf("insert booking: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert booking: unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *BookingRepository) FindByGuestEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	return r.find(ctx, bson.M{"guest.email": email})
}

func (r *BookingRepository) FindByHostEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	return r.find(ctx, bson.M{"host": email})
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) find(ctx context.Context, filter bson.M) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer cur.Close(ctx)

	bookings := make([]*domain.Booking, 0)
	for cur.Next(ctx) {
		var doc bookingDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		booking := doc.Booking
		booking.ID = doc.ID.Hex()
		bookings = append(bookings, &booking)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}
	return bookings, nil
}

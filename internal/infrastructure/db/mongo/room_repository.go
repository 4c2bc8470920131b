package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/SantoSarker101/airbnb-server/internal/core/domain"
)

const collectionRooms = "rooms"

// roomDoc pairs the generated ObjectID with the domain fields. The domain
// type deliberately has no bson id mapping; the hex form is set here.
type roomDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	domain.Room `bson:",inline"`
}

// RoomRepository persists listings in the rooms collection.
type RoomRepository struct {
	col *mongo.Collection
}

func NewRoomRepository(db *mongo.Database) *RoomRepository {
	return &RoomRepository{col: db.Collection(collectionRooms)}
}

// Insert stores a new listing and returns the generated id in hex form.
func (r *RoomRepository) Insert(ctx context.Context, room *domain.Room) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, roomDoc{Room: *room})
	if err != nil {
		return "", fmt.Errorf("insert room: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert room: unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *RoomRepository) FindAll(ctx context.Context) ([]*domain.Room, error) {
	return r.find(ctx, bson.M{})
}

func (r *RoomRepository) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc roomDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room: %w", err)
	}

	room := doc.Room
	room.ID = doc.ID.Hex()
	return &room, nil
}

func (r *RoomRepository) FindByHostEmail(ctx context.Context, email string) ([]*domain.Room, error) {
	return r.find(ctx, bson.M{"host.email": email})
}

// SetBookedStatus flips the booked flag on an existing room.
func (r *RoomRepository) SetBookedStatus(ctx context.Context, id string, booked bool) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"booked": booked}})
	if err != nil {
		return fmt.Errorf("update room status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

// Replace overwrites the full document at id, inserting when absent.
func (r *RoomRepository) Replace(ctx context.Context, id string, room *domain.Room) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err = r.col.ReplaceOne(ctx,
		bson.M{"_id": oid},
		roomDoc{Room: *room},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("replace room: %w", err)
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func (r *RoomRepository) find(ctx context.Context, filter bson.M) ([]*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find rooms: %w", err)
	}
	defer cur.Close(ctx)

	rooms := make([]*domain.Room, 0)
	for cur.Next(ctx) {
		var doc roomDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode room: %w", err)
		}
		room := doc.Room
		room.ID = doc.ID.Hex()
		rooms = append(rooms, &room)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate rooms: %w", err)
	}
	return rooms, nil
}

// parseObjectID converts a hex path parameter into an ObjectID, mapping
// malformed input to ErrInvalidID so the API can answer 400 instead of 500.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}

package ports

import (
	"context"

	"github.com/SantoSarker101/airbnb-server/internal/core/domain"
)

// RoomRepository persists room listings.
type RoomRepository interface {
	// Insert stores a new room and returns its generated id.
	Insert(ctx context.Context, room *domain.Room) (string, error)
	FindAll(ctx context.Context) ([]*domain.Room, error)
	FindByID(ctx context.Context, id string) (*domain.Room, error)
	FindByHostEmail(ctx context.Context, email string) ([]*domain.Room, error)
	// SetBookedStatus flips the booked flag on an existing room.
	SetBookedStatus(ctx context.Context, id string, booked bool) error
	// Replace overwrites the full document at id, inserting when absent.
	Replace(ctx context.Context, id string, room *domain.Room) error
	Delete(ctx context.Context, id string) error
}

package ports

import (
	"context"

	"github.com/SantoSarker101/airbnb-server/internal/core/domain"
)

// RoomService defines use-case operations for listings.
type RoomService interface {
	Create(ctx context.Context, room *domain.Room) (string, error)
	List(ctx context.Context) ([]*domain.Room, error)
	Get(ctx context.Context, id string) (*domain.Room, error)
	// ListByHost returns listings whose host email matches exactly.
	ListByHost(ctx context.Context, email string) ([]*domain.Room, error)
	SetBookedStatus(ctx context.Context, id string, booked bool) error
	Replace(ctx context.Context, id string, room *domain.Room) error
	Delete(ctx context.Context, id string) error
}

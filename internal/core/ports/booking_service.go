package ports

import (
	"context"

	"github.com/SantoSarker101/airbnb-server/internal/core/domain"
)

// BookingService defines use-case operations for reservations.
//
// Create's contract: the booking succeeds once the insert succeeds.
// Notification delivery happens after the fact through the dispatcher and a
// delivery failure never surfaces to the caller.
type BookingService interface {
	Create(ctx context.Context, booking *domain.Booking) (string, error)
	ListByGuest(ctx context.Context, email string) ([]*domain.Booking, error)
	ListByHost(ctx context.Context, email string) ([]*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

package ports

import (
	"context"

	"github.com/SantoSarker101/airbnb-server/internal/core/domain"
)

// BookingRepository persists reservations. Bookings are immutable once
// inserted; the only mutation is deletion.
type BookingRepository interface {
	// Insert stores a new booking and returns its generated id.
	Insert(ctx context.Context, booking *domain.Booking) (string, error)
	FindByGuestEmail(ctx context.Context, email string) ([]*domain.Booking, error)
	FindByHostEmail(ctx context.Context, email string) ([]*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

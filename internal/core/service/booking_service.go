package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/SantoSarker101/airbnb-server/internal/api/metrics"
	"github.com/SantoSarker101/airbnb-server/internal/core/domain"
	"github.com/SantoSarker101/airbnb-server/internal/core/ports"
)

// BookingService implements reservation use cases.
type BookingService struct {
	repo       ports.BookingRepository
	dispatcher ports.NotificationDispatcher
	logger     zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, dispatcher ports.NotificationDispatcher, logger zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, dispatcher: dispatcher, logger: logger}
}

// Create inserts the booking and enqueues the two confirmation emails, one
// to the guest and one to the host. The insert alone decides success: both
// notifications are delivered asynchronously and a delivery failure is
// logged by the dispatcher, never surfaced here.
func (s *BookingService) Create(ctx context.Context, booking *domain.Booking) (string, error) {
	id, err := s.repo.Insert(ctx, booking)
	if err != nil {
		return "", err
	}

	metrics.BookingsCreatedTotal.Inc()
	s.logger.Info().
		Str("booking_id", id).
		Str("guest_email", booking.Guest.Email).
		Str("host", booking.Host).
		Msg("booking created")

	s.dispatcher.Enqueue(ports.Notification{
		BookingID: id,
		Recipient: "guest",
		To:        booking.Guest.Email,
		Subject:   "Booking Successful!",
		Body: fmt.Sprintf(
			"Your booking for %s from %s to %s is confirmed. Transaction ID: %s.",
			booking.Title, booking.From, booking.To, booking.TransactionID,
		),
	})
	s.dispatcher.Enqueue(ports.Notification{
		BookingID: id,
		Recipient: "host",
		To:        booking.Host,
		Subject:   "Your room got booked!",
		Body: fmt.Sprintf(
			"%s booked %s from %s to %s.",
			booking.Guest.Name, booking.Title, booking.From, booking.To,
		),
	})

	return id, nil
}

func (s *BookingService) ListByGuest(ctx context.Context, email string) ([]*domain.Booking, error) {
	return s.repo.FindByGuestEmail(ctx, email)
}

func (s *BookingService) ListByHost(ctx context.Context, email string) ([]*domain.Booking, error) {
	return s.repo.FindByHostEmail(ctx, email)
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("booking_id", id).Msg("booking deleted")
	return nil
}

package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/SantoSarker101/airbnb-server/internal/api/metrics"
	"github.com/SantoSarker101/airbnb-server/internal/core/domain"
	"github.com/SantoSarker101/airbnb-server/internal/core/ports"
)

// RoomService implements listing use cases.
type RoomService struct {
	repo   ports.RoomRepository
	logger zerolog.Logger
}

func NewRoomService(repo ports.RoomRepository, logger zerolog.Logger) *RoomService {
	return &RoomService{repo: repo, logger: logger}
}

// Create inserts a new listing. Rooms start unbooked; the booked flag only
// changes through SetBookedStatus or a full replace.
func (s *RoomService) Create(ctx context.Context, room *domain.Room) (string, error) {
	room.Booked = false

	id, err := s.repo.Insert(ctx, room)
	if err != nil {
		return "", err
	}

	metrics.RoomsCreatedTotal.Inc()
	s.logger.Info().
		Str("room_id", id).
		Str("host_email", room.Host.Email).
		Msg("room created")

	return id, nil
}

func (s *RoomService) List(ctx context.Context) ([]*domain.Room, error) {
	return s.repo.FindAll(ctx)
}

func (s *RoomService) Get(ctx context.Context, id string) (*domain.Room, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RoomService) ListByHost(ctx context.Context, email string) ([]*domain.Room, error) {
	return s.repo.FindByHostEmail(ctx, email)
}

func (s *RoomService) SetBookedStatus(ctx context.Context, id string, booked bool) error {
	if err := s.repo.SetBookedStatus(ctx, id, booked); err != nil {
		return err
	}
	s.logger.Info().Str("room_id", id).Bool("booked", booked).Msg("room status updated")
	return nil
}

func (s *RoomService) Replace(ctx context.Context, id string, room *domain.Room) error {
	if err := s.repo.Replace(ctx, id, room); err != nil {
		return err
	}
	s.logger.Info().Str("room_id", id).Msg("room replaced")
	return nil
}

func (s *RoomService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("room_id", id).Msg("room deleted")
	return nil
}

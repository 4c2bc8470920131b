package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/SantoSarker101/airbnb-server/internal/core/domain"
	"github.com/SantoSarker101/airbnb-server/internal/core/ports"
)

// UserService implements account upsert and lookup.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Upsert stores the profile under its email. A repeated PUT for the same
// address overwrites the previous document, so exactly one document per
// email ever exists.
func (s *UserService) Upsert(ctx context.Context, user *domain.User) (*domain.User, error) {
	created, err := s.repo.Upsert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("email", user.Email).
		Bool("created", created).
		Msg("user upserted")

	return user, nil
}

func (s *UserService) Get(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

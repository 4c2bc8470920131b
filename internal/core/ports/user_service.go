package ports

import (
	"context"

	"github.com/SantoSarker101/airbnb-server/internal/core/domain"
)

// UserService defines use-case operations for accounts.
type UserService interface {
	// Upsert stores the profile under its email and returns the stored view.
	Upsert(ctx context.Context, user *domain.User) (*domain.User, error)
	Get(ctx context.Context, email string) (*domain.User, error)
}

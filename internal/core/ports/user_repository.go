package ports

import (
	"context"

	"github.com/SantoSarker101/airbnb-server/internal/core/domain"
)

// UserRepository persists marketplace accounts keyed by email.
type UserRepository interface {
	// Upsert creates the user or overwrites the existing document for the
	// same email. Returns true when a new document was inserted.
	Upsert(ctx context.Context, user *domain.User) (bool, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

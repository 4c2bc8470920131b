package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/SantoSarker101/airbnb-server/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Upsert(_ context.Context, user *domain.User) (bool, error) {
	_, existed := r.users[user.Email]
	clone := *user
	r.users[user.Email] = &clone
	return !existed, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func TestUserService_Upsert_OverwritesSameEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	_, err := svc.Upsert(context.Background(), &domain.User{Email: "a@x.com", Role: "guest", Name: "A"})
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	_, err = svc.Upsert(context.Background(), &domain.User{Email: "a@x.com", Role: "host", Name: "A2"})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one document, got %d", len(repo.users))
	}

	stored, err := svc.Get(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if stored.Role != "host" || stored.Name != "A2" {
		t.Fatalf("expected latest payload fields, got %+v", stored)
	}
}

func TestUserService_Get_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.Get(context.Background(), "ghost@x.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

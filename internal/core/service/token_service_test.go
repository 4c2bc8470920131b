package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/SantoSarker101/airbnb-server/internal/core/domain"
)

func TestTokenService_Issue_Roundtrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(map[string]any{"email": "g@x.com", "role": "guest"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["email"] != "g@x.com" {
		t.Fatalf("expected email claim, got %v", claims["email"])
	}
	if claims["role"] != "guest" {
		t.Fatalf("expected role claim, got %v", claims["role"])
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("expected numeric exp claim, got %T", claims["exp"])
	}
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		t.Fatalf("token already expired")
	}
}

func TestTokenService_Issue_MissingEmail(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	if _, err := svc.Issue(map[string]any{"role": "guest"}); !errors.Is(err, domain.ErrMissingEmailClaim) {
		t.Fatalf("expected ErrMissingEmailClaim, got %v", err)
	}
	if _, err := svc.Issue(map[string]any{"email": ""}); !errors.Is(err, domain.ErrMissingEmailClaim) {
		t.Fatalf("expected ErrMissingEmailClaim for empty email, got %v", err)
	}
}

func TestTokenService_Issue_DoesNotMutateInput(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	in := map[string]any{"email": "g@x.com"}

	if _, err := svc.Issue(in); err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, ok := in["exp"]; ok {
		t.Fatalf("input claims were mutated")
	}
}

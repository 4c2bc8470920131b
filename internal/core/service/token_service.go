package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/SantoSarker101/airbnb-server/internal/core/domain"
)

// TokenService signs bearer tokens from client-supplied claims.
type TokenService struct {
	secret string
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 8760 * time.Hour
	}
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue signs an HS256 token carrying the submitted claims plus an expiry.
// The claims must contain a non-empty email; everything else is passed
// through verbatim.
func (s *TokenService) Issue(claims map[string]any) (string, error) {
	email, _ := claims["email"].(string)
	if email == "" {
		return "", domain.ErrMissingEmailClaim
	}

	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}
	mc["exp"] = time.Now().Add(s.ttl).Unix()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	return t.SignedString([]byte(s.secret))
}

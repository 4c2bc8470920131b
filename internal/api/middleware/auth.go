package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Context keys populated by Auth for downstream handlers.
const (
	ContextKeyEmail  = "email"
	ContextKeyClaims = "claims"
)

// Auth validates the bearer token and injects the decoded claims into the
// request context. Routes that disclose host-private data compose this with
// RequireEmailMatch.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ContextKeyEmail, claims["email"])
			c.Set(ContextKeyClaims, claims)

			return next(c)
		}
	}
}

// RequireEmailMatch enforces that the token's email claim equals the named
// path parameter. Must run after Auth.
func RequireEmailMatch(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get(ContextKeyEmail).(string)
			if email == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing email claim")
			}
			if email != c.Param(param) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
			}
			return next(c)
		}
	}
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SantoSarker101/airbnb-server/internal/core/ports"
)

// TokenHandler issues bearer tokens.
type TokenHandler struct {
	service ports.TokenService
}

func NewTokenHandler(service ports.TokenService) *TokenHandler {
	return &TokenHandler{service: service}
}

// Issue handles POST /jwt. The submitted claim object is signed verbatim;
// only the email field is mandatory.
//
// @Summary      Issue a bearer token from a claim object
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]any  true  "Claim object, must contain email"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Router       /jwt [post]
func (h *TokenHandler) Issue(c echo.Context) error {
	claims := map[string]any{}
	if err := c.Bind(&claims); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, err := h.service.Issue(claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

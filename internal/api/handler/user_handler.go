package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SantoSarker101/airbnb-server/internal/core/domain"
	"github.com/SantoSarker101/airbnb-server/internal/core/ports"
)

// UserHandler handles HTTP requests for account profiles.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Upsert handles PUT /users/:email.
//
// @Summary      Create or overwrite a user profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        email  path      string             true  "User email (natural key)"
// @Param        body   body      upsertUserRequest  true  "Profile fields"
// @Success      200    {object}  domain.User
// @Failure      400    {object}  errorResponse
// @Router       /users/{email} [put]
func (h *UserHandler) Upsert(c echo.Context) error {
	var req upsertUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user := &domain.User{
		Email:  c.Param("email"),
		Name:   req.Name,
		Image:  req.Image,
		Role:   req.Role,
		Status: req.Status,
	}

	stored, err := h.service.Upsert(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stored)
}

// Get handles GET /users/:email.
//
// @Summary      Fetch a user profile by email
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  domain.User
// @Failure      404    {object}  errorResponse
// @Router       /users/{email} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

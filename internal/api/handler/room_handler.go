package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SantoSarker101/airbnb-server/internal/core/domain"
	"github.com/SantoSarker101/airbnb-server/internal/core/ports"
)

// RoomHandler handles HTTP requests for room listings.
type RoomHandler struct {
	service ports.RoomService
}

func NewRoomHandler(service ports.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

// List handles GET /rooms.
//
// @Summary      List all rooms
// @Tags         rooms
// @Produce      json
// @Success      200  {array}  domain.Room
// @Router       /rooms [get]
func (h *RoomHandler) List(c echo.Context) error {
	rooms, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rooms)
}

// Get handles GET /room/:id.
//
// @Summary      Fetch a single room by id
// @Tags         rooms
// @Produce      json
// @Param        id   path      string  true  "Room id (hex)"
// @Success      200  {object}  domain.Room
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /room/{id} [get]
func (h *RoomHandler) Get(c echo.Context) error {
	room, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// ListByHost handles GET /rooms/:email. The route is gated by Auth and
// RequireEmailMatch, so by the time this runs the caller is the host.
//
// @Summary      List rooms owned by a host
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        email  path     string  true  "Host email, must match token claim"
// @Success      200    {array}  domain.Room
// @Failure      401    {object} errorResponse
// @Failure      403    {object} errorResponse
// @Router       /rooms/{email} [get]
func (h *RoomHandler) ListByHost(c echo.Context) error {
	rooms, err := h.service.ListByHost(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rooms)
}

// Create handles POST /rooms.
//
// @Summary      Create a room listing
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        body  body      roomRequest  true  "Room details"
// @Success      201   {object}  insertedResponse
// @Failure      400   {object}  errorResponse
// @Router       /rooms [post]
func (h *RoomHandler) Create(c echo.Context) error {
	var req roomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.Create(c.Request().Context(), toRoom(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, insertedResponse{InsertedID: id})
}

// UpdateStatus handles PATCH /rooms/status/:id.
//
// @Summary      Set a room's booked flag
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "Room id (hex)"
// @Param        body  body      updateRoomStatusRequest  true  "New booked status"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /rooms/status/{id} [patch]
func (h *RoomHandler) UpdateStatus(c echo.Context) error {
	var req updateRoomStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.SetBookedStatus(c.Request().Context(), c.Param("id"), *req.Status); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"booked": *req.Status})
}

// Replace handles PUT /rooms/:id.
//
// @Summary      Replace a room document
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Room id (hex)"
// @Param        body  body      roomRequest  true  "Full room document"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /rooms/{id} [put]
func (h *RoomHandler) Replace(c echo.Context) error {
	var req roomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id := c.Param("id")
	if err := h.service.Replace(c.Request().Context(), id, toRoom(req)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"id": id})
}

// Delete handles DELETE /rooms/:id.
//
// @Summary      Delete a room
// @Tags         rooms
// @Param        id  path  string  true  "Room id (hex)"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /rooms/{id} [delete]
func (h *RoomHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// toRoom maps the HTTP request onto the domain type.
func toRoom(req roomRequest) *domain.Room {
	return &domain.Room{
		Location:    req.Location,
		Category:    req.Category,
		Title:       req.Title,
		Image:       req.Image,
		Price:       req.Price,
		TotalGuest:  req.TotalGuest,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Description: req.Description,
		From:        req.From,
		To:          req.To,
		Booked:      req.Booked,
		Host: domain.Host{
			Name:  req.Host.Name,
			Image: req.Host.Image,
			Email: req.Host.Email,
		},
	}
}

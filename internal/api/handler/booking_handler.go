package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SantoSarker101/airbnb-server/internal/core/domain"
	"github.com/SantoSarker101/airbnb-server/internal/core/ports"
)

// BookingHandler handles HTTP requests for reservations.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// ListByGuest handles GET /bookings?email=. A missing email is an explicit
// 400, not a dropped response.
//
// @Summary      List bookings made by a guest
// @Tags         bookings
// @Produce      json
// @Param        email  query    string  true  "Guest email"
// @Success      200    {array}  domain.Booking
// @Failure      400    {object} errorResponse
// @Router       /bookings [get]
func (h *BookingHandler) ListByGuest(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email query parameter is required")
	}

	bookings, err := h.service.ListByGuest(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// ListByHost handles GET /bookings/host?email=.
//
// @Summary      List bookings received by a host
// @Tags         bookings
// @Produce      json
// @Param        email  query    string  true  "Host email"
// @Success      200    {array}  domain.Booking
// @Failure      400    {object} errorResponse
// @Router       /bookings/host [get]
func (h *BookingHandler) ListByHost(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email query parameter is required")
	}

	bookings, err := h.service.ListByHost(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// Create handles POST /bookings.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  insertedResponse
// @Failure      400   {object}  errorResponse
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking := &domain.Booking{
		Guest: domain.Guest{
			Name:  req.Guest.Name,
			Image: req.Guest.Image,
			Email: req.Guest.Email,
		},
		Host:          req.Host,
		RoomID:        req.RoomID,
		Location:      req.Location,
		Title:         req.Title,
		Image:         req.Image,
		Price:         req.Price,
		From:          req.From,
		To:            req.To,
		TransactionID: req.TransactionID,
	}

	id, err := h.service.Create(c.Request().Context(), booking)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, insertedResponse{InsertedID: id})
}

// Delete handles DELETE /bookings/:id.
//
// @Summary      Delete a booking
// @Tags         bookings
// @Param        id  path  string  true  "Booking id (hex)"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /bookings/{id} [delete]
func (h *BookingHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

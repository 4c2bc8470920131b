package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SantoSarker101/airbnb-server/internal/core/ports"
)

// PaymentHandler creates payment intents. The route is gated by Auth.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// CreateIntent handles POST /create-payment-intent. A missing or
// non-numeric price is an explicit 400, not an empty response.
//
// @Summary      Create a payment intent
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPaymentIntentRequest  true  "Price as decimal string"
// @Success      200   {object}  paymentIntentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req createPaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	secret, err := h.service.CreateIntent(c.Request().Context(), req.Price)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, paymentIntentResponse{ClientSecret: secret})
}

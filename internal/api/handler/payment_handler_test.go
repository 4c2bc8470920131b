package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/SantoSarker101/airbnb-server/internal/core/domain"
)

type stubPaymentService struct {
	createIntentFn func(ctx context.Context, price string) (string, error)
}

func (s *stubPaymentService) CreateIntent(ctx context.Context, price string) (string, error) {
	return s.createIntentFn(ctx, price)
}

func TestPaymentHandler_CreateIntent_Success(t *testing.T) {
	e := newTestEcho()
	h := NewPaymentHandler(&stubPaymentService{
		createIntentFn: func(ctx context.Context, price string) (string, error) {
			if price != "50" {
				t.Fatalf("unexpected price: %s", price)
			}
			return "pi_secret_123", nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{"price":"50"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateIntent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["clientSecret"] != "pi_secret_123" {
		t.Fatalf("expected clientSecret in response, got %+v", resp)
	}
}

func TestPaymentHandler_CreateIntent_BadPrice(t *testing.T) {
	e := newTestEcho()
	h := NewPaymentHandler(&stubPaymentService{
		createIntentFn: func(ctx context.Context, price string) (string, error) {
			return "", domain.ErrInvalidPrice
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{"price":"abc"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateIntent(c); err != domain.ErrInvalidPrice {
		t.Fatalf("expected ErrInvalidPrice to propagate, got %v", err)
	}
}

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

type stubBookingService struct {
	createFn      func(ctx context.Context, booking *domain.Booking) (string, error)
	listByGuestFn func(ctx context.Context, email string) ([]*domain.Booking, error)
	listByHostFn  func(ctx context.Context, email string) ([]*domain.Booking, error)
	deleteFn      func(ctx context.Context, id string) error
}

func (s *stubBookingService) Create(ctx context.Context, booking *domain.Booking) (string, error) {
	return s.createFn(ctx, booking)
}

func (s *stubBookingService) ListByGuest(ctx context.Context, email string) ([]*domain.Booking, error) {
	return s.listByGuestFn(ctx, email)
}

func (s *stubBookingService) ListByHost(ctx context.Context, email string) ([]*domain.Booking, error) {
	return s.listByHostFn(ctx, email)
}

func (s *stubBookingService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestBookingHandler_ListByGuest_MissingEmail(t *testing.T) {
	e := newTestEcho()
	h := NewBookingHandler(&stubBookingService{
		listByGuestFn: func(ctx context.Context, email string) ([]*domain.Booking, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ListByGuest(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing email, got %v", err)
	}
}

func TestBookingHandler_ListByGuest_FiltersByEmail(t *testing.T) {
	e := newTestEcho()
	h := NewBookingHandler(&stubBookingService{
		listByGuestFn: func(ctx context.Context, email string) ([]*domain.Booking, error) {
			if email != "g@x.com" {
				t.Fatalf("unexpected email: %s", email)
			}
			return []*domain.Booking{{ID: "1", Guest: domain.Guest{Email: email}}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/bookings?email=g@x.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListByGuest(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestBookingHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	h := NewBookingHandler(&stubBookingService{
		createFn: func(ctx context.Context, booking *domain.Booking) (string, error) {
			if booking.Guest.Email != "g@x.com" || booking.Host != "h@x.com" {
				t.Fatalf("unexpected booking: %+v", booking)
			}
			return "bk123", nil
		},
	})

	body := strings.NewReader(`{
		"guest":{"name":"Gina","email":"g@x.com"},
		"host":"h@x.com",
		"room_id":"64f0c2",
		"title":"Sea View Loft",
		"transaction_id":"tx_1"
	}`)
	req := httptest.NewRequest(http.MethodPost, "/bookings", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["insertedId"] != "bk123" {
		t.Fatalf("expected insertedId bk123, got %+v", resp)
	}
}

func TestBookingHandler_Create_MissingGuest(t *testing.T) {
	e := newTestEcho()
	h := NewBookingHandler(&stubBookingService{
		createFn: func(ctx context.Context, booking *domain.Booking) (string, error) {
			t.Fatalf("service should not be called")
			return "", nil
		},
	})

	body := strings.NewReader(`{"host":"h@x.com","room_id":"64f0c2"}`)
	req := httptest.NewRequest(http.MethodPost, "/bookings", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestBookingHandler_Delete_NoContent(t *testing.T) {
	e := newTestEcho()
	h := NewBookingHandler(&stubBookingService{
		deleteFn: func(ctx context.Context, id string) error {
			if id != "bk123" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/bookings/bk123", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("bk123")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

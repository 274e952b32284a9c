package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SupremoBarbershop/booking-api/internal/httperr"
	"github.com/SupremoBarbershop/booking-api/internal/models"
	ucBooking "github.com/SupremoBarbershop/booking-api/internal/usecase/booking"
	ucLedger "github.com/SupremoBarbershop/booking-api/internal/usecase/ledger"
)

type stubCheckout struct {
	gt  *models.GuestTransaction
	err error

	gotInput ucBooking.GuestCheckoutInput
}

func (s *stubCheckout) Execute(ctx context.Context, in ucBooking.GuestCheckoutInput) (*models.GuestTransaction, error) {
	s.gotInput = in
	return s.gt, s.err
}

type stubStatusUpdate struct {
	gt  *models.GuestTransaction
	err error
}

func (s *stubStatusUpdate) Execute(ctx context.Context, in ucLedger.UpdateGuestStatusInput) (*models.GuestTransaction, error) {
	return s.gt, s.err
}

func newGuestRouter(checkout guestCheckouter, update guestStatusUpdater) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewGuestHandler(nil, checkout, update, nil, zap.NewNop())

	r := gin.New()
	r.POST("/api/guest/checkout", h.Checkout)
	r.PATCH("/api/guest-transactions/:id/status", h.UpdateStatus)
	return r
}

const checkoutBody = `{
	"guest_email": "walkin@example.com",
	"appointment_date": "2026-09-01",
	"appointment_time": "11:00",
	"service_id": 1,
	"barber_id": 2,
	"amount_paid": 250
}`

func TestCheckoutCreated(t *testing.T) {
	checkout := &stubCheckout{
		gt: &models.GuestTransaction{
			ID:            1,
			ReceiptNumber: "RCP-20260901-1788300000000-42",
			Status:        "Completed",
		},
	}
	r := newGuestRouter(checkout, &stubStatusUpdate{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/guest/checkout", strings.NewReader(checkoutBody))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.GuestTransaction
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.ReceiptNumber != "RCP-20260901-1788300000000-42" {
		t.Fatalf("receipt number missing from response: %s", w.Body.String())
	}

	if checkout.gotInput.GuestEmail != "walkin@example.com" {
		t.Fatalf("request not forwarded, got %+v", checkout.gotInput)
	}
}

func TestCheckoutSlotTaken(t *testing.T) {
	checkout := &stubCheckout{err: httperr.ErrBusiness("slot_taken")}
	r := newGuestRouter(checkout, &stubStatusUpdate{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/guest/checkout", strings.NewReader(checkoutBody))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Time slot is not available") {
		t.Fatalf("missing conflict message: %s", w.Body.String())
	}
}

func TestCheckoutMissingFields(t *testing.T) {
	r := newGuestRouter(&stubCheckout{}, &stubStatusUpdate{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/guest/checkout", strings.NewReader(`{"guest_email":"a@b.co"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestUpdateStatusBadID(t *testing.T) {
	r := newGuestRouter(&stubCheckout{}, &stubStatusUpdate{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/guest-transactions/abc/status", strings.NewReader(`{"status":"Cancelled"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	update := &stubStatusUpdate{err: httperr.ErrBusiness("transaction_not_found")}
	r := newGuestRouter(&stubCheckout{}, update)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/guest-transactions/404/status", strings.NewReader(`{"status":"Cancelled"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

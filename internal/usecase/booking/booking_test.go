package booking

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SupremoBarbershop/booking-api/internal/audit"
	domain "github.com/SupremoBarbershop/booking-api/internal/domain/booking"
	"github.com/SupremoBarbershop/booking-api/internal/httperr"
	"github.com/SupremoBarbershop/booking-api/internal/models"
)

// ======================================================
// STUB REPOSITORY
// ======================================================

type stubRepo struct {
	service    *models.Service
	serviceErr error

	barber    *models.Barber
	barberErr error

	reservations    []models.Reservation
	reservationsErr error
	guests          []models.GuestTransaction
	guestsErr       error

	createdReservation *models.Reservation
	createdGuest       *models.GuestTransaction
	createErr          error
}

func (s *stubRepo) GetServiceByID(ctx context.Context, id uint) (*models.Service, error) {
	if s.serviceErr != nil {
		return nil, s.serviceErr
	}
	return s.service, nil
}

func (s *stubRepo) GetBarberByID(ctx context.Context, id uint) (*models.Barber, error) {
	if s.barberErr != nil {
		return nil, s.barberErr
	}
	return s.barber, nil
}

func (s *stubRepo) ListReservationsForBarberDate(ctx context.Context, barberID uint, date string) ([]models.Reservation, error) {
	if s.reservationsErr != nil {
		return nil, s.reservationsErr
	}
	return s.reservations, nil
}

func (s *stubRepo) ListGuestTransactionsForBarberDate(ctx context.Context, barberID uint, date string) ([]models.GuestTransaction, error) {
	if s.guestsErr != nil {
		return nil, s.guestsErr
	}
	return s.guests, nil
}

func (s *stubRepo) CreateReservation(ctx context.Context, r *models.Reservation) error {
	if s.createErr != nil {
		return s.createErr
	}
	r.ID = 1
	s.createdReservation = r
	return nil
}

func (s *stubRepo) CreateGuestTransaction(ctx context.Context, gt *models.GuestTransaction) error {
	if s.createErr != nil {
		return s.createErr
	}
	gt.ID = 1
	s.createdGuest = gt
	return nil
}

func (s *stubRepo) GetReservationByID(ctx context.Context, id uint) (*models.Reservation, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) GetPaymentByReservation(ctx context.Context, reservationID uint) (*models.Payment, error) {
	return nil, nil
}

func (s *stubRepo) CreatePaymentMarkPaid(ctx context.Context, p *models.Payment) (*models.Reservation, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) GetGuestTransactionByID(ctx context.Context, id uint) (*models.GuestTransaction, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) UpdateGuestTransaction(ctx context.Context, gt *models.GuestTransaction) error {
	return nil
}

func (s *stubRepo) ListStalePendingGuestTransactions(ctx context.Context, createdBefore time.Time) ([]models.GuestTransaction, error) {
	return nil, nil
}

var _ domain.Repository = (*stubRepo)(nil)

func newTestRepo() *stubRepo {
	return &stubRepo{
		service: &models.Service{ID: 1, Name: "Haircut", Price: 250, Available: true},
		barber:  &models.Barber{ID: 2, FirstName: "Miguel", LastName: "Santos"},
	}
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil), zap.NewNop())
}

// ======================================================
// AVAILABILITY
// ======================================================

func TestFreeSlotsFiltersBothTables(t *testing.T) {
	repo := newTestRepo()
	repo.reservations = []models.Reservation{
		{AppointmentTime: "09:00", Status: string(domain.StatusConfirmed)},
		{AppointmentTime: "09:30", Status: string(domain.StatusCancelled)},
	}
	repo.guests = []models.GuestTransaction{
		{AppointmentTime: "10:00", Status: string(domain.StatusPending)},
		{AppointmentTime: "10:30", Status: string(domain.StatusCompleted)},
	}

	free, err := NewAvailability(repo).FreeSlots(context.Background(), 2, "2026-09-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(free) != len(domain.TimeSlots)-2 {
		t.Fatalf("expected %d free slots, got %d", len(domain.TimeSlots)-2, len(free))
	}

	freeSet := make(map[string]bool, len(free))
	for _, s := range free {
		freeSet[s] = true
	}

	if freeSet["09:00"] || freeSet["10:00"] {
		t.Fatalf("occupied slots reported free: %v", free)
	}
	if !freeSet["09:30"] || !freeSet["10:30"] {
		t.Fatalf("cancelled and completed rows must not block slots: %v", free)
	}
}

func TestFreeSlotsUnknownBarber(t *testing.T) {
	repo := newTestRepo()
	repo.barberErr = gorm.ErrRecordNotFound

	_, err := NewAvailability(repo).FreeSlots(context.Background(), 99, "2026-09-01")
	if !httperr.IsBusiness(err, "barber_not_found") {
		t.Fatalf("expected barber_not_found, got %v", err)
	}
}

func TestSlotLookupFailureIsNotFree(t *testing.T) {
	// A failed occupancy read must surface as an error, never as an
	// open slot.
	lookupErr := errors.New("connection reset")

	repo := newTestRepo()
	repo.reservationsErr = lookupErr

	_, err := NewAvailability(repo).IsSlotTaken(context.Background(), 2, "2026-09-01", "10:00")
	if !errors.Is(err, lookupErr) {
		t.Fatalf("expected reservation lookup error to propagate, got %v", err)
	}

	repo = newTestRepo()
	repo.guestsErr = lookupErr

	_, err = NewAvailability(repo).IsSlotTaken(context.Background(), 2, "2026-09-01", "10:00")
	if !errors.Is(err, lookupErr) {
		t.Fatalf("expected guest lookup error to propagate, got %v", err)
	}

	_, err = NewAvailability(repo).FreeSlots(context.Background(), 2, "2026-09-01")
	if !errors.Is(err, lookupErr) {
		t.Fatalf("expected FreeSlots to propagate the lookup error, got %v", err)
	}
}

func TestCreateReservationLookupFailure(t *testing.T) {
	lookupErr := errors.New("connection reset")

	repo := newTestRepo()
	repo.reservationsErr = lookupErr

	_, err := newCreateReservation(repo).Execute(context.Background(), CreateReservationInput{
		AppointmentDate: "2026-09-01",
		AppointmentTime: "10:00",
		BarberID:        2,
		ServiceID:       1,
	})
	if !errors.Is(err, lookupErr) {
		t.Fatalf("expected lookup error to propagate, got %v", err)
	}
	if repo.createdReservation != nil {
		t.Fatalf("booking must not proceed on a failed occupancy read")
	}
}

func TestGuestCheckoutLookupFailure(t *testing.T) {
	lookupErr := errors.New("connection reset")

	repo := newTestRepo()
	repo.guestsErr = lookupErr

	_, err := newGuestCheckout(repo).Execute(context.Background(), GuestCheckoutInput{
		GuestEmail:      "walkin@example.com",
		AppointmentDate: "2026-09-01",
		AppointmentTime: "11:00",
		ServiceID:       1,
		BarberID:        2,
		AmountPaid:      250,
	})
	if !errors.Is(err, lookupErr) {
		t.Fatalf("expected lookup error to propagate, got %v", err)
	}
	if repo.createdGuest != nil {
		t.Fatalf("checkout must not proceed on a failed occupancy read")
	}
}

func TestFreeSlotsInvalidDate(t *testing.T) {
	_, err := NewAvailability(newTestRepo()).FreeSlots(context.Background(), 2, "01/09/2026")
	if !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("expected invalid_date, got %v", err)
	}
}

// ======================================================
// CREATE RESERVATION
// ======================================================

func newCreateReservation(repo *stubRepo) *CreateReservation {
	return NewCreateReservation(repo, NewAvailability(repo), testDispatcher())
}

func TestCreateReservation(t *testing.T) {
	repo := newTestRepo()
	customerID := uint(7)

	res, err := newCreateReservation(repo).Execute(context.Background(), CreateReservationInput{
		AppointmentDate: "2026-09-01",
		AppointmentTime: "10:00",
		BarberID:        2,
		ServiceID:       1,
		CustomerID:      &customerID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Status != string(domain.StatusConfirmed) {
		t.Fatalf("new reservation must be Confirmed, got %s", res.Status)
	}
	if res.PaymentStatus != string(domain.PaymentUnpaid) {
		t.Fatalf("new reservation must be Unpaid, got %s", res.PaymentStatus)
	}
	if res.AppointmentType != domain.TypeBook {
		t.Fatalf("appointment type must default to BOOK, got %s", res.AppointmentType)
	}
	if repo.createdReservation == nil {
		t.Fatalf("reservation was not persisted")
	}
}

func TestCreateReservationSlotTaken(t *testing.T) {
	repo := newTestRepo()
	repo.reservations = []models.Reservation{
		{AppointmentTime: "10:00", Status: string(domain.StatusConfirmed)},
	}

	_, err := newCreateReservation(repo).Execute(context.Background(), CreateReservationInput{
		AppointmentDate: "2026-09-01",
		AppointmentTime: "10:00",
		BarberID:        2,
		ServiceID:       1,
	})
	if !httperr.IsBusiness(err, "slot_taken") {
		t.Fatalf("expected slot_taken, got %v", err)
	}
	if repo.createdReservation != nil {
		t.Fatalf("conflicting reservation must not be persisted")
	}
}

func TestCreateReservationSlotHeldByGuest(t *testing.T) {
	repo := newTestRepo()
	repo.guests = []models.GuestTransaction{
		{AppointmentTime: "10:00", Status: string(domain.StatusPending)},
	}

	_, err := newCreateReservation(repo).Execute(context.Background(), CreateReservationInput{
		AppointmentDate: "2026-09-01",
		AppointmentTime: "10:00",
		BarberID:        2,
		ServiceID:       1,
	})
	if !httperr.IsBusiness(err, "slot_taken") {
		t.Fatalf("expected slot_taken, got %v", err)
	}
}

func TestCreateReservationServiceChecks(t *testing.T) {
	repo := newTestRepo()
	repo.serviceErr = gorm.ErrRecordNotFound

	in := CreateReservationInput{
		AppointmentDate: "2026-09-01",
		AppointmentTime: "10:00",
		BarberID:        2,
		ServiceID:       42,
	}

	_, err := newCreateReservation(repo).Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "service_not_found") {
		t.Fatalf("expected service_not_found, got %v", err)
	}

	repo = newTestRepo()
	repo.service.Available = false

	_, err = newCreateReservation(repo).Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "service_unavailable") {
		t.Fatalf("expected service_unavailable, got %v", err)
	}
}

func TestCreateReservationInputValidation(t *testing.T) {
	cases := []struct {
		name string
		in   CreateReservationInput
		code string
	}{
		{"bad date", CreateReservationInput{AppointmentDate: "01-09-2026", AppointmentTime: "10:00"}, "invalid_date"},
		{"off-grid slot", CreateReservationInput{AppointmentDate: "2026-09-01", AppointmentTime: "10:15"}, "invalid_time_slot"},
		{"bad type", CreateReservationInput{AppointmentDate: "2026-09-01", AppointmentTime: "10:00", AppointmentType: "DROP_IN"}, "invalid_appointment_type"},
	}

	uc := newCreateReservation(newTestRepo())
	for _, tc := range cases {
		_, err := uc.Execute(context.Background(), tc.in)
		if !httperr.IsBusiness(err, tc.code) {
			t.Fatalf("%s: expected %s, got %v", tc.name, tc.code, err)
		}
	}
}

// ======================================================
// GUEST CHECKOUT
// ======================================================

func newGuestCheckout(repo *stubRepo) *GuestCheckout {
	return NewGuestCheckout(repo, NewAvailability(repo), testDispatcher())
}

func TestGuestCheckout(t *testing.T) {
	repo := newTestRepo()

	gt, err := newGuestCheckout(repo).Execute(context.Background(), GuestCheckoutInput{
		GuestEmail:      "walkin@example.com",
		AppointmentDate: "2026-09-01",
		AppointmentTime: "11:00",
		ServiceID:       1,
		BarberID:        2,
		AmountPaid:      250,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gt.Status != string(domain.StatusCompleted) {
		t.Fatalf("guest checkout must settle as Completed, got %s", gt.Status)
	}
	if gt.PaymentMethod != domain.MethodCash {
		t.Fatalf("payment method must default to Cash, got %s", gt.PaymentMethod)
	}

	pattern := regexp.MustCompile(`^RCP-\d{8}-\d+-\d{1,3}$`)
	if !pattern.MatchString(gt.ReceiptNumber) {
		t.Fatalf("malformed receipt number %q", gt.ReceiptNumber)
	}

	if repo.createdGuest == nil {
		t.Fatalf("guest transaction was not persisted")
	}
}

func TestGuestCheckoutValidation(t *testing.T) {
	cases := []struct {
		name string
		in   GuestCheckoutInput
		code string
	}{
		{"bad email", GuestCheckoutInput{GuestEmail: "not-an-email", AmountPaid: 250, AppointmentDate: "2026-09-01", AppointmentTime: "11:00"}, "invalid_guest_email"},
		{"zero amount", GuestCheckoutInput{GuestEmail: "g@example.com", AmountPaid: 0, AppointmentDate: "2026-09-01", AppointmentTime: "11:00"}, "invalid_amount"},
		{"bad method", GuestCheckoutInput{GuestEmail: "g@example.com", AmountPaid: 250, AppointmentDate: "2026-09-01", AppointmentTime: "11:00", PaymentMethod: "Check"}, "invalid_payment_method"},
	}

	uc := newGuestCheckout(newTestRepo())
	for _, tc := range cases {
		_, err := uc.Execute(context.Background(), tc.in)
		if !httperr.IsBusiness(err, tc.code) {
			t.Fatalf("%s: expected %s, got %v", tc.name, tc.code, err)
		}
	}
}

func TestGuestCheckoutSlotTaken(t *testing.T) {
	repo := newTestRepo()
	repo.reservations = []models.Reservation{
		{AppointmentTime: "11:00", Status: string(domain.StatusPending)},
	}

	_, err := newGuestCheckout(repo).Execute(context.Background(), GuestCheckoutInput{
		GuestEmail:      "walkin@example.com",
		AppointmentDate: "2026-09-01",
		AppointmentTime: "11:00",
		ServiceID:       1,
		BarberID:        2,
		AmountPaid:      250,
	})
	if !httperr.IsBusiness(err, "slot_taken") {
		t.Fatalf("expected slot_taken, got %v", err)
	}
}

package booking

import (
	"context"
	"time"

	"github.com/SupremoBarbershop/booking-api/internal/models"
)

type Repository interface {
	// -------- Catalog lookups --------
	GetServiceByID(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetBarberByID(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	// -------- Slot occupancy --------
	ListReservationsForBarberDate(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]models.Reservation, error)

	ListGuestTransactionsForBarberDate(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]models.GuestTransaction, error)

	// -------- Booking (create / conflict) --------
	//
	// Both creates run inside a transaction that re-checks the slot
	// under a row lock; the partial unique index on (barber, date,
	// time) is the final arbiter, and a unique violation surfaces as
	// the slot_taken business error.
	CreateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	CreateGuestTransaction(
		ctx context.Context,
		gt *models.GuestTransaction,
	) error

	// -------- Ledger --------
	GetReservationByID(
		ctx context.Context,
		id uint,
	) (*models.Reservation, error)

	GetPaymentByReservation(
		ctx context.Context,
		reservationID uint,
	) (*models.Payment, error)

	// CreatePaymentMarkPaid inserts the payment and flips the
	// reservation to Paid in one transaction, returning the updated
	// reservation.
	CreatePaymentMarkPaid(
		ctx context.Context,
		p *models.Payment,
	) (*models.Reservation, error)

	GetGuestTransactionByID(
		ctx context.Context,
		id uint,
	) (*models.GuestTransaction, error)

	UpdateGuestTransaction(
		ctx context.Context,
		gt *models.GuestTransaction,
	) error

	ListStalePendingGuestTransactions(
		ctx context.Context,
		createdBefore time.Time,
	) ([]models.GuestTransaction, error)
}

package booking

import "github.com/SupremoBarbershop/booking-api/internal/httperr"

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
	StatusRefunded  Status = "Refunded"
)

// IsActive reports whether a status still occupies its slot.
// Completed and Cancelled rows do not block re-booking.
func IsActive(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}

// ===============================
// Payment Status
// ===============================

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "Unpaid"
	PaymentPaid   PaymentStatus = "Paid"
)

// ===============================
// Guest transaction transitions
// ===============================

// CanTransitionGuest validates the target status of a guest
// transaction update. Pending is an initial state only.
func CanTransitionGuest(to Status) error {
	switch to {
	case StatusCompleted, StatusCancelled, StatusRefunded:
		return nil
	}
	return httperr.ErrBusiness("invalid_status")
}

// ZeroesAmount reports whether a transition wipes amount_paid, so
// summing amount_paid over Completed rows stays a correct revenue
// figure without a separate void flag.
func ZeroesAmount(to Status) bool {
	return to == StatusCancelled || to == StatusRefunded
}

// ===============================
// Appointment types / payment methods
// ===============================

const (
	TypeBook   = "BOOK"
	TypeWalkIn = "WALK_IN"
)

const (
	MethodCash   = "Cash"
	MethodOnline = "Online"
)

func IsValidAppointmentType(t string) bool {
	return t == TypeBook || t == TypeWalkIn
}

func IsValidPaymentMethod(m string) bool {
	return m == MethodCash || m == MethodOnline
}

package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/SupremoBarbershop/booking-api/internal/domain/booking"
	"github.com/SupremoBarbershop/booking-api/internal/httperr"
)

// Availability answers "is this (barber, date, time) slot free" from
// existing reservation and guest transaction rows. A lookup failure is
// "cannot confirm availability", never "free".
type Availability struct {
	repo domain.Repository
}

func NewAvailability(repo domain.Repository) *Availability {
	return &Availability{repo: repo}
}

func (uc *Availability) takenSlots(
	ctx context.Context,
	barberID uint,
	date string,
) (map[string]bool, error) {

	taken := make(map[string]bool)

	reservations, err := uc.repo.ListReservationsForBarberDate(ctx, barberID, date)
	if err != nil {
		return nil, err
	}
	for _, r := range reservations {
		if domain.IsActive(domain.Status(r.Status)) {
			taken[r.AppointmentTime] = true
		}
	}

	guests, err := uc.repo.ListGuestTransactionsForBarberDate(ctx, barberID, date)
	if err != nil {
		return nil, err
	}
	for _, g := range guests {
		if domain.Status(g.Status) == domain.StatusPending {
			taken[g.AppointmentTime] = true
		}
	}

	return taken, nil
}

func (uc *Availability) IsSlotTaken(
	ctx context.Context,
	barberID uint,
	date string,
	timeSlot string,
) (bool, error) {

	taken, err := uc.takenSlots(ctx, barberID, date)
	if err != nil {
		return false, err
	}

	return taken[timeSlot], nil
}

// FreeSlots returns the slots of the fixed grid still open for a
// barber on a date, in grid order.
func (uc *Availability) FreeSlots(
	ctx context.Context,
	barberID uint,
	date string,
) ([]string, error) {

	if !domain.IsValidDate(date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if _, err := uc.repo.GetBarberByID(ctx, barberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		return nil, err
	}

	taken, err := uc.takenSlots(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	free := make([]string, 0, len(domain.TimeSlots))
	for _, slot := range domain.TimeSlots {
		if !taken[slot] {
			free = append(free, slot)
		}
	}

	return free, nil
}

package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/SupremoBarbershop/booking-api/internal/audit"
	domain "github.com/SupremoBarbershop/booking-api/internal/domain/booking"
	"github.com/SupremoBarbershop/booking-api/internal/httperr"
	"github.com/SupremoBarbershop/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	AppointmentDate string
	AppointmentTime string
	AppointmentType string

	BarberID  uint
	ServiceID uint

	CustomerID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo         domain.Repository
	availability *Availability
	audit        *audit.Dispatcher
}

func NewCreateReservation(
	repo domain.Repository,
	availability *Availability,
	dispatcher *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:         repo,
		availability: availability,
		audit:        dispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	if !domain.IsValidDate(in.AppointmentDate) {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if !domain.IsValidSlot(in.AppointmentTime) {
		return nil, httperr.ErrBusiness("invalid_time_slot")
	}
	if in.AppointmentType == "" {
		in.AppointmentType = domain.TypeBook
	}
	if !domain.IsValidAppointmentType(in.AppointmentType) {
		return nil, httperr.ErrBusiness("invalid_appointment_type")
	}

	svc, err := uc.repo.GetServiceByID(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}
	if !svc.Available {
		return nil, httperr.ErrBusiness("service_unavailable")
	}

	if _, err := uc.repo.GetBarberByID(ctx, in.BarberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		return nil, err
	}

	// Fast rejection path only. The repository re-checks under a row
	// lock and the partial unique index settles concurrent inserts.
	taken, err := uc.availability.IsSlotTaken(
		ctx, in.BarberID, in.AppointmentDate, in.AppointmentTime,
	)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	res := &models.Reservation{
		AppointmentDate: in.AppointmentDate,
		AppointmentTime: in.AppointmentTime,
		AppointmentType: in.AppointmentType,
		Status:          string(domain.StatusConfirmed),
		PaymentStatus:   string(domain.PaymentUnpaid),
		CustomerID:      in.CustomerID,
		BarberID:        in.BarberID,
		ServiceID:       in.ServiceID,
	}

	if err := uc.repo.CreateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  in.CustomerID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}

package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/SupremoBarbershop/booking-api/internal/audit"
	domain "github.com/SupremoBarbershop/booking-api/internal/domain/booking"
	"github.com/SupremoBarbershop/booking-api/internal/httperr"
	"github.com/SupremoBarbershop/booking-api/internal/models"
	"github.com/SupremoBarbershop/booking-api/internal/receipt"
	"github.com/SupremoBarbershop/booking-api/internal/timezone"
	"github.com/SupremoBarbershop/booking-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type GuestCheckoutInput struct {
	GuestEmail string
	GuestPhone string

	AppointmentDate string
	AppointmentTime string

	ServiceID uint
	BarberID  uint

	AmountPaid    float64
	PaymentMethod string
}

// ======================================================
// USE CASE
// ======================================================

// GuestCheckout books and settles in one step: walk-up customers pay
// on arrival, so the transaction is born Completed with its receipt
// number already minted.
type GuestCheckout struct {
	repo         domain.Repository
	availability *Availability
	audit        *audit.Dispatcher
}

func NewGuestCheckout(
	repo domain.Repository,
	availability *Availability,
	dispatcher *audit.Dispatcher,
) *GuestCheckout {
	return &GuestCheckout{
		repo:         repo,
		availability: availability,
		audit:        dispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *GuestCheckout) Execute(
	ctx context.Context,
	in GuestCheckoutInput,
) (*models.GuestTransaction, error) {

	if !validators.IsEmailFormatValid(in.GuestEmail) {
		return nil, httperr.ErrBusiness("invalid_guest_email")
	}
	if in.AmountPaid <= 0 {
		return nil, httperr.ErrBusiness("invalid_amount")
	}
	if !domain.IsValidDate(in.AppointmentDate) {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if !domain.IsValidSlot(in.AppointmentTime) {
		return nil, httperr.ErrBusiness("invalid_time_slot")
	}

	if in.PaymentMethod == "" {
		in.PaymentMethod = domain.MethodCash
	}
	if !domain.IsValidPaymentMethod(in.PaymentMethod) {
		return nil, httperr.ErrBusiness("invalid_payment_method")
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

	taken, err := uc.availability.IsSlotTaken(
		ctx, in.BarberID, in.AppointmentDate, in.AppointmentTime,
	)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	gt := &models.GuestTransaction{
		GuestEmail:      in.GuestEmail,
		GuestPhone:      in.GuestPhone,
		AppointmentDate: in.AppointmentDate,
		AppointmentTime: in.AppointmentTime,
		ServiceID:       in.ServiceID,
		BarberID:        in.BarberID,
		AmountPaid:      in.AmountPaid,
		PaymentMethod:   in.PaymentMethod,
		ReceiptNumber:   receipt.Number(timezone.Now()),
		Status:          string(domain.StatusCompleted),
	}

	if err := uc.repo.CreateGuestTransaction(ctx, gt); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "guest_checkout",
		Entity:   "guest_transaction",
		EntityID: &gt.ID,
	})

	return gt, nil
}

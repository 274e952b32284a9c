package receipt

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	domain "github.com/SupremoBarbershop/booking-api/internal/domain/booking"
	"github.com/SupremoBarbershop/booking-api/internal/dto"
	"github.com/SupremoBarbershop/booking-api/internal/httperr"
	"github.com/SupremoBarbershop/booking-api/internal/models"
)

// Issuer assembles receipt views from stored rows. Receipts exist
// only for settled money: a guest transaction must be Completed, a
// reservation must be Paid. Anything else is receipt_not_available.
type Issuer struct {
	repo domain.Repository
}

func NewIssuer(repo domain.Repository) *Issuer {
	return &Issuer{repo: repo}
}

func barberName(b models.Barber) string {
	return strings.TrimSpace(b.FirstName + " " + b.LastName)
}

func (uc *Issuer) Guest(
	ctx context.Context,
	transactionID uint,
) (*dto.ReceiptView, error) {

	gt, err := uc.repo.GetGuestTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("receipt_not_found")
		}
		return nil, err
	}

	if domain.Status(gt.Status) != domain.StatusCompleted {
		return nil, httperr.ErrBusiness("receipt_not_available")
	}

	return &dto.ReceiptView{
		ReceiptNumber:   gt.ReceiptNumber,
		Date:            gt.AppointmentDate,
		Time:            gt.AppointmentTime,
		ServiceName:     gt.Service.Name,
		ServiceCategory: gt.Service.Category,
		BarberName:      barberName(gt.Barber),
		Amount:          gt.AmountPaid,
		PaymentMethod:   gt.PaymentMethod,
		CustomerEmail:   gt.GuestEmail,
		Status:          gt.Status,
	}, nil
}

func (uc *Issuer) Reservation(
	ctx context.Context,
	reservationID uint,
) (*dto.ReceiptView, error) {

	res, err := uc.repo.GetReservationByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("receipt_not_found")
		}
		return nil, err
	}

	if domain.PaymentStatus(res.PaymentStatus) != domain.PaymentPaid {
		return nil, httperr.ErrBusiness("receipt_not_available")
	}

	p, err := uc.repo.GetPaymentByReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, httperr.ErrBusiness("receipt_not_available")
	}

	view := &dto.ReceiptView{
		ReceiptNumber:   p.ReceiptNumber,
		Date:            res.AppointmentDate,
		Time:            res.AppointmentTime,
		ServiceName:     res.Service.Name,
		ServiceCategory: res.Service.Category,
		BarberName:      barberName(res.Barber),
		Amount:          p.AmountPaid,
		Discount:        p.DiscountApplied,
		PaymentMethod:   p.PaymentMethod,
		Status:          res.Status,
	}

	if res.Customer != nil {
		view.CustomerName = strings.TrimSpace(res.Customer.FirstName + " " + res.Customer.LastName)
		view.CustomerEmail = res.Customer.Email
	}

	return view, nil
}

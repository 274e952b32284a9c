package ledger

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
)

// Gateway charges a card online and returns the provider's
// transaction reference. Cash payments never touch it.
type Gateway interface {
	Charge(ctx context.Context, amount float64, description, payerEmail string) (string, error)
}

// ======================================================
// INPUT / OUTPUT
// ======================================================

type RecordPaymentInput struct {
	ReservationID   uint
	AmountPaid      float64
	PaymentMethod   string
	DiscountApplied float64
	CashierID       *uint
}

type RecordPaymentResult struct {
	Payment       *models.Payment     `json:"payment"`
	Reservation   *models.Reservation `json:"reservation"`
	ReceiptNumber string              `json:"receiptNumber"`
}

// ======================================================
// USE CASE
// ======================================================

type RecordPayment struct {
	repo    domain.Repository
	gateway Gateway
	audit   *audit.Dispatcher
}

// NewRecordPayment accepts a nil gateway; Online payments are then
// rejected as a business error instead of half-working.
func NewRecordPayment(
	repo domain.Repository,
	gateway Gateway,
	dispatcher *audit.Dispatcher,
) *RecordPayment {
	return &RecordPayment{
		repo:    repo,
		gateway: gateway,
		audit:   dispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RecordPayment) Execute(
	ctx context.Context,
	in RecordPaymentInput,
) (*RecordPaymentResult, error) {

	if in.AmountPaid <= 0 {
		return nil, httperr.ErrBusiness("invalid_amount")
	}
	if in.DiscountApplied < 0 || in.DiscountApplied > in.AmountPaid {
		return nil, httperr.ErrBusiness("invalid_discount")
	}

	if in.PaymentMethod == "" {
		in.PaymentMethod = domain.MethodCash
	}
	if !domain.IsValidPaymentMethod(in.PaymentMethod) {
		return nil, httperr.ErrBusiness("invalid_payment_method")
	}

	res, err := uc.repo.GetReservationByID(ctx, in.ReservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("reservation_not_found")
		}
		return nil, err
	}

	// Fast path; the unique index on payments.reservation_id is the
	// real guard against a double submit racing this check.
	existing, err := uc.repo.GetPaymentByReservation(ctx, in.ReservationID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrBusiness("payment_exists")
	}

	var gatewayRef string
	if in.PaymentMethod == domain.MethodOnline {
		if uc.gateway == nil {
			return nil, httperr.ErrBusiness("online_payments_disabled")
		}

		payerEmail := ""
		if res.Customer != nil {
			payerEmail = res.Customer.Email
		}

		gatewayRef, err = uc.gateway.Charge(
			ctx, in.AmountPaid-in.DiscountApplied, res.Service.Name, payerEmail,
		)
		if err != nil {
			return nil, httperr.ErrBusiness("payment_failed")
		}
	}

	now := timezone.Now()

	p := &models.Payment{
		ReservationID:   in.ReservationID,
		PaymentMethod:   in.PaymentMethod,
		AmountPaid:      in.AmountPaid,
		DiscountApplied: in.DiscountApplied,
		PaymentDate:     now.Format(domain.DateLayout),
		ReceiptNumber:   receipt.Number(now),
		TransactionID:   gatewayRef,
		CashierID:       in.CashierID,
	}

	updated, err := uc.repo.CreatePaymentMarkPaid(ctx, p)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  in.CashierID,
		Action:   "payment_processed",
		Entity:   "payment",
		EntityID: &p.ID,
		Metadata: map[string]any{
			"reservation_id": in.ReservationID,
			"receipt_number": p.ReceiptNumber,
		},
	})

	return &RecordPaymentResult{
		Payment:       p,
		Reservation:   updated,
		ReceiptNumber: p.ReceiptNumber,
	}, nil
}

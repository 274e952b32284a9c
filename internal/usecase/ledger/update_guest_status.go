package ledger

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

type UpdateGuestStatusInput struct {
	TransactionID uint
	Status        string

	// Amount stored when the new status is Completed. Cancelled and
	// Refunded always force the stored amount to zero, whatever is
	// passed here.
	Amount float64
}

// ======================================================
// USE CASE
// ======================================================

type UpdateGuestStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateGuestStatus(
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
) *UpdateGuestStatus {
	return &UpdateGuestStatus{
		repo:  repo,
		audit: dispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateGuestStatus) Execute(
	ctx context.Context,
	in UpdateGuestStatusInput,
) (*models.GuestTransaction, error) {

	to := domain.Status(in.Status)
	if err := domain.CanTransitionGuest(to); err != nil {
		return nil, err
	}

	gt, err := uc.repo.GetGuestTransactionByID(ctx, in.TransactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("transaction_not_found")
		}
		return nil, err
	}

	gt.Status = string(to)
	if domain.ZeroesAmount(to) {
		gt.AmountPaid = 0
	} else {
		gt.AmountPaid = in.Amount
	}

	if err := uc.repo.UpdateGuestTransaction(ctx, gt); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "guest_status_updated",
		Entity:   "guest_transaction",
		EntityID: &gt.ID,
		Metadata: map[string]any{"status": gt.Status},
	})

	return gt, nil
}

// Package jobs hosts the scheduled background work.
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	domain "github.com/SupremoBarbershop/booking-api/internal/domain/booking"
	"github.com/SupremoBarbershop/booking-api/internal/usecase/ledger"
)

// PendingReaper cancels guest transactions stuck in Pending past the
// configured horizon. It goes through the ledger transition, so the
// cancelled rows drop out of revenue the same way a manual cancel
// does (amount forced to zero).
type PendingReaper struct {
	repo    domain.Repository
	update  *ledger.UpdateGuestStatus
	log     *zap.Logger
	maxAge  time.Duration
	cronSch *cron.Cron
}

func NewPendingReaper(
	repo domain.Repository,
	update *ledger.UpdateGuestStatus,
	log *zap.Logger,
	maxAgeDays int,
) *PendingReaper {
	return &PendingReaper{
		repo:   repo,
		update: update,
		log:    log,
		maxAge: time.Duration(maxAgeDays) * 24 * time.Hour,
	}
}

// Start schedules the reaper. spec is a standard cron expression.
func (r *PendingReaper) Start(spec string) error {
	r.cronSch = cron.New()

	if _, err := r.cronSch.AddFunc(spec, r.Run); err != nil {
		return err
	}

	r.cronSch.Start()
	return nil
}

func (r *PendingReaper) Stop() {
	if r.cronSch != nil {
		r.cronSch.Stop()
	}
}

func (r *PendingReaper) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := time.Now().Add(-r.maxAge)

	stale, err := r.repo.ListStalePendingGuestTransactions(ctx, cutoff)
	if err != nil {
		r.log.Error("reaper: list stale pending failed", zap.Error(err))
		return
	}

	for _, gt := range stale {
		_, err := r.update.Execute(ctx, ledger.UpdateGuestStatusInput{
			TransactionID: gt.ID,
			Status:        string(domain.StatusCancelled),
		})
		if err != nil {
			r.log.Error("reaper: cancel failed",
				zap.Uint("transaction_id", gt.ID),
				zap.Error(err),
			)
			continue
		}

		r.log.Info("reaper: cancelled stale pending transaction",
			zap.Uint("transaction_id", gt.ID),
		)
	}
}

package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SupremoBarbershop/booking-api/internal/cache"
	"github.com/SupremoBarbershop/booking-api/internal/httperr"
	"github.com/SupremoBarbershop/booking-api/internal/middleware"
	ucLedger "github.com/SupremoBarbershop/booking-api/internal/usecase/ledger"
)

type paymentRecorder interface {
	Execute(ctx context.Context, in ucLedger.RecordPaymentInput) (*ucLedger.RecordPaymentResult, error)
}

// ======================================================
// HANDLER
// ======================================================

type PaymentHandler struct {
	record paymentRecorder
	stats  *cache.StatsCache
	log    *zap.Logger
}

func NewPaymentHandler(
	record paymentRecorder,
	stats *cache.StatsCache,
	log *zap.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		record: record,
		stats:  stats,
		log:    log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ProcessPaymentRequest struct {
	ReservationID   uint    `json:"reservation_id" binding:"required"`
	AmountPaid      float64 `json:"amount_paid" binding:"required"`
	PaymentMethod   string  `json:"payment_method"`
	DiscountApplied float64 `json:"discount_applied"`
	CashierID       *uint   `json:"cashier_id"`
}

// ======================================================
// PROCESS
// ======================================================

func (h *PaymentHandler) Process(c *gin.Context) {
	var req ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing required fields")
		return
	}

	cashierID := req.CashierID

	// A cashier records under their own identity regardless of what
	// the client sent.
	role := c.MustGet(middleware.ContextUserRole).(string)
	if role == "CASHIER" {
		related := c.MustGet(middleware.ContextRelatedID).(uint)
		cashierID = &related
	}

	result, err := h.record.Execute(
		c.Request.Context(),
		ucLedger.RecordPaymentInput{
			ReservationID:   req.ReservationID,
			AmountPaid:      req.AmountPaid,
			PaymentMethod:   req.PaymentMethod,
			DiscountApplied: req.DiscountApplied,
			CashierID:       cashierID,
		},
	)
	if err != nil {
		mapCoreError(c, h.log, "process_payment", err)
		return
	}

	h.stats.Invalidate(c.Request.Context(), cache.DashboardStatsKey)

	c.JSON(201, result)
}

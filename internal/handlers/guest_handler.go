package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SupremoBarbershop/booking-api/internal/cache"
	"github.com/SupremoBarbershop/booking-api/internal/httperr"
	"github.com/SupremoBarbershop/booking-api/internal/models"
	ucBooking "github.com/SupremoBarbershop/booking-api/internal/usecase/booking"
	ucLedger "github.com/SupremoBarbershop/booking-api/internal/usecase/ledger"
)

type guestCheckouter interface {
	Execute(ctx context.Context, in ucBooking.GuestCheckoutInput) (*models.GuestTransaction, error)
}

type guestStatusUpdater interface {
	Execute(ctx context.Context, in ucLedger.UpdateGuestStatusInput) (*models.GuestTransaction, error)
}

// ======================================================
// HANDLER
// ======================================================

type GuestHandler struct {
	db       *gorm.DB
	checkout guestCheckouter
	update   guestStatusUpdater
	stats    *cache.StatsCache
	log      *zap.Logger
}

func NewGuestHandler(
	db *gorm.DB,
	checkout guestCheckouter,
	update guestStatusUpdater,
	stats *cache.StatsCache,
	log *zap.Logger,
) *GuestHandler {
	return &GuestHandler{
		db:       db,
		checkout: checkout,
		update:   update,
		stats:    stats,
		log:      log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type GuestCheckoutRequest struct {
	GuestEmail      string  `json:"guest_email" binding:"required"`
	GuestPhone      string  `json:"guest_phone"`
	AppointmentDate string  `json:"appointment_date" binding:"required"`
	AppointmentTime string  `json:"appointment_time" binding:"required"`
	ServiceID       uint    `json:"service_id" binding:"required"`
	BarberID        uint    `json:"barber_id" binding:"required"`
	AmountPaid      float64 `json:"amount_paid" binding:"required"`
	PaymentMethod   string  `json:"payment_method"`
}

type UpdateGuestStatusRequest struct {
	Status string  `json:"status" binding:"required"`
	Amount float64 `json:"amount"`
}

// ======================================================
// CHECKOUT (PUBLIC)
// ======================================================

func (h *GuestHandler) Checkout(c *gin.Context) {
	var req GuestCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing required fields")
		return
	}

	gt, err := h.checkout.Execute(
		c.Request.Context(),
		ucBooking.GuestCheckoutInput{
			GuestEmail:      req.GuestEmail,
			GuestPhone:      req.GuestPhone,
			AppointmentDate: req.AppointmentDate,
			AppointmentTime: req.AppointmentTime,
			ServiceID:       req.ServiceID,
			BarberID:        req.BarberID,
			AmountPaid:      req.AmountPaid,
			PaymentMethod:   req.PaymentMethod,
		},
	)
	if err != nil {
		mapCoreError(c, h.log, "guest_checkout", err)
		return
	}

	h.stats.Invalidate(c.Request.Context(), cache.DashboardStatsKey)

	c.JSON(201, gt)
}

// ======================================================
// STATUS UPDATE (STAFF)
// ======================================================

func (h *GuestHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid transaction id.")
		return
	}

	var req UpdateGuestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing required fields")
		return
	}

	gt, err := h.update.Execute(
		c.Request.Context(),
		ucLedger.UpdateGuestStatusInput{
			TransactionID: uint(id),
			Status:        req.Status,
			Amount:        req.Amount,
		},
	)
	if err != nil {
		mapCoreError(c, h.log, "update_guest_status", err)
		return
	}

	h.stats.Invalidate(c.Request.Context(), cache.DashboardStatsKey)

	c.JSON(200, gt)
}

// ======================================================
// LIST (STAFF)
// ======================================================

func (h *GuestHandler) List(c *gin.Context) {
	var rows []models.GuestTransaction
	if err := h.db.
		Preload("Service").
		Preload("Barber").
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		httperr.Internal(c, "failed_to_list_transactions", "Failed to list guest transactions.")
		return
	}

	c.JSON(200, rows)
}

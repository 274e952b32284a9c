package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SupremoBarbershop/booking-api/internal/dto"
	"github.com/SupremoBarbershop/booking-api/internal/httperr"
)

type receiptIssuer interface {
	Guest(ctx context.Context, transactionID uint) (*dto.ReceiptView, error)
	Reservation(ctx context.Context, reservationID uint) (*dto.ReceiptView, error)
}

type ReceiptHandler struct {
	issuer receiptIssuer
	log    *zap.Logger
}

func NewReceiptHandler(issuer receiptIssuer, log *zap.Logger) *ReceiptHandler {
	return &ReceiptHandler{issuer: issuer, log: log}
}

func (h *ReceiptHandler) Guest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid transaction id.")
		return
	}

	view, err := h.issuer.Guest(c.Request.Context(), uint(id))
	if err != nil {
		mapCoreError(c, h.log, "guest_receipt", err)
		return
	}

	c.JSON(200, view)
}

func (h *ReceiptHandler) Reservation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid reservation id.")
		return
	}

	view, err := h.issuer.Reservation(c.Request.Context(), uint(id))
	if err != nil {
		mapCoreError(c, h.log, "reservation_receipt", err)
		return
	}

	c.JSON(200, view)
}

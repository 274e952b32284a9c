package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SupremoBarbershop/booking-api/internal/httperr"
	"github.com/SupremoBarbershop/booking-api/internal/middleware"
	"github.com/SupremoBarbershop/booking-api/internal/models"
	ucBooking "github.com/SupremoBarbershop/booking-api/internal/usecase/booking"
)

type reservationCreator interface {
	Execute(ctx context.Context, in ucBooking.CreateReservationInput) (*models.Reservation, error)
}

type slotLister interface {
	FreeSlots(ctx context.Context, barberID uint, date string) ([]string, error)
}

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	create       reservationCreator
	availability slotLister
	log          *zap.Logger
}

func NewReservationHandler(
	create reservationCreator,
	availability slotLister,
	log *zap.Logger,
) *ReservationHandler {
	return &ReservationHandler{
		create:       create,
		availability: availability,
		log:          log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	AppointmentDate string `json:"appointment_date" binding:"required"`
	AppointmentTime string `json:"appointment_time" binding:"required"`
	AppointmentType string `json:"appointment_type"`
	BarberID        uint   `json:"barber_id" binding:"required"`
	ServiceID       uint   `json:"service_id" binding:"required"`
	CustomerID      *uint  `json:"customer_id"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing required fields")
		return
	}

	customerID := req.CustomerID

	// Customers always book for themselves; staff may book on behalf
	// of any customer (walk-in at the counter).
	role := c.MustGet(middleware.ContextUserRole).(string)
	if role == "CUSTOMER" {
		related := c.MustGet(middleware.ContextRelatedID).(uint)
		customerID = &related
	}

	res, err := h.create.Execute(
		c.Request.Context(),
		ucBooking.CreateReservationInput{
			AppointmentDate: req.AppointmentDate,
			AppointmentTime: req.AppointmentTime,
			AppointmentType: req.AppointmentType,
			BarberID:        req.BarberID,
			ServiceID:       req.ServiceID,
			CustomerID:      customerID,
		},
	)
	if err != nil {
		mapCoreError(c, h.log, "create_reservation", err)
		return
	}

	c.JSON(201, res)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *ReservationHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	barberIDStr := c.Query("barber_id")

	if dateStr == "" || barberIDStr == "" {
		httperr.BadRequest(c, "missing_params", "barber_id and date are required.")
		return
	}

	barberID, err := strconv.ParseUint(barberIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Invalid barber id.")
		return
	}

	slots, err := h.availability.FreeSlots(c.Request.Context(), uint(barberID), dateStr)
	if err != nil {
		mapCoreError(c, h.log, "get_availability", err)
		return
	}

	c.JSON(200, gin.H{
		"barber_id": barberID,
		"date":      dateStr,
		"slots":     slots,
	})
}

package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SupremoBarbershop/booking-api/internal/httperr"
	"github.com/SupremoBarbershop/booking-api/internal/middleware"
	"github.com/SupremoBarbershop/booking-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

// Reservations is the customer dashboard feed, newest first.
func (h *MeHandler) Reservations(c *gin.Context) {
	role := c.MustGet(middleware.ContextUserRole).(string)
	if role != "CUSTOMER" {
		httperr.Forbidden(c, "customers_only", "Only customers have a reservation feed.")
		return
	}

	customerID := c.MustGet(middleware.ContextRelatedID).(uint)

	var rows []models.Reservation
	if err := h.db.
		Preload("Service").
		Preload("Barber").
		Where("customer_id = ?", customerID).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&rows).Error; err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Failed to list reservations.")
		return
	}

	c.JSON(200, rows)
}

// Schedule is the barber dashboard feed for one day.
func (h *MeHandler) Schedule(c *gin.Context) {
	role := c.MustGet(middleware.ContextUserRole).(string)
	if role != "BARBER" {
		httperr.Forbidden(c, "barbers_only", "Only barbers have a schedule.")
		return
	}

	barberID := c.MustGet(middleware.ContextRelatedID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "date is required.")
		return
	}

	var reservations []models.Reservation
	if err := h.db.
		Preload("Service").
		Preload("Customer").
		Where("barber_id = ? AND appointment_date = ?", barberID, dateStr).
		Order("appointment_time ASC").
		Find(&reservations).Error; err != nil {
		httperr.Internal(c, "failed_to_list_schedule", "Failed to load schedule.")
		return
	}

	var guests []models.GuestTransaction
	if err := h.db.
		Preload("Service").
		Where("barber_id = ? AND appointment_date = ?", barberID, dateStr).
		Order("appointment_time ASC").
		Find(&guests).Error; err != nil {
		httperr.Internal(c, "failed_to_list_schedule", "Failed to load schedule.")
		return
	}

	c.JSON(200, gin.H{
		"date":               dateStr,
		"reservations":       reservations,
		"guest_transactions": guests,
	})
}

package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SupremoBarbershop/booking-api/internal/httperr"
	"github.com/SupremoBarbershop/booking-api/internal/httpresp"
	"github.com/SupremoBarbershop/booking-api/internal/models"
)

type CustomerHandler struct {
	db *gorm.DB
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{db: db}
}

func (h *CustomerHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.Customer{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?",
			like, like, like, like,
		)
	}

	var customers []models.Customer
	if err := q.Order("id ASC").Find(&customers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_customers", "Failed to list customers.")
		return
	}

	httpresp.List(c, customers)
}

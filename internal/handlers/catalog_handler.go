package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SupremoBarbershop/booking-api/internal/httperr"
	"github.com/SupremoBarbershop/booking-api/internal/httpresp"
	"github.com/SupremoBarbershop/booking-api/internal/models"
)

// CatalogHandler serves the read-only service and barber lookups
// bookings are made against.
type CatalogHandler struct {
	db *gorm.DB
}

func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("available = ?", true)

	if category != "" {
		q = q.Where("category = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	httpresp.List(c, services)
}

func (h *CatalogHandler) ListBarbers(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Order("id ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Failed to list barbers.")
		return
	}

	httpresp.List(c, barbers)
}

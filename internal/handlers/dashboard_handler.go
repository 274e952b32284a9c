package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SupremoBarbershop/booking-api/internal/cache"
	domain "github.com/SupremoBarbershop/booking-api/internal/domain/booking"
	"github.com/SupremoBarbershop/booking-api/internal/httperr"
	"github.com/SupremoBarbershop/booking-api/internal/models"
	"github.com/SupremoBarbershop/booking-api/internal/timezone"
)

// DashboardHandler serves the read-only aggregates behind the cashier
// and manager screens. Revenue is the sum of amount_paid over
// Completed guest transactions; cancelled and refunded rows carry a
// zero amount, so no filtering beyond status is needed.
type DashboardHandler struct {
	db    *gorm.DB
	stats *cache.StatsCache
	log   *zap.Logger
}

func NewDashboardHandler(db *gorm.DB, stats *cache.StatsCache, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{db: db, stats: stats, log: log}
}

type DashboardStats struct {
	TotalRevenue float64 `json:"total_revenue"`
	TodayRevenue float64 `json:"today_revenue"`
	PendingQueue int64   `json:"pending_queue"`
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	var stats DashboardStats
	if h.stats.Get(ctx, cache.DashboardStatsKey, &stats) {
		c.JSON(200, stats)
		return
	}

	completed := string(domain.StatusCompleted)

	if err := h.db.Model(&models.GuestTransaction{}).
		Where("status = ?", completed).
		Select("COALESCE(SUM(amount_paid), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		h.log.Error("dashboard totals failed", zap.Error(err))
		httperr.Internal(c, "failed_to_compute_stats", "Failed to compute dashboard stats.")
		return
	}

	now := timezone.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if err := h.db.Model(&models.GuestTransaction{}).
		Where("status = ? AND created_at >= ?", completed, dayStart).
		Select("COALESCE(SUM(amount_paid), 0)").
		Scan(&stats.TodayRevenue).Error; err != nil {
		h.log.Error("dashboard today totals failed", zap.Error(err))
		httperr.Internal(c, "failed_to_compute_stats", "Failed to compute dashboard stats.")
		return
	}

	if err := h.db.Model(&models.GuestTransaction{}).
		Where("status = ?", string(domain.StatusPending)).
		Count(&stats.PendingQueue).Error; err != nil {
		h.log.Error("dashboard queue count failed", zap.Error(err))
		httperr.Internal(c, "failed_to_compute_stats", "Failed to compute dashboard stats.")
		return
	}

	h.stats.Set(ctx, cache.DashboardStatsKey, stats)

	c.JSON(200, stats)
}

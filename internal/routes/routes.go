package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SupremoBarbershop/booking-api/internal/audit"
	"github.com/SupremoBarbershop/booking-api/internal/cache"
	"github.com/SupremoBarbershop/booking-api/internal/config"
	"github.com/SupremoBarbershop/booking-api/internal/gateway"
	"github.com/SupremoBarbershop/booking-api/internal/handlers"
	infraRepo "github.com/SupremoBarbershop/booking-api/internal/infra/repository"
	"github.com/SupremoBarbershop/booking-api/internal/jobs"
	"github.com/SupremoBarbershop/booking-api/internal/middleware"
	"github.com/SupremoBarbershop/booking-api/internal/storage"
	ucBooking "github.com/SupremoBarbershop/booking-api/internal/usecase/booking"
	ucLedger "github.com/SupremoBarbershop/booking-api/internal/usecase/ledger"
	ucReceipt "github.com/SupremoBarbershop/booking-api/internal/usecase/receipt"
)

// RegisterRoutes wires the full HTTP surface and returns the background
// reaper so main can start it on its cron schedule.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) *jobs.PendingReaper {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	statsCache := cache.NewStatsCache(cfg.RedisAddr)
	pictureStore := storage.NewPictureStore(cfg)

	var paymentGateway ucLedger.Gateway
	if cfg.MPAccessToken != "" {
		mp, err := gateway.NewMercadoPago(cfg.MPAccessToken)
		if err != nil {
			log.Warn("payment gateway unavailable, online payments disabled", zap.Error(err))
		} else {
			paymentGateway = mp
		}
	}

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucBooking.NewAvailability(bookingRepo)

	createReservationUC := ucBooking.NewCreateReservation(
		bookingRepo,
		availabilityUC,
		auditDispatcher,
	)

	guestCheckoutUC := ucBooking.NewGuestCheckout(
		bookingRepo,
		availabilityUC,
		auditDispatcher,
	)

	recordPaymentUC := ucLedger.NewRecordPayment(
		bookingRepo,
		paymentGateway,
		auditDispatcher,
	)

	updateGuestStatusUC := ucLedger.NewUpdateGuestStatus(
		bookingRepo,
		auditDispatcher,
	)

	receiptIssuer := ucReceipt.NewIssuer(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	catalogHandler := handlers.NewCatalogHandler(db)
	meHandler := handlers.NewMeHandler(db)
	customerHandler := handlers.NewCustomerHandler(db)

	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		availabilityUC,
		log,
	)

	guestHandler := handlers.NewGuestHandler(
		db,
		guestCheckoutUC,
		updateGuestStatusUC,
		statsCache,
		log,
	)

	paymentHandler := handlers.NewPaymentHandler(
		recordPaymentUC,
		statsCache,
		log,
	)

	receiptHandler := handlers.NewReceiptHandler(receiptIssuer, log)
	dashboardHandler := handlers.NewDashboardHandler(db, statsCache, log)
	customHaircutHandler := handlers.NewCustomHaircutHandler(db, pictureStore, log)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/services", catalogHandler.ListServices)
		api.GET("/barbers", catalogHandler.ListBarbers)
		api.GET("/availability", reservationHandler.Availability)

		api.POST("/guest/checkout", guestHandler.Checkout)
		api.GET("/receipts/guest/:id", receiptHandler.Guest)

		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/reservations", reservationHandler.Create)
			secured.GET("/me/reservations", meHandler.Reservations)
			secured.GET("/me/schedule", meHandler.Schedule)
			secured.GET("/receipts/reservations/:id", receiptHandler.Reservation)

			secured.GET("/custom-haircuts", customHaircutHandler.List)
			secured.POST("/custom-haircuts", customHaircutHandler.Create)

			// ------------------------------
			// STAFF
			// ------------------------------
			staff := secured.Group("/")
			staff.Use(middleware.RequireRole("CASHIER", "MANAGER"))
			{
				staff.POST("/payments", paymentHandler.Process)
				staff.GET("/guest-transactions", guestHandler.List)
				staff.PATCH("/guest-transactions/:id/status", guestHandler.UpdateStatus)
				staff.GET("/dashboard/stats", dashboardHandler.Stats)
			}

			manager := secured.Group("/")
			manager.Use(middleware.RequireRole("MANAGER"))
			{
				manager.GET("/customers", customerHandler.List)
				manager.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}

	return jobs.NewPendingReaper(
		bookingRepo,
		updateGuestStatusUC,
		log,
		cfg.ReaperMaxAgeDays,
	)
}

package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/SupremoBarbershop/booking-api/internal/config"
	"github.com/SupremoBarbershop/booking-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Service{},
		&models.Barber{},
		&models.Customer{},
		&models.User{},
		&models.CustomHaircut{},
		&models.Reservation{},
		&models.GuestTransaction{},
		&models.Payment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Partial unique indexes AutoMigrate cannot express. These are the
	// real arbiters of slot and payment exclusivity; the application
	// pre-checks are fast paths only, so running without them is not
	// an option.
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uniq_reservation_active_slot
        ON reservations (barber_id, appointment_date, appointment_time)
        WHERE status IN ('Pending', 'Confirmed')
    `).Error; err != nil {
		log.Fatalf("failed to create reservation slot index: %v", err)
	}

	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uniq_guest_pending_slot
        ON guest_transactions (barber_id, appointment_date, appointment_time)
        WHERE status = 'Pending'
    `).Error; err != nil {
		log.Fatalf("failed to create guest slot index: %v", err)
	}

	seedServices(db)

	return db
}

// seedServices loads the default catalog on an empty database.
func seedServices(db *gorm.DB) {
	var count int64
	db.Model(&models.Service{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []models.Service{
		{Name: "Haircut", Category: "Haircut", Description: "Classic cut and style", Price: 250, Available: true},
		{Name: "Hair Dyeing", Category: "Hairdyeing", Description: "Full color treatment", Price: 500, Available: true},
		{Name: "Shaving", Category: "Shaving", Description: "Hot towel shave", Price: 150, Available: true},
	}

	if err := db.Create(&defaults).Error; err != nil {
		log.Printf("failed to seed services: %v", err)
	}
}

package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/barberconnect/barberconnect-api/internal/config"
	"github.com/barberconnect/barberconnect-api/internal/models"
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
		&models.User{},
		&models.Shop{},
		&models.ShopService{},
		&models.OperatingHours{},
		&models.Booking{},
		&models.Review{},
		&models.ReviewPhoto{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// A slot is unique per shop among non-terminal bookings. Partial
	// indexes are outside what gorm tags can express.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_active_slot
        ON bookings (shop_id, appointment_at)
        WHERE status IN ('pending', 'confirmed', 'in_progress')
    `)

	db.Exec(`
        CREATE INDEX IF NOT EXISTS idx_reviews_shop_created
        ON reviews (shop_id, created_at DESC)
    `)

	return db
}

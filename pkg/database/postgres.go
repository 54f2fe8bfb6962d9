package database

import (
	"log"

	"github.com/phonemarket/resale-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Listing{},
		&models.Booking{},
		&models.Payment{},
		&models.Report{},
		&models.WishlistEntry{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// A listing can carry at most one committed payment
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_payment_listing
		ON payments (listing_id)
	`)

	return db
}

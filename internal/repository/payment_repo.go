package repository

import (
	"context"

	"github.com/phonemarket/resale-service/internal/models"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, payment *models.Payment) error
	ExistsForListing(ctx context.Context, tx *gorm.DB, listingID uint) (bool, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, tx *gorm.DB, payment *models.Payment) error {
	return tx.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) ExistsForListing(ctx context.Context, tx *gorm.DB, listingID uint) (bool, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Payment{}).
		Where("listing_id = ?", listingID).
		Count(&count).Error
	return count > 0, err
}

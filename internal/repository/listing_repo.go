package repository

import (
	"context"

	"github.com/phonemarket/resale-service/internal/models"
	"gorm.io/gorm"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *models.Listing) error
	FindByID(ctx context.Context, id uint) (*models.Listing, error)
	FindUnsoldByCategory(ctx context.Context, categoryName string) ([]models.Listing, error)
	FindBySeller(ctx context.Context, sellerEmail string) ([]models.Listing, error)
	FindAdvertised(ctx context.Context, limit int) ([]models.Listing, error)
	SetAdvertised(ctx context.Context, id uint) error
	MarkPaid(ctx context.Context, tx *gorm.DB, id uint, transactionID string) (int64, error)
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	GetDB() *gorm.DB
}

type listingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *listingRepository) Create(ctx context.Context, listing *models.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *listingRepository) FindByID(ctx context.Context, id uint) (*models.Listing, error) {
	var listing models.Listing
	if err := r.db.WithContext(ctx).First(&listing, id).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) FindUnsoldByCategory(ctx context.Context, categoryName string) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.WithContext(ctx).
		Where("category_name = ? AND paid = false", categoryName).
		Order("id DESC").
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) FindBySeller(ctx context.Context, sellerEmail string) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.WithContext(ctx).
		Where("seller_email = ?", sellerEmail).
		Order("id DESC").
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// FindAdvertised returns advertised, still-unsold listings; limit <= 0 means no cap.
func (r *listingRepository) FindAdvertised(ctx context.Context, limit int) ([]models.Listing, error) {
	var listings []models.Listing
	q := r.db.WithContext(ctx).
		Where("advertised = true AND paid = false").
		Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

// SetAdvertised promotes a listing; there is no demote path, so a repeated
// call is a no-op.
func (r *listingRepository) SetAdvertised(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Listing{}).
		Where("id = ?", id).
		Update("advertised", true).Error
}

func (r *listingRepository) MarkPaid(ctx context.Context, tx *gorm.DB, id uint, transactionID string) (int64, error) {
	res := tx.WithContext(ctx).
		Model(&models.Listing{}).
		Where("id = ?", id).
		Updates(map[string]any{"paid": true, "transaction_id": transactionID})
	return res.RowsAffected, res.Error
}

func (r *listingRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Delete(&models.Listing{}, id).Error
}

package repository

import (
	"context"

	"github.com/phonemarket/resale-service/internal/models"
	"gorm.io/gorm"
)

type WishlistRepository interface {
	Create(ctx context.Context, entry *models.WishlistEntry) error
	FindByBuyer(ctx context.Context, buyerEmail string) ([]models.WishlistEntry, error)
	Delete(ctx context.Context, id uint) error
	DeleteByListingID(ctx context.Context, tx *gorm.DB, listingID uint) error
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) Create(ctx context.Context, entry *models.WishlistEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *wishlistRepository) FindByBuyer(ctx context.Context, buyerEmail string) ([]models.WishlistEntry, error) {
	var entries []models.WishlistEntry
	err := r.db.WithContext(ctx).
		Where("buyer_email = ?", buyerEmail).
		Order("id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *wishlistRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.WishlistEntry{}, id).Error
}

// DeleteByListingID clears every saved reference to a sold listing. Deleting
// zero rows is not an error.
func (r *wishlistRepository) DeleteByListingID(ctx context.Context, tx *gorm.DB, listingID uint) error {
	return tx.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Delete(&models.WishlistEntry{}).Error
}

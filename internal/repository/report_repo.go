package repository

import (
	"context"

	"github.com/phonemarket/resale-service/internal/models"
	"gorm.io/gorm"
)

type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	FindAll(ctx context.Context) ([]models.Report, error)
	DeleteByListingID(ctx context.Context, tx *gorm.DB, listingID uint) error
	GetDB() *gorm.DB
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *reportRepository) Create(ctx context.Context, report *models.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) FindAll(ctx context.Context) ([]models.Report, error) {
	var reports []models.Report
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) DeleteByListingID(ctx context.Context, tx *gorm.DB, listingID uint) error {
	return tx.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Delete(&models.Report{}).Error
}

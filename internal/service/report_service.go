package service

import (
	"context"
	"errors"

	"github.com/phonemarket/resale-service/internal/repository"
	"gorm.io/gorm"
)

type ReportService interface {
	Resolve(ctx context.Context, listingID uint) error
}

type reportService struct {
	reports  repository.ReportRepository
	listings repository.ListingRepository
}

func NewReportService(reports repository.ReportRepository, listings repository.ListingRepository) ReportService {
	return &reportService{reports: reports, listings: listings}
}

// Resolve takes a reported listing off the market: its reports and the
// listing itself go together or not at all.
func (s *reportService) Resolve(ctx context.Context, listingID uint) error {
	if _, err := s.listings.FindByID(ctx, listingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrListingNotFound
		}
		return err
	}

	return s.reports.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.reports.DeleteByListingID(ctx, tx, listingID); err != nil {
			return err
		}
		return s.listings.Delete(ctx, tx, listingID)
	})
}

package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/phonemarket/resale-service/internal/models"
	"github.com/phonemarket/resale-service/internal/repository"
	"github.com/phonemarket/resale-service/pkg/rabbitmq"
	"gorm.io/gorm"
)

var (
	ErrListingNotFound    = errors.New("listing not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrListingAlreadyPaid = errors.New("listing already has a committed payment")
)

// IntentClient creates a payment intent with the external provider and
// returns its client secret.
type IntentClient interface {
	CreateIntent(ctx context.Context, amountCents int64) (string, error)
}

type PaymentService interface {
	Complete(ctx context.Context, payment *models.Payment) (*models.Payment, error)
	CreateIntent(ctx context.Context, bookingID uint) (string, error)
}

type paymentService struct {
	listings  repository.ListingRepository
	bookings  repository.BookingRepository
	payments  repository.PaymentRepository
	wishlists repository.WishlistRepository
	intents   IntentClient
	publisher *rabbitmq.Publisher
}

func NewPaymentService(
	listings repository.ListingRepository,
	bookings repository.BookingRepository,
	payments repository.PaymentRepository,
	wishlists repository.WishlistRepository,
	intents IntentClient,
	publisher *rabbitmq.Publisher,
) PaymentService {
	return &paymentService{
		listings:  listings,
		bookings:  bookings,
		payments:  payments,
		wishlists: wishlists,
		intents:   intents,
		publisher: publisher,
	}
}

// Complete records a successful payment and settles every collection it
// touches in a single transaction: the payment row, the listing and booking
// paid flags, and any wishlist entries still pointing at the listing.
// The booking is matched by its own id, never by listing id.
func (s *paymentService) Complete(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	err := s.listings.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.payments.ExistsForListing(ctx, tx, payment.ListingID)
		if err != nil {
			return err
		}
		if exists {
			return ErrListingAlreadyPaid
		}

		if err := s.payments.Create(ctx, tx, payment); err != nil {
			return err
		}

		rows, err := s.listings.MarkPaid(ctx, tx, payment.ListingID, payment.TransactionID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrListingNotFound
		}

		rows, err = s.bookings.MarkPaid(ctx, tx, payment.BookingID, payment.TransactionID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrBookingNotFound
		}

		// Zero deleted rows is fine: not every sold listing was wishlisted.
		return s.wishlists.DeleteByListingID(ctx, tx, payment.ListingID)
	})
	if err != nil {
		return nil, err
	}

	// Best-effort notification; the sale is already committed.
	if s.publisher != nil {
		_ = s.publisher.Publish("payment.completed", payment)
	}

	return payment, nil
}

func (s *paymentService) CreateIntent(ctx context.Context, bookingID uint) (string, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrBookingNotFound
		}
		return "", fmt.Errorf("lookup booking: %w", err)
	}

	amount := int64(math.Round(booking.ResalePrice * 100))
	secret, err := s.intents.CreateIntent(ctx, amount)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return secret, nil
}

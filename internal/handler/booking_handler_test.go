package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/phonemarket/resale-service/internal/middleware"
	"github.com/phonemarket/resale-service/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	createFn      func(ctx context.Context, booking *models.Booking) error
	findByIDFn    func(ctx context.Context, id uint) (*models.Booking, error)
	findByBuyerFn func(ctx context.Context, buyerEmail string) ([]models.Booking, error)
	deleteFn      func(ctx context.Context, id uint) error
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	return m.createFn(ctx, booking)
}
func (m *mockBookingRepo) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockBookingRepo) FindByBuyer(ctx context.Context, buyerEmail string) ([]models.Booking, error) {
	return m.findByBuyerFn(ctx, buyerEmail)
}
func (m *mockBookingRepo) MarkPaid(ctx context.Context, tx *gorm.DB, id uint, transactionID string) (int64, error) {
	return 0, nil
}
func (m *mockBookingRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

// --- Tests ---

func TestCreateBooking_Handler_SnapshotsListing(t *testing.T) {
	listings := &mockListingRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Listing, error) {
			return &models.Listing{ID: id, Name: "iPhone 12", ResalePrice: 450}, nil
		},
	}
	var created *models.Booking
	bookings := &mockBookingRepo{
		createFn: func(ctx context.Context, booking *models.Booking) error {
			booking.ID = 1
			created = booking
			return nil
		},
	}

	e := echo.New()
	body := `{"listing_id":42,"meeting_location":"Downtown","phone":"555-0101"}`
	req := httptest.NewRequest(http.MethodPost, "/booked", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.EmailKey, "buyer@x.com")

	h := NewBookingHandler(bookings, listings)
	err := h.Create(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "buyer@x.com", created.BuyerEmail)
	assert.Equal(t, "iPhone 12", created.ProductName)
	assert.Equal(t, 450.0, created.ResalePrice)
}

func TestCreateBooking_Handler_UnknownListing(t *testing.T) {
	listings := &mockListingRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Listing, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	e := echo.New()
	body := `{"listing_id":999}`
	req := httptest.NewRequest(http.MethodPost, "/booked", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.EmailKey, "buyer@x.com")

	h := NewBookingHandler(&mockBookingRepo{}, listings)
	err := h.Create(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestListBookings_Handler_OwnBookings(t *testing.T) {
	bookings := &mockBookingRepo{
		findByBuyerFn: func(ctx context.Context, buyerEmail string) ([]models.Booking, error) {
			return []models.Booking{
				{ID: 1, BuyerEmail: buyerEmail, ProductName: "iPhone 12"},
			}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/booked?buyerEmail=buyer@x.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.EmailKey, "buyer@x.com")

	h := NewBookingHandler(bookings, nil)
	err := h.ListByBuyer(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []models.Booking
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestListBookings_Handler_EmailMismatch(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/booked?buyerEmail=other@x.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.EmailKey, "buyer@x.com")

	h := NewBookingHandler(&mockBookingRepo{}, nil)
	err := h.ListByBuyer(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Code)
}

func TestCancelBooking_Handler(t *testing.T) {
	var deletedID uint
	bookings := &mockBookingRepo{
		deleteFn: func(ctx context.Context, id uint) error {
			deletedID = id
			return nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/booked/7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	h := NewBookingHandler(bookings, nil)
	err := h.Cancel(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(7), deletedID)
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/phonemarket/resale-service/internal/dto"
	"github.com/phonemarket/resale-service/internal/middleware"
	"github.com/phonemarket/resale-service/internal/models"
	"github.com/phonemarket/resale-service/internal/repository"
	"gorm.io/gorm"
)

type BookingHandler struct {
	bookings repository.BookingRepository
	listings repository.ListingRepository
}

func NewBookingHandler(bookings repository.BookingRepository, listings repository.ListingRepository) *BookingHandler {
	return &BookingHandler{bookings: bookings, listings: listings}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/booked", h.ListByBuyer, auth)
	e.GET("/booked/:id", h.Get, auth)
	e.POST("/booked", h.Create, auth)
	e.DELETE("/booked/:id", h.Cancel, auth)
}

// ListByBuyer only serves the caller's own bookings.
func (h *BookingHandler) ListByBuyer(c echo.Context) error {
	buyerEmail := c.QueryParam("buyerEmail")
	if buyerEmail == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "buyerEmail is required")
	}
	if email, _ := c.Get(middleware.EmailKey).(string); email != buyerEmail {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}

	bookings, err := h.bookings.FindByBuyer(c.Request().Context(), buyerEmail)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	booking, err := h.bookings.FindByID(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "booking not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, booking)
}

// Create reserves a listing. Name and price are snapshotted from the listing
// so the payment page survives later edits.
func (h *BookingHandler) Create(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ListingID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "listing_id is required")
	}

	ctx := c.Request().Context()

	listing, err := h.listings.FindByID(ctx, req.ListingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "listing not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	buyerEmail, _ := c.Get(middleware.EmailKey).(string)

	booking := &models.Booking{
		ListingID:       listing.ID,
		BuyerEmail:      buyerEmail,
		ProductName:     listing.Name,
		ResalePrice:     listing.ResalePrice,
		MeetingLocation: req.MeetingLocation,
		Phone:           req.Phone,
	}
	if err := h.bookings.Create(ctx, booking); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) Cancel(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	if err := h.bookings.Delete(c.Request().Context(), uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "booking cancelled"})
}

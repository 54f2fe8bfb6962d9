package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/phonemarket/resale-service/internal/dto"
	"github.com/phonemarket/resale-service/internal/models"
	"github.com/phonemarket/resale-service/internal/service"
)

type PaymentHandler struct {
	svc service.PaymentService
}

func NewPaymentHandler(svc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

func (h *PaymentHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.POST("/create-payment-intent", h.CreateIntent, auth)
	e.POST("/payments", h.Complete, auth)
}

func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req dto.CreateIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.BookingID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "booking_id is required")
	}

	secret, err := h.svc.CreateIntent(c.Request().Context(), req.BookingID)
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.IntentResponse{ClientSecret: secret})
}

func (h *PaymentHandler) Complete(c echo.Context) error {
	var req dto.CompletePaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ListingID == 0 || req.BookingID == 0 || req.TransactionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "listing_id, booking_id and transaction_id are required")
	}

	payment := &models.Payment{
		ListingID:     req.ListingID,
		BookingID:     req.BookingID,
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
	}

	created, err := h.svc.Complete(c.Request().Context(), payment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrListingAlreadyPaid):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrListingNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrBookingNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, created)
}

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
	"github.com/phonemarket/resale-service/internal/service"
)

type ReportHandler struct {
	reports repository.ReportRepository
	svc     service.ReportService
}

func NewReportHandler(reports repository.ReportRepository, svc service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports, svc: svc}
}

func (h *ReportHandler) RegisterRoutes(e *echo.Echo, auth, admin echo.MiddlewareFunc) {
	e.POST("/reported-product", h.Create, auth)
	e.GET("/reported-product", h.List, auth, admin)
	e.DELETE("/reported-product/:phoneId", h.Resolve, auth, admin)
}

func (h *ReportHandler) Create(c echo.Context) error {
	var req dto.CreateReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ListingID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "listing_id is required")
	}

	reporterEmail, _ := c.Get(middleware.EmailKey).(string)

	report := &models.Report{
		ListingID:     req.ListingID,
		ReporterEmail: reporterEmail,
		Reason:        req.Reason,
	}
	if err := h.reports.Create(c.Request().Context(), report); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, report)
}

func (h *ReportHandler) List(c echo.Context) error {
	reports, err := h.reports.FindAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, reports)
}

// Resolve removes the reported listing along with its reports.
func (h *ReportHandler) Resolve(c echo.Context) error {
	listingID, err := strconv.ParseUint(c.Param("phoneId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid listing id")
	}

	if err := h.svc.Resolve(c.Request().Context(), uint(listingID)); err != nil {
		if errors.Is(err, service.ErrListingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "reported listing removed"})
}

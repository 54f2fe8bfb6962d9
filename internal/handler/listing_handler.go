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

const advertisedStripLimit = 3

type ListingHandler struct {
	listings repository.ListingRepository
}

func NewListingHandler(listings repository.ListingRepository) *ListingHandler {
	return &ListingHandler{listings: listings}
}

func (h *ListingHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/products/:categoryName", h.ListByCategory)
	e.GET("/advertised", h.ListAdvertised)
	e.GET("/advertised-limit", h.ListAdvertisedStrip)

	e.GET("/products", h.ListBySeller, auth)
	e.POST("/products", h.Create, auth)
	e.POST("/products/:id", h.Advertise, auth)
	e.DELETE("/products/:id", h.Delete, auth)
}

func (h *ListingHandler) ListByCategory(c echo.Context) error {
	listings, err := h.listings.FindUnsoldByCategory(c.Request().Context(), c.Param("categoryName"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, listings)
}

// ListBySeller serves a seller's own dashboard; the query email must be the
// token email.
func (h *ListingHandler) ListBySeller(c echo.Context) error {
	sellerEmail := c.QueryParam("sellerEmail")
	if sellerEmail == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "sellerEmail is required")
	}
	if email, _ := c.Get(middleware.EmailKey).(string); email != sellerEmail {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}

	listings, err := h.listings.FindBySeller(c.Request().Context(), sellerEmail)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, listings)
}

func (h *ListingHandler) ListAdvertised(c echo.Context) error {
	listings, err := h.listings.FindAdvertised(c.Request().Context(), 0)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, listings)
}

func (h *ListingHandler) ListAdvertisedStrip(c echo.Context) error {
	listings, err := h.listings.FindAdvertised(c.Request().Context(), advertisedStripLimit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, listings)
}

func (h *ListingHandler) Create(c echo.Context) error {
	var req dto.CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.CategoryName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name and category_name are required")
	}

	sellerEmail, _ := c.Get(middleware.EmailKey).(string)

	listing := &models.Listing{
		CategoryName:  req.CategoryName,
		SellerEmail:   sellerEmail,
		Name:          req.Name,
		ResalePrice:   req.ResalePrice,
		OriginalPrice: req.OriginalPrice,
		Condition:     req.Condition,
		Location:      req.Location,
		Description:   req.Description,
	}
	if err := h.listings.Create(c.Request().Context(), listing); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, listing)
}

// Advertise is set-only; there is no demote path, so replays stay true.
func (h *ListingHandler) Advertise(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid listing id")
	}

	ctx := c.Request().Context()
	if err := h.listings.SetAdvertised(ctx, uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	listing, err := h.listings.FindByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "listing not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, listing)
}

func (h *ListingHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid listing id")
	}

	if err := h.listings.Delete(c.Request().Context(), nil, uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "listing deleted"})
}

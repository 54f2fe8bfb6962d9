package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/phonemarket/resale-service/internal/dto"
	"github.com/phonemarket/resale-service/internal/middleware"
	"github.com/phonemarket/resale-service/internal/models"
	"github.com/phonemarket/resale-service/internal/repository"
)

type WishlistHandler struct {
	wishlists repository.WishlistRepository
}

func NewWishlistHandler(wishlists repository.WishlistRepository) *WishlistHandler {
	return &WishlistHandler{wishlists: wishlists}
}

func (h *WishlistHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/wishlist-product", h.ListByBuyer, auth)
	e.POST("/wishlist-product", h.Create, auth)
	e.DELETE("/wishlist-product/:id", h.Delete, auth)
}

func (h *WishlistHandler) ListByBuyer(c echo.Context) error {
	buyerEmail := c.QueryParam("buyerEmail")
	if buyerEmail == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "buyerEmail is required")
	}
	if email, _ := c.Get(middleware.EmailKey).(string); email != buyerEmail {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}

	entries, err := h.wishlists.FindByBuyer(c.Request().Context(), buyerEmail)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *WishlistHandler) Create(c echo.Context) error {
	var req dto.CreateWishlistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ListingID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "listing_id is required")
	}

	buyerEmail, _ := c.Get(middleware.EmailKey).(string)

	entry := &models.WishlistEntry{ListingID: req.ListingID, BuyerEmail: buyerEmail}
	if err := h.wishlists.Create(c.Request().Context(), entry); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, entry)
}

func (h *WishlistHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid wishlist id")
	}

	if err := h.wishlists.Delete(c.Request().Context(), uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "wishlist entry removed"})
}

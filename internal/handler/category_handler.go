package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/phonemarket/resale-service/internal/repository"
)

type CategoryHandler struct {
	categories repository.CategoryRepository
}

func NewCategoryHandler(categories repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/categories", h.List)
	// the frontend hits both spellings
	e.GET("/category", h.List)
	e.GET("/category-names", h.ListNames)
}

func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categories.FindAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) ListNames(c echo.Context) error {
	names, err := h.categories.FindNames(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, names)
}

package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/phonemarket/resale-service/internal/dto"
	"github.com/phonemarket/resale-service/internal/models"
	"github.com/phonemarket/resale-service/internal/repository"
	"github.com/phonemarket/resale-service/internal/service"
	"gorm.io/gorm"
)

type UserHandler struct {
	users  repository.UserRepository
	tokens service.TokenService
}

func NewUserHandler(users repository.UserRepository, tokens service.TokenService) *UserHandler {
	return &UserHandler{users: users, tokens: tokens}
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo, auth, admin echo.MiddlewareFunc) {
	e.GET("/jwt", h.IssueToken)
	e.POST("/users", h.Create)
	e.GET("/users", h.GetByEmail)
	e.GET("/users/admin/:email", h.CheckAdmin)

	e.GET("/users/allSellers", h.ListSellers, auth, admin)
	e.GET("/users/allBuyers", h.ListBuyers, auth, admin)
	e.DELETE("/users/:id", h.Delete, auth, admin)
	e.POST("/users/:id", h.VerifySeller, auth, admin)
}

// IssueToken answers GET /jwt?email=. Unknown emails get 403 with an empty
// accessToken, which is what the frontend expects.
func (h *UserHandler) IssueToken(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	token, err := h.tokens.Issue(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.JSON(http.StatusForbidden, dto.TokenResponse{AccessToken: ""})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.TokenResponse{AccessToken: token})
}

// Create registers a user once per email; replaying the registration call is
// acknowledged without inserting a second row.
func (h *UserHandler) Create(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	ctx := c.Request().Context()

	existing, err := h.users.FindByEmail(ctx, req.Email)
	if err == nil {
		return c.JSON(http.StatusOK, dto.MessageResponse{
			Message: "User already Saved as a " + capitalize(string(existing.Role)),
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	role := models.Role(req.Role)
	if role == "" {
		role = models.RoleBuyer
	}

	user := &models.User{Email: req.Email, Name: req.Name, Role: role}
	if err := h.users.Create(ctx, user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) GetByEmail(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	user, err := h.users.FindByEmail(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, user)
}

// CheckAdmin is a public probe; it never errors for unknown emails.
func (h *UserHandler) CheckAdmin(c echo.Context) error {
	user, err := h.users.FindByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusOK, dto.AdminCheckResponse{IsAdmin: false})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.AdminCheckResponse{IsAdmin: user.Role == models.RoleAdmin})
}

func (h *UserHandler) ListSellers(c echo.Context) error {
	return h.listByRole(c, models.RoleSeller)
}

func (h *UserHandler) ListBuyers(c echo.Context) error {
	return h.listByRole(c, models.RoleBuyer)
}

func (h *UserHandler) listByRole(c echo.Context, role models.Role) error {
	users, err := h.users.FindByRole(c.Request().Context(), role)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	if err := h.users.Delete(c.Request().Context(), uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "user deleted"})
}

func (h *UserHandler) VerifySeller(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	if err := h.users.SetVerified(c.Request().Context(), uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "seller verified"})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

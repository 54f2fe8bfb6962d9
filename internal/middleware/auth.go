package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/phonemarket/resale-service/internal/models"
	"github.com/phonemarket/resale-service/internal/repository"
	"github.com/phonemarket/resale-service/internal/service"
	"gorm.io/gorm"
)

// EmailKey is where Auth stores the verified caller email on the context.
const EmailKey = "user_email"

// Auth requires a valid bearer token: 401 when the header is missing,
// 403 when the token does not verify.
func Auth(tokens service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			email, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "invalid token")
			}

			c.Set(EmailKey, email)
			return next(c)
		}
	}
}

// AdminOnly must run after Auth. A missing user row is a plain 403, not a
// server error.
func AdminOnly(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get(EmailKey).(string)
			if email == "" {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}

			user, err := users.FindByEmail(c.Request().Context(), email)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return echo.NewHTTPError(http.StatusForbidden, "forbidden")
				}
				return err
			}
			if user.Role != models.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin access only")
			}

			return next(c)
		}
	}
}

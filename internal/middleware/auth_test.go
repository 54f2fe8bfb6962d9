package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/phonemarket/resale-service/internal/models"
	"github.com/phonemarket/resale-service/internal/service"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --- Mock TokenService ---

type mockTokenService struct {
	verifyFn func(tokenString string) (string, error)
}

func (m *mockTokenService) Issue(ctx context.Context, email string) (string, error) {
	return "", errors.New("not implemented")
}
func (m *mockTokenService) Verify(tokenString string) (string, error) {
	return m.verifyFn(tokenString)
}

// --- Mock UserRepository ---

type mockUserRepo struct {
	findByEmailFn func(ctx context.Context, email string) (*models.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error { return nil }
func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.findByEmailFn(ctx, email)
}
func (m *mockUserRepo) FindByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	return nil, nil
}
func (m *mockUserRepo) SetVerified(ctx context.Context, id uint) error { return nil }
func (m *mockUserRepo) Delete(ctx context.Context, id uint) error      { return nil }

func runAuth(t *testing.T, tokens service.TokenService, authHeader string) (error, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/allSellers", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return Auth(tokens)(next)(c), c
}

func TestAuth_MissingHeader(t *testing.T) {
	err, _ := runAuth(t, &mockTokenService{}, "")

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestAuth_NotBearer(t *testing.T) {
	err, _ := runAuth(t, &mockTokenService{}, "Basic dXNlcjpwdw==")

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	tokens := &mockTokenService{
		verifyFn: func(string) (string, error) { return "", service.ErrInvalidToken },
	}

	err, _ := runAuth(t, tokens, "Bearer bad-token")

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Code)
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := &mockTokenService{
		verifyFn: func(s string) (string, error) {
			assert.Equal(t, "good-token", s)
			return "a@x.com", nil
		},
	}

	err, c := runAuth(t, tokens, "Bearer good-token")

	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", c.Get(EmailKey))
}

func runAdminOnly(t *testing.T, users *mockUserRepo, email string) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/allSellers", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if email != "" {
		c.Set(EmailKey, email)
	}

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return AdminOnly(users)(next)(c)
}

func TestAdminOnly_AdminPasses(t *testing.T) {
	users := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{Email: email, Role: models.RoleAdmin}, nil
		},
	}

	assert.NoError(t, runAdminOnly(t, users, "admin@x.com"))
}

func TestAdminOnly_DeniesNonAdminRoles(t *testing.T) {
	for _, role := range []models.Role{models.RoleBuyer, models.RoleSeller} {
		users := &mockUserRepo{
			findByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
				return &models.User{Email: email, Role: role}, nil
			},
		}

		err := runAdminOnly(t, users, "someone@x.com")

		he, ok := err.(*echo.HTTPError)
		assert.True(t, ok, "role %s should be denied", role)
		assert.Equal(t, http.StatusForbidden, he.Code)
	}
}

func TestAdminOnly_MissingUser(t *testing.T) {
	users := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	err := runAdminOnly(t, users, "ghost@x.com")

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Code)
}

func TestAdminOnly_NoIdentityOnContext(t *testing.T) {
	err := runAdminOnly(t, &mockUserRepo{}, "")

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Code)
}

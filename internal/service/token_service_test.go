package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/phonemarket/resale-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

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

func knownUserRepo(email string) *mockUserRepo {
	return &mockUserRepo{
		findByEmailFn: func(ctx context.Context, e string) (*models.User, error) {
			if e == email {
				return &models.User{ID: 1, Email: e, Role: models.RoleBuyer}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
}

// --- Tests ---

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	svc := NewTokenService(knownUserRepo("a@x.com"), "test-secret")

	token, err := svc.Issue(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := svc.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

func TestIssue_UnknownEmail(t *testing.T) {
	svc := NewTokenService(knownUserRepo("a@x.com"), "test-secret")

	token, err := svc.Issue(context.Background(), "ghost@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, token)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewTokenService(knownUserRepo("a@x.com"), "secret-one")
	verifier := NewTokenService(knownUserRepo("a@x.com"), "secret-two")

	token, err := issuer.Issue(context.Background(), "a@x.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_TamperedToken(t *testing.T) {
	svc := NewTokenService(knownUserRepo("a@x.com"), "test-secret")

	token, err := svc.Issue(context.Background(), "a@x.com")
	require.NoError(t, err)

	_, err = svc.Verify(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_ExpiredToken(t *testing.T) {
	svc := NewTokenService(knownUserRepo("a@x.com"), "test-secret")

	claims := jwt.MapClaims{
		"email": "a@x.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_UnsignedToken(t *testing.T) {
	svc := NewTokenService(knownUserRepo("a@x.com"), "test-secret")

	claims := jwt.MapClaims{
		"email": "a@x.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_MissingEmailClaim(t *testing.T) {
	svc := NewTokenService(knownUserRepo("a@x.com"), "test-secret")

	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

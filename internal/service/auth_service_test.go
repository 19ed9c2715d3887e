package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nafirj-2103/nafi-rj-portfolio/internal/config"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/repository"
	apperrors "github.com/nafirj-2103/nafi-rj-portfolio/pkg/util/errorutil"
)

func newTestAuthService() *AuthService {
	cfg := config.AuthConfig{
		JWTSecret:      "test-secret",
		TokenTTLDays:   7,
		BcryptCost:     bcrypt.MinCost,
		AdminSecretKey: "registration-secret",
	}
	return NewAuthService(cfg, repository.NewMemoryAdminStore())
}

func TestRegister_SecretGate(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Register(context.Background(), "nafi", "nafi@example.com", "pw", "wrong-secret")
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperrors.ToDomainError(err).HTTPStatus)

	admin, err := svc.Register(context.Background(), "nafi", "nafi@example.com", "pw", "registration-secret")
	require.NoError(t, err)
	assert.NotEmpty(t, admin.ID)
	assert.NotEqual(t, "pw", admin.PasswordHash)
}

func TestRegister_UnsetSecretRejectsEveryone(t *testing.T) {
	cfg := config.AuthConfig{JWTSecret: "s", BcryptCost: bcrypt.MinCost}
	svc := NewAuthService(cfg, repository.NewMemoryAdminStore())

	_, err := svc.Register(context.Background(), "nafi", "nafi@example.com", "pw", "")
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperrors.ToDomainError(err).HTTPStatus)
}

func TestRegister_DuplicateConflict(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Register(context.Background(), "nafi", "nafi@example.com", "pw", "registration-secret")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "nafi", "other@example.com", "pw", "registration-secret")
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperrors.ToDomainError(err).HTTPStatus)
}

func TestLogin_IssuesParsableToken(t *testing.T) {
	svc := newTestAuthService()

	registered, err := svc.Register(context.Background(), "nafi", "nafi@example.com", "pw", "registration-secret")
	require.NoError(t, err)

	admin, token, exp, err := svc.Login(context.Background(), "nafi@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, admin.ID)
	assert.False(t, exp.IsZero())

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.AdminID)
	assert.Equal(t, "nafi@example.com", claims.Email)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Register(context.Background(), "nafi", "nafi@example.com", "pw", "registration-secret")
	require.NoError(t, err)

	// unknown email and wrong password look identical to the caller
	_, _, _, err = svc.Login(context.Background(), "nobody@example.com", "pw")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperrors.ToDomainError(err).HTTPStatus)

	_, _, _, err = svc.Login(context.Background(), "nafi@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperrors.ToDomainError(err).HTTPStatus)
}

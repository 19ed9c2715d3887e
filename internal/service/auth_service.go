package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/nafirj-2103/nafi-rj-portfolio/internal/auth"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/config"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/domain"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/repository"
	apperrors "github.com/nafirj-2103/nafi-rj-portfolio/pkg/util/errorutil"
)

// AuthService coordinates admin registration and login.
type AuthService struct {
	admins     repository.AdminStore
	tokenMgr   *auth.TokenManager
	bcryptCost int
	secretKey  string
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, admins repository.AdminStore) *AuthService {
	return &AuthService{
		admins:     admins,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL()),
		bcryptCost: cfg.BcryptCost,
		secretKey:  cfg.AdminSecretKey,
	}
}

// Register creates an admin account gated by the shared secret.
func (s *AuthService) Register(ctx context.Context, username, email, password, secretKey string) (*domain.Admin, error) {
	if s.secretKey == "" ||
		subtle.ConstantTimeCompare([]byte(secretKey), []byte(s.secretKey)) != 1 {
		return nil, apperrors.NewForbidden("invalid secret key")
	}
	if username == "" || email == "" || password == "" {
		return nil, apperrors.NewValidationError("username, email, and password are required", nil)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	admin := &domain.Admin{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict("username or email already registered", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return admin, nil
}

// Login authenticates by email and password and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Admin, string, time.Time, error) {
	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	if err := auth.ComparePassword(admin.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	token, exp, err := s.tokenMgr.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return admin, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

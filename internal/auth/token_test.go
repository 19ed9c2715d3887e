package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 7*24*time.Hour)

	token, exp, err := tm.GenerateToken("admin-1", "nafi@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), exp, time.Minute)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)
	assert.Equal(t, "nafi@example.com", claims.Email)
}

func TestTokenManager_DefaultTTL(t *testing.T) {
	tm := NewTokenManager("test-secret", 0)

	_, exp, err := tm.GenerateToken("admin-1", "nafi@example.com")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), exp, time.Minute)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	other := NewTokenManager("other-secret", time.Hour)

	token, _, err := tm.GenerateToken("admin-1", "nafi@example.com")
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenManager_RejectsTampered(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, _, err := tm.GenerateToken("admin-1", "nafi@example.com")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = tm.ParseToken(tampered)
	assert.Error(t, err)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	claims := &Claims{
		AdminID: "admin-1",
		Email:   "nafi@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tm.ParseToken(expired)
	assert.Error(t, err)
}

func TestTokenManager_RejectsWrongAlgorithm(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	claims := &Claims{AdminID: "admin-1", Email: "nafi@example.com"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	assert.Error(t, err)
}

func TestPassword_HashAndCompare(t *testing.T) {
	hash, err := HashPassword("hunter2", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.NoError(t, ComparePassword(hash, "hunter2"))
	assert.Error(t, ComparePassword(hash, "wrong"))
}

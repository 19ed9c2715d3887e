package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/nafirj-2103/nafi-rj-portfolio/pkg/util/errorutil"
)

const principalKey = "auth_principal"

// Principal is the decoded admin identity attached to a request.
type Principal struct {
	AdminID string
	Email   string
}

// AuthMiddleware validates bearer tokens on management routes.
// A missing or malformed header is 401; a token that fails
// verification (tampered, wrong algorithm, expired) is 403.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("no token provided")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewForbidden("invalid token")
	}

	c.Locals(principalKey, &Principal{AdminID: claims.AdminID, Email: claims.Email})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated admin identity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// AdminAuth guards the admin API with a static bearer token.
type AdminAuth struct {
	token string
}

// NewAdminAuth creates the middleware. The token must be non-empty; routes
// are not registered at all when no token is configured.
func NewAdminAuth(token string) *AdminAuth {
	return &AdminAuth{token: token}
}

// Require rejects requests without a matching Authorization header.
func (m *AdminAuth) Require(c fiber.Ctx) error {
	header := c.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
	}

	if subtle.ConstantTimeCompare([]byte(token), []byte(m.token)) != 1 {
		return fiber.NewError(fiber.StatusForbidden, "invalid token")
	}

	return c.Next()
}

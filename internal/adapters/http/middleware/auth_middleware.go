package middleware

import (
	"strings"

	"soshopay-mockapi/internal/pkg/response"
	"soshopay-mockapi/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware guards protected routes. Tokens are opaque in the mock:
// any bearer value passes except the sentinel literals, which always fail.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return response.Unauthorized(c, "Missing or invalid authorization token")
		}

		accessToken := strings.TrimPrefix(authHeader, "Bearer ")
		if token.IsSentinel(accessToken) {
			return response.Unauthorized(c, "Token is expired or invalid")
		}

		c.Locals("accessToken", accessToken)
		return c.Next()
	}
}

package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/daily-feed-api/internal/auth"
	"github.com/noah-isme/daily-feed-api/internal/utils"
)

// BearerAuth returns a middleware that validates static bearer tokens against
// the registry. Authentication failures are always 401; role checks live in
// RequireRole so that "valid token, wrong role" stays a distinct 403.
func BearerAuth(registry auth.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authorization := c.Get("Authorization")
		if authorization == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "authorization header missing")
		}

		scheme, token, found := strings.Cut(authorization, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") {
			return utils.SendError(c, fiber.StatusUnauthorized, "authorization scheme must be Bearer")
		}

		user, ok := registry.Lookup(strings.TrimSpace(token))
		if !ok {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals("user_role", user.Role)

		return c.Next()
	}
}

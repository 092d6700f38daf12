package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/daily-feed-api/internal/utils"
)

// RequireRole ensures that the authenticated user possesses one of the allowed
// roles. Matching is exact: admin is not implicitly allowed where teacher is
// required.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		normalized := strings.ToLower(strings.TrimSpace(role))
		if normalized != "" {
			allowed[normalized] = struct{}{}
		}
	}

	return func(c *fiber.Ctx) error {
		// BearerAuth stamps the role as a plain string; anything else means
		// the request never authenticated.
		role := ""
		if v, ok := c.Locals("user_role").(string); ok {
			role = strings.ToLower(strings.TrimSpace(v))
		}
		if _, ok := allowed[role]; !ok {
			return utils.SendError(c, fiber.StatusForbidden, "insufficient permissions")
		}
		return c.Next()
	}
}

// UserRoleFromContext returns the role stamped by BearerAuth, or "" when the
// request was not authenticated.
func UserRoleFromContext(c *fiber.Ctx) string {
	if v := c.Locals("user_role"); v != nil {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}

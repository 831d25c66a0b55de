package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/hanafi-dev/sentra-portal-api/internal/utils"
)

// RequireRole restricts a route to the named portal roles. JWTProtected
// stores the role claim lowercased, so a request that never passed through
// it carries no role and is rejected.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		if role = strings.ToLower(strings.TrimSpace(role)); role != "" {
			allowed[role] = true
		}
	}

	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		if !allowed[role] {
			return utils.SendError(c, fiber.StatusForbidden, "insufficient permissions")
		}
		return c.Next()
	}
}

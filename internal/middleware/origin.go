package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hanafi-dev/sentra-portal-api/internal/store"
)

// Origin records the caller's address in the request context so audit
// entries written by the actions can name where the action came from.
func Origin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.SetUserContext(store.WithOrigin(c.UserContext(), c.IP()))
		return c.Next()
	}
}

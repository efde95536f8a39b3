package serverutils

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRole rejects requests whose authenticated role is not in the allow
// list. Must run after JwtMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return NewForbiddenError("this action is not allowed for your role")
	}
}

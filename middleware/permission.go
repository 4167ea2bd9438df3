package middleware

import (
	"learnhub/apierr"

	"github.com/gofiber/fiber/v2"
)

// Admin must run after Auth.Required. It lets only admin users through.
func Admin(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if user == nil {
		return apierr.Unauthorized("Not authenticated")
	}
	if !user.IsAdmin {
		return apierr.Forbidden("The user doesn't have enough privileges")
	}
	return c.Next()
}

package middleware

import (
	"github.com/gofiber/fiber/v2"

	"socialhub/internal/models"
)

// UID returns the authenticated user's id set by RequireAuth.
func UID(c *fiber.Ctx) (uint, error) {
	id, ok := c.Locals("user_id").(uint)
	if !ok || id == 0 {
		return 0, fiber.ErrUnauthorized
	}
	return id, nil
}

// CurrentUser returns the full user record loaded by RequireAuth.
func CurrentUser(c *fiber.Ctx) (*models.User, error) {
	user, ok := c.Locals("user").(*models.User)
	if !ok || user == nil {
		return nil, fiber.ErrUnauthorized
	}
	return user, nil
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mattcann1/ccx-marketplace-api/internal/core/security"
)

// Protected resolves the caller's bearer credential to an access tier exactly
// once, here at the boundary. Handlers read the tier and user id from Locals
// and never look at the raw credential again.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization") // "Bearer demo_buyer_token"
		if authHeader == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Missing credentials"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid Header Format"})
		}

		tier, userID, err := security.ResolveTier(parts[1])
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid authentication credentials"})
		}

		c.Locals("tier", tier)
		c.Locals("user_id", userID)

		return c.Next()
	}
}

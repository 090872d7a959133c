package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mattcann1/ccx-marketplace-api/internal/core/domain"
)

// respondError translates core errors to HTTP statuses. Domain errors carry
// their own message; anything unrecognized is a storage-level failure and
// stays opaque to the caller.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrCreditNotFound):
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Credit not found"})
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Quantity must be a positive integer"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Insufficient quantity available"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(http.StatusForbidden).JSON(fiber.Map{"error": "Access forbidden"})
	case errors.Is(err, domain.ErrUnauthenticated):
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid authentication credentials"})
	default:
		slog.Error("Request failed", "error", err, "path", c.Path())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
}

// callerTier reads the access tier the auth middleware resolved.
func callerTier(c *fiber.Ctx) domain.Tier {
	if tier, ok := c.Locals("tier").(domain.Tier); ok {
		return tier
	}
	return domain.TierUnauthenticated
}

// callerID reads the user identity the auth middleware resolved.
func callerID(c *fiber.Ctx) string {
	if id, ok := c.Locals("user_id").(string); ok {
		return id
	}
	return ""
}

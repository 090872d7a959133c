package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mattcann1/ccx-marketplace-api/internal/adapter/storage"
	"github.com/mattcann1/ccx-marketplace-api/internal/core/domain"
)

type CreditHandler struct {
	Inventory *storage.InventoryRepository
}

// ListCredits returns the public listing of all credits. No auth needed:
// everyone sees the same listing rows.
func (h *CreditHandler) ListCredits(c *fiber.Ctx) error {
	credits, err := h.Inventory.ListCredits(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	listings := make([]domain.CreditListing, 0, len(credits))
	for _, credit := range credits {
		listings = append(listings, domain.NewCreditListing(credit))
	}
	return c.JSON(listings)
}

// TotalAvailable returns the total tons still purchasable across all credits.
func (h *CreditHandler) TotalAvailable(c *fiber.Ctx) error {
	total, err := h.Inventory.TotalAvailable(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total_available_amount": total})
}

// GetCredit returns one credit, redacted for the caller's tier. Public callers
// never see private details.
func (h *CreditHandler) GetCredit(c *fiber.Ctx) error {
	credit, err := h.Inventory.GetCredit(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(domain.NewCreditView(credit, callerTier(c)))
}

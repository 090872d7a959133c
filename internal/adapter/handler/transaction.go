package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mattcann1/ccx-marketplace-api/internal/adapter/storage"
	"github.com/mattcann1/ccx-marketplace-api/internal/core/domain"
)

type TransactionHandler struct {
	Repo *storage.LedgerRepository
}

// List returns the transaction trail for the caller's tier. Admins see the
// whole ledger, buyers their own purchases, public callers the whole ledger
// with buyer identities anonymized.
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	tier := callerTier(c)

	var (
		transactions []*domain.CreditTransaction
		err          error
	)
	if tier == domain.TierBuyer {
		transactions, err = h.Repo.ListTransactionsByBuyer(c.Context(), callerID(c))
	} else {
		transactions, err = h.Repo.ListTransactions(c.Context())
	}
	if err != nil {
		return respondError(c, err)
	}

	views := make([]domain.TransactionView, 0, len(transactions))
	for _, tx := range transactions {
		views = append(views, domain.NewTransactionView(tx, tier))
	}
	return c.JSON(views)
}

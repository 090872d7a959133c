package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mattcann1/ccx-marketplace-api/internal/adapter/storage"
	"github.com/mattcann1/ccx-marketplace-api/internal/core/domain"
)

type PurchaseHandler struct {
	Repo       *storage.LedgerRepository
	WebhookURL string
}

type PurchaseRequest struct {
	CreditID string `json:"credit_id"`
	Quantity int64  `json:"quantity"`
}

// Purchase buys credits for the authenticated caller. Buyer or admin tier
// only; public users can browse but not buy.
func (h *PurchaseHandler) Purchase(c *fiber.Ctx) error {
	var req PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Warn("Invalid purchase body", "error", err)
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	tier := callerTier(c)
	if !tier.CanPurchase() {
		return respondError(c, domain.ErrForbidden)
	}
	buyerID := callerID(c)

	tx, err := h.Repo.Purchase(c.Context(), req.CreditID, req.Quantity, buyerID)
	if err != nil {
		return respondError(c, err)
	}

	slog.Info("💰 Purchase completed",
		"transaction_id", tx.ID, "credit_id", tx.CreditID,
		"buyer_id", buyerID, "quantity", tx.Quantity, "total_cost", tx.TotalCost)

	h.queueWebhook(c, tx)

	return c.Status(http.StatusCreated).JSON(domain.NewTransactionView(tx, tier))
}

// queueWebhook hands the completed purchase to the background worker. Delivery
// is best effort and never blocks or fails the purchase itself.
func (h *PurchaseHandler) queueWebhook(c *fiber.Ctx, tx *domain.CreditTransaction) {
	if h.WebhookURL == "" {
		return
	}

	payload, err := json.Marshal(map[string]any{
		"event": "purchase.completed",
		"data": map[string]any{
			"transaction_id":   tx.ID,
			"credit_id":        tx.CreditID,
			"quantity":         tx.Quantity,
			"total_cost":       tx.TotalCost,
			"transaction_hash": tx.Hash,
			"timestamp":        tx.CreatedAt.Format(time.RFC3339Nano),
		},
	})
	if err != nil {
		slog.Error("❌ Failed to marshal webhook payload", "error", err)
		return
	}

	if err := h.Repo.QueueWebhookJob(c.Context(), h.WebhookURL, payload); err != nil {
		slog.Error("❌ Webhook Queue Error", "error", err, "transaction_id", tx.ID)
	}
}

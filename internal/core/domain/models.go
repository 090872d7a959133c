package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CarbonCredit represents a credit listing in the marketplace inventory.
// PublicDetails is visible to everyone; PrivateDetails only to buyers/admins.
type CarbonCredit struct {
	ID                 string          `json:"id"`
	ProjectName        string          `json:"project_name"`
	Supplier           string          `json:"supplier"`
	CreditType         string          `json:"credit_type"`
	Vintage            int             `json:"vintage"`
	TotalIssued        int64           `json:"total_issued"`
	QuantityAvailable  int64           `json:"quantity_available"`
	PricePerTon        decimal.Decimal `json:"price_per_ton"`
	Location           string          `json:"location"`
	VerificationStatus string          `json:"verification_status"`
	Methodology        string          `json:"methodology"`
	PublicDetails      map[string]any  `json:"public_details"`
	PrivateDetails     map[string]any  `json:"private_details,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// Exhausted reports whether the credit has no stock left. Exhausted credits
// stay listed, they are never deleted.
func (c *CarbonCredit) Exhausted() bool {
	return c.QuantityAvailable == 0
}

// TotalFor computes the cost of buying qty tons at the credit's current price.
func (c *CarbonCredit) TotalFor(qty int64) decimal.Decimal {
	return c.PricePerTon.Mul(decimal.NewFromInt(qty))
}

type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "completed"
)

// CreditTransaction is one completed purchase. Append-only: once committed it
// is never mutated, and Hash seals its contents.
type CreditTransaction struct {
	ID          uuid.UUID         `json:"id"`
	CreditID    string            `json:"credit_id"`
	BuyerID     string            `json:"buyer_id"`
	Quantity    int64             `json:"quantity"`
	PricePerTon decimal.Decimal   `json:"price_per_ton"`
	TotalCost   decimal.Decimal   `json:"total_cost"`
	Status      TransactionStatus `json:"status"`
	Hash        string            `json:"transaction_hash"`
	CreatedAt   time.Time         `json:"transaction_date"`
}

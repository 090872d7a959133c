package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AnonymousBuyer replaces the buyer identity in public-tier transaction views.
const AnonymousBuyer = "anonymous"

// CreditListing is the public listing row. It carries no detail maps at all:
// those only make sense on a single-record view.
type CreditListing struct {
	ID                 string          `json:"id"`
	ProjectName        string          `json:"project_name"`
	Supplier           string          `json:"supplier"`
	CreditType         string          `json:"credit_type"`
	Vintage            int             `json:"vintage"`
	QuantityAvailable  int64           `json:"quantity_available"`
	PricePerTon        decimal.Decimal `json:"price_per_ton"`
	Location           string          `json:"location"`
	VerificationStatus string          `json:"verification_status"`
	Methodology        string          `json:"methodology"`
	Exhausted          bool            `json:"exhausted"`
}

// CreditView is the single-record view of a credit, redacted per tier.
// PrivateDetails is only populated for buyer and admin callers.
type CreditView struct {
	CreditListing
	PublicDetails  map[string]any `json:"public_details"`
	PrivateDetails map[string]any `json:"private_details,omitempty"`
}

// TransactionView is a ledger entry as shown to a caller.
type TransactionView struct {
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

// NewCreditListing projects a credit to its listing row. Same fields for every
// tier; pure.
func NewCreditListing(c *CarbonCredit) CreditListing {
	return CreditListing{
		ID:                 c.ID,
		ProjectName:        c.ProjectName,
		Supplier:           c.Supplier,
		CreditType:         c.CreditType,
		Vintage:            c.Vintage,
		QuantityAvailable:  c.QuantityAvailable,
		PricePerTon:        c.PricePerTon,
		Location:           c.Location,
		VerificationStatus: c.VerificationStatus,
		Methodology:        c.Methodology,
		Exhausted:          c.Exhausted(),
	}
}

// NewCreditView projects a credit to the detail view for the given tier.
// Public callers never get PrivateDetails.
func NewCreditView(c *CarbonCredit, tier Tier) CreditView {
	v := CreditView{
		CreditListing: NewCreditListing(c),
		PublicDetails: c.PublicDetails,
	}
	if tier.AtLeast(TierBuyer) {
		v.PrivateDetails = c.PrivateDetails
	}
	return v
}

// NewTransactionView projects a ledger entry for the given tier. Public
// callers see the trade but not who made it.
func NewTransactionView(t *CreditTransaction, tier Tier) TransactionView {
	v := TransactionView{
		ID:          t.ID,
		CreditID:    t.CreditID,
		BuyerID:     t.BuyerID,
		Quantity:    t.Quantity,
		PricePerTon: t.PricePerTon,
		TotalCost:   t.TotalCost,
		Status:      t.Status,
		Hash:        t.Hash,
		CreatedAt:   t.CreatedAt,
	}
	if !tier.AtLeast(TierBuyer) {
		v.BuyerID = AnonymousBuyer
	}
	return v
}

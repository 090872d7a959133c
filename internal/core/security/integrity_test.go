package security

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mattcann1/ccx-marketplace-api/internal/core/domain"
)

func baseTransaction() *domain.CreditTransaction {
	return &domain.CreditTransaction{
		ID:          uuid.MustParse("5a8f7d0a-3f6e-4b2c-9a1d-2e4f6a8c0b1d"),
		CreditID:    "CC-001",
		BuyerID:     "buyer_001",
		Quantity:    30,
		PricePerTon: decimal.NewFromInt(10),
		TotalCost:   decimal.NewFromInt(300),
		Status:      domain.StatusCompleted,
		CreatedAt:   time.Date(2024, time.March, 12, 9, 30, 0, 0, time.UTC),
	}
}

func TestFingerprintDeterminism(t *testing.T) {
	tx := baseTransaction()
	first := FingerprintTransaction(tx)
	second := FingerprintTransaction(tx)
	if first != second {
		t.Errorf("same content hashed differently: %s vs %s", first, second)
	}
	if len(first) != 64 {
		t.Errorf("expected hex sha256 (64 chars), got %d", len(first))
	}
}

func TestFingerprintTimezoneInsensitive(t *testing.T) {
	tx := baseTransaction()
	base := FingerprintTransaction(tx)

	// Same instant expressed in another zone must hash identically: the
	// canonical serialization normalizes to UTC.
	shifted := baseTransaction()
	shifted.CreatedAt = shifted.CreatedAt.In(time.FixedZone("UTC+3", 3*3600))
	if got := FingerprintTransaction(shifted); got != base {
		t.Errorf("same instant in different zone changed the hash")
	}
}

func TestFingerprintChangesWithAnyField(t *testing.T) {
	base := FingerprintTransaction(baseTransaction())

	mutations := []struct {
		name   string
		mutate func(*domain.CreditTransaction)
	}{
		{"credit id", func(tx *domain.CreditTransaction) { tx.CreditID = "CC-002" }},
		{"buyer id", func(tx *domain.CreditTransaction) { tx.BuyerID = "buyer_002" }},
		{"quantity", func(tx *domain.CreditTransaction) { tx.Quantity = 31 }},
		{"price", func(tx *domain.CreditTransaction) { tx.PricePerTon = decimal.NewFromFloat(10.01) }},
		{"total", func(tx *domain.CreditTransaction) { tx.TotalCost = decimal.NewFromInt(301) }},
		{"timestamp", func(tx *domain.CreditTransaction) { tx.CreatedAt = tx.CreatedAt.Add(time.Microsecond) }},
	}

	for _, m := range mutations {
		t.Run(m.name, func(t *testing.T) {
			tx := baseTransaction()
			m.mutate(tx)
			if got := FingerprintTransaction(tx); got == base {
				t.Errorf("changing %s did not change the hash", m.name)
			}
		})
	}
}

// Numerically equal prices in different representations must hash the same:
// the canonical form strips trailing zeros, so what the database hands back
// verifies against what was hashed at purchase time.
func TestFingerprintCanonicalDecimal(t *testing.T) {
	a := baseTransaction()
	b := baseTransaction()
	b.PricePerTon = decimal.RequireFromString("10.00")
	b.TotalCost = decimal.RequireFromString("300.00")
	if FingerprintTransaction(a) != FingerprintTransaction(b) {
		t.Error("equal decimal values in different representations hashed differently")
	}
}

func TestVerifyTransaction(t *testing.T) {
	tx := baseTransaction()
	tx.Hash = FingerprintTransaction(tx)
	if err := VerifyTransaction(tx); err != nil {
		t.Fatalf("untampered transaction failed verification: %v", err)
	}

	tx.Quantity = 9999
	if err := VerifyTransaction(tx); !errors.Is(err, domain.ErrIntegrityFailure) {
		t.Errorf("tampered transaction error = %v, want ErrIntegrityFailure", err)
	}
}

package security

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mattcann1/ccx-marketplace-api/internal/core/domain"
)

// Fingerprint computes the tamper-evidence hash of a transaction's contents.
// The serialization is canonical: fixed field order, "|" separated, timestamp
// normalized to UTC RFC3339Nano. Same contents always hash the same, so the
// ledger can be re-verified independently later.
func Fingerprint(creditID, buyerID string, quantity int64, pricePerTon, totalCost decimal.Decimal, ts time.Time) string {
	input := fmt.Sprintf("%s|%s|%d|%s|%s|%s",
		creditID,
		buyerID,
		quantity,
		pricePerTon.String(),
		totalCost.String(),
		ts.UTC().Format(time.RFC3339Nano),
	)
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// FingerprintTransaction hashes a fully built transaction record.
func FingerprintTransaction(t *domain.CreditTransaction) string {
	return Fingerprint(t.CreditID, t.BuyerID, t.Quantity, t.PricePerTon, t.TotalCost, t.CreatedAt)
}

// VerifyTransaction recomputes the fingerprint over a stored transaction and
// checks it against the stored hash. Returns ErrIntegrityFailure on mismatch.
func VerifyTransaction(t *domain.CreditTransaction) error {
	if FingerprintTransaction(t) != t.Hash {
		return domain.ErrIntegrityFailure
	}
	return nil
}

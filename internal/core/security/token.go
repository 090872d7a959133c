package security

import (
	"github.com/mattcann1/ccx-marketplace-api/internal/core/domain"
)

// Demo bearer tokens. Token issuance/rotation lives outside this service;
// these are the three credentials the marketplace recognizes.
const (
	PublicToken = "demo_public_token"
	BuyerToken  = "demo_buyer_token"
	AdminToken  = "demo_admin_token"
)

// ResolveTier maps a bearer credential to its access tier and user ID.
// Anything other than the three known tokens is unauthenticated — note that
// this is distinct from the public tier, which is a valid logged-in level.
func ResolveTier(credential string) (domain.Tier, string, error) {
	switch credential {
	case PublicToken:
		return domain.TierPublic, "public_user", nil
	case BuyerToken:
		return domain.TierBuyer, "buyer_001", nil
	case AdminToken:
		return domain.TierAdmin, "admin_001", nil
	default:
		return domain.TierUnauthenticated, "", domain.ErrUnauthenticated
	}
}

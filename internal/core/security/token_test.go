package security

import (
	"errors"
	"testing"

	"github.com/mattcann1/ccx-marketplace-api/internal/core/domain"
)

func TestResolveTierKnownTokens(t *testing.T) {
	cases := []struct {
		token    string
		wantTier domain.Tier
		wantUser string
	}{
		{PublicToken, domain.TierPublic, "public_user"},
		{BuyerToken, domain.TierBuyer, "buyer_001"},
		{AdminToken, domain.TierAdmin, "admin_001"},
	}

	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			tier, userID, err := ResolveTier(tc.token)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tier != tc.wantTier {
				t.Errorf("tier = %v, want %v", tier, tc.wantTier)
			}
			if userID != tc.wantUser {
				t.Errorf("userID = %q, want %q", userID, tc.wantUser)
			}
		})
	}
}

func TestResolveTierUnknownToken(t *testing.T) {
	for _, token := range []string{"", "bogus", "demo_public_token ", "DEMO_PUBLIC_TOKEN"} {
		tier, userID, err := ResolveTier(token)
		if !errors.Is(err, domain.ErrUnauthenticated) {
			t.Errorf("ResolveTier(%q) error = %v, want ErrUnauthenticated", token, err)
		}
		if tier != domain.TierUnauthenticated {
			t.Errorf("ResolveTier(%q) tier = %v, want unauthenticated", token, tier)
		}
		if userID != "" {
			t.Errorf("ResolveTier(%q) leaked user id %q", token, userID)
		}
	}
}

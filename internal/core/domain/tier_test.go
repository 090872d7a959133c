package domain

import "testing"

func TestTierOrdering(t *testing.T) {
	cases := []struct {
		name  string
		tier  Tier
		other Tier
		want  bool
	}{
		{"admin covers buyer", TierAdmin, TierBuyer, true},
		{"admin covers public", TierAdmin, TierPublic, true},
		{"buyer covers public", TierBuyer, TierPublic, true},
		{"buyer covers itself", TierBuyer, TierBuyer, true},
		{"public does not cover buyer", TierPublic, TierBuyer, false},
		{"public does not cover admin", TierPublic, TierAdmin, false},
		{"unauthenticated covers nothing", TierUnauthenticated, TierPublic, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.tier.AtLeast(tc.other); got != tc.want {
				t.Errorf("%v.AtLeast(%v) = %v, want %v", tc.tier, tc.other, got, tc.want)
			}
		})
	}
}

func TestTierCanPurchase(t *testing.T) {
	if TierPublic.CanPurchase() {
		t.Error("public tier must not be allowed to purchase")
	}
	if TierUnauthenticated.CanPurchase() {
		t.Error("unauthenticated callers must not be allowed to purchase")
	}
	if !TierBuyer.CanPurchase() {
		t.Error("buyer tier must be allowed to purchase")
	}
	if !TierAdmin.CanPurchase() {
		t.Error("admin tier must be allowed to purchase")
	}
}

func TestTierString(t *testing.T) {
	cases := map[Tier]string{
		TierUnauthenticated: "unauthenticated",
		TierPublic:          "public",
		TierBuyer:           "buyer",
		TierAdmin:           "admin",
	}
	for tier, want := range cases {
		if got := tier.String(); got != want {
			t.Errorf("Tier(%d).String() = %q, want %q", tier, got, want)
		}
	}
}

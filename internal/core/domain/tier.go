package domain

// Tier is the caller's access level, resolved once at the boundary and passed
// through every core call. Higher tiers see strictly more.
type Tier int

const (
	TierUnauthenticated Tier = iota
	TierPublic
	TierBuyer
	TierAdmin
)

func (t Tier) String() string {
	switch t {
	case TierPublic:
		return "public"
	case TierBuyer:
		return "buyer"
	case TierAdmin:
		return "admin"
	default:
		return "unauthenticated"
	}
}

// AtLeast reports whether t grants everything other does.
func (t Tier) AtLeast(other Tier) bool {
	return t >= other
}

// CanPurchase reports whether the tier is allowed to buy credits.
// Public users can browse but not purchase.
func (t Tier) CanPurchase() bool {
	return t.AtLeast(TierBuyer)
}

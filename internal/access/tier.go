package access

// Subscription tiers, ordered from least to most capable
const (
	TierFree    = "free"
	TierBasic   = "basic"
	TierPremium = "premium"
)

var tierRank = map[string]int{
	TierFree:    0,
	TierBasic:   1,
	TierPremium: 2,
}

// TierRank maps a tier label to its position in the hierarchy. An unknown
// label ranks as free so that a bad label can never widen access.
func TierRank(tier string) int {
	if rank, ok := tierRank[tier]; ok {
		return rank
	}
	return tierRank[TierFree]
}

// TierAtLeast reports whether tier a is at least as capable as tier b
func TierAtLeast(a, b string) bool {
	return TierRank(a) >= TierRank(b)
}

// ValidTier reports whether the label names a known tier
func ValidTier(tier string) bool {
	_, ok := tierRank[tier]
	return ok
}

package access

import "testing"

func TestTierRank(t *testing.T) {
	tests := []struct {
		name string
		tier string
		want int
	}{
		{name: "free is lowest", tier: TierFree, want: 0},
		{name: "basic above free", tier: TierBasic, want: 1},
		{name: "premium highest", tier: TierPremium, want: 2},
		{name: "unknown label ranks as free", tier: "platinum", want: 0},
		{name: "empty label ranks as free", tier: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TierRank(tt.tier); got != tt.want {
				t.Errorf("TierRank(%q) = %d, want %d", tt.tier, got, tt.want)
			}
		})
	}
}

func TestTierAtLeast(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "equal tiers satisfy", a: TierBasic, b: TierBasic, want: true},
		{name: "higher tier satisfies lower", a: TierPremium, b: TierBasic, want: true},
		{name: "lower tier fails higher", a: TierFree, b: TierBasic, want: false},
		{name: "basic fails premium", a: TierBasic, b: TierPremium, want: false},
		{name: "unknown tier fails paid requirement", a: "gold", b: TierBasic, want: false},
		{name: "unknown tier satisfies free", a: "gold", b: TierFree, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TierAtLeast(tt.a, tt.b); got != tt.want {
				t.Errorf("TierAtLeast(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestValidTier(t *testing.T) {
	for _, tier := range []string{TierFree, TierBasic, TierPremium} {
		if !ValidTier(tier) {
			t.Errorf("ValidTier(%q) = false, want true", tier)
		}
	}
	for _, tier := range []string{"", "gold", "FREE", "Basic"} {
		if ValidTier(tier) {
			t.Errorf("ValidTier(%q) = true, want false", tier)
		}
	}
}

package access

import "testing"

func TestRuleFor(t *testing.T) {
	rule, ok := RuleFor(FeatureWorkoutGen)
	if !ok {
		t.Fatal("workout generation must be registered")
	}
	if rule.RequiredTier != TierBasic || !rule.RequiresScreening || rule.AllowGuest {
		t.Errorf("unexpected rule for workout generation: %+v", rule)
	}

	if _, ok := RuleFor("not.a.feature"); ok {
		t.Error("unregistered key must report ok=false")
	}
}

func TestRulesReturnsCopy(t *testing.T) {
	snapshot := Rules()
	snapshot[FeatureBrowseLibrary] = Rule{RequiredTier: TierPremium}

	rule, _ := RuleFor(FeatureBrowseLibrary)
	if rule.RequiredTier != TierFree {
		t.Error("mutating the Rules() result must not affect the registry")
	}
}

func TestRegisteredTiersAreValid(t *testing.T) {
	for key, rule := range Rules() {
		if !ValidTier(rule.RequiredTier) {
			t.Errorf("feature %q requires unknown tier %q", key, rule.RequiredTier)
		}
	}
}

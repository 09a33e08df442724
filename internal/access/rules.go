package access

// Feature keys gated by the rule registry
const (
	FeatureBrowseLibrary    = "library.browse"
	FeatureProgressTracking = "progress.tracking"
	FeatureMealPlan         = "meal.generate"
	FeatureWorkoutGen       = "workout.generate"
	FeatureAICoach          = "coach.chat"
	FeatureExportData       = "data.export"
)

// Rule is the access requirement tuple for a feature. The registry below is
// the single source of truth: the request guards read it directly and the
// policy endpoint serves it verbatim to clients, so the two sides cannot
// drift.
type Rule struct {
	RequiredTier      string `json:"required_tier"`
	RequiresScreening bool   `json:"requires_screening"`
	AllowGuest        bool   `json:"allow_guest"`
}

// Read-only at runtime; changing a rule is a deploy, not a data mutation.
var rules = map[string]Rule{
	FeatureBrowseLibrary:    {RequiredTier: TierFree, RequiresScreening: false, AllowGuest: true},
	FeatureProgressTracking: {RequiredTier: TierFree, RequiresScreening: false, AllowGuest: false},
	FeatureMealPlan:         {RequiredTier: TierBasic, RequiresScreening: false, AllowGuest: false},
	FeatureWorkoutGen:       {RequiredTier: TierBasic, RequiresScreening: true, AllowGuest: false},
	FeatureAICoach:          {RequiredTier: TierPremium, RequiresScreening: true, AllowGuest: false},
	FeatureExportData:       {RequiredTier: TierBasic, RequiresScreening: false, AllowGuest: false},
}

// RuleFor returns the requirement tuple for a feature key. The second return
// is false for unregistered keys; callers must deny in that case.
func RuleFor(key string) (Rule, bool) {
	r, ok := rules[key]
	return r, ok
}

// Rules returns a copy of the full registry, keyed by feature
func Rules() map[string]Rule {
	out := make(map[string]Rule, len(rules))
	for k, v := range rules {
		out[k] = v
	}
	return out
}

package access

// Subscription status values recognised by the tier check
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusCancelled = "cancelled"
	StatusPastDue   = "past_due"
)

// Denial reasons, terminal states of a request's authorization lifecycle
const (
	ReasonUnknownFeature      = "unknown_feature"
	ReasonUnauthenticated     = "unauthenticated"
	ReasonGuestNotAllowed     = "guest_not_allowed"
	ReasonInsufficientTier    = "insufficient_tier"
	ReasonScreeningIncomplete = "screening_incomplete"
)

// Subject is the authorization view of a request's identity. A zero Subject
// is an anonymous caller.
type Subject struct {
	Authenticated      bool
	Guest              bool
	Admin              bool
	Tier               string
	SubscriptionStatus string
	ScreeningComplete  bool
}

// Decision is the computed outcome for one subject and one feature. It is
// never persisted. Tier fields are populated on tier denials so the caller
// can render an actionable upgrade prompt.
type Decision struct {
	Allowed            bool   `json:"allowed"`
	Reason             string `json:"reason,omitempty"`
	RequiredTier       string `json:"required_tier,omitempty"`
	CurrentTier        string `json:"current_tier,omitempty"`
	SubscriptionStatus string `json:"subscription_status,omitempty"`
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Evaluate computes the authorization decision for a feature. Checks run in
// a fixed order: feature lookup, authentication, guest gate, tier, screening.
// Every unknown input fails closed.
func Evaluate(s Subject, featureKey string) Decision {
	rule, ok := RuleFor(featureKey)
	if !ok {
		return deny(ReasonUnknownFeature)
	}

	if !s.Authenticated {
		if !rule.AllowGuest {
			return deny(ReasonUnauthenticated)
		}
		// Anonymous callers carry no tier or screening state; they pass only
		// rules with no further requirements.
		if TierRank(rule.RequiredTier) > TierRank(TierFree) {
			return tierDeny(rule, TierFree, "")
		}
		if rule.RequiresScreening {
			return deny(ReasonScreeningIncomplete)
		}
		return allow()
	}

	if s.Guest && !rule.AllowGuest {
		return deny(ReasonGuestNotAllowed)
	}

	if d := CheckTier(s, rule.RequiredTier); !d.Allowed {
		return d
	}

	if rule.RequiresScreening && !s.ScreeningComplete {
		return deny(ReasonScreeningIncomplete)
	}

	return allow()
}

// CheckTier applies the tier requirement to an authenticated subject. Admins
// satisfy every tier requirement; everyone else needs both a sufficient tier
// and, for paid tiers, an active subscription.
func CheckTier(s Subject, requiredTier string) Decision {
	if s.Admin {
		return allow()
	}

	effective := s.Tier
	if !ValidTier(effective) {
		effective = TierFree
	}

	if !TierAtLeast(effective, requiredTier) {
		return tierDeny(Rule{RequiredTier: requiredTier}, effective, s.SubscriptionStatus)
	}

	// A lapsed subscription does not keep its paid tier's access. The free
	// tier needs no subscription, so the status check applies to paid tiers
	// only.
	if TierRank(requiredTier) > TierRank(TierFree) && s.SubscriptionStatus != StatusActive {
		return tierDeny(Rule{RequiredTier: requiredTier}, effective, s.SubscriptionStatus)
	}

	return allow()
}

func tierDeny(rule Rule, currentTier, status string) Decision {
	return Decision{
		Allowed:            false,
		Reason:             ReasonInsufficientTier,
		RequiredTier:       rule.RequiredTier,
		CurrentTier:        currentTier,
		SubscriptionStatus: status,
	}
}

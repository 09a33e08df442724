package client

import "net/url"

// RouteGuard approximates the server's access decisions for client-side
// navigation. It consumes the policy document the server publishes, so
// its rules cannot drift from enforcement. It is a UX aid only: the
// server re-evaluates every request, and a stale guard result is
// corrected by the API's 401/403 responses.
type RouteGuard struct {
	policy *PolicyDocument
	ranks  map[string]int
}

// Verdict is a navigation decision
type Verdict int

const (
	// Allow means render the route
	Allow Verdict = iota
	// RedirectSignIn means send the visitor to the sign-in flow,
	// preserving the intended destination
	RedirectSignIn
	// RedirectLanding means a guest session cannot use the feature at
	// all; send them to the public landing view rather than sign-in
	RedirectLanding
	// RedirectUpgrade means show the subscription upgrade view
	RedirectUpgrade
	// RedirectScreening means send the user to the readiness questionnaire
	RedirectScreening
	// Deny means the feature is not navigable at all (unknown key)
	Deny
)

// Viewer is the client's view of the current identity. A nil Viewer or
// Authenticated=false means an anonymous visitor.
type Viewer struct {
	Authenticated      bool
	Guest              bool
	Tier               string
	SubscriptionStatus string
	ScreeningComplete  bool
}

// NewRouteGuard builds a guard from a fetched policy document
func NewRouteGuard(policy *PolicyDocument) *RouteGuard {
	ranks := make(map[string]int, len(policy.Tiers))
	for i, tier := range policy.Tiers {
		ranks[tier] = i
	}
	return &RouteGuard{policy: policy, ranks: ranks}
}

// Decide returns the navigation verdict for a feature. The check order
// matches the server: unknown feature, authentication, guest gate, tier,
// then screening.
func (g *RouteGuard) Decide(featureKey string, v *Viewer) Verdict {
	rule, ok := g.policy.Features[featureKey]
	if !ok {
		// Fail closed on unregistered keys
		return Deny
	}

	// Anonymous visitors can only pass guest-allowed rules with no tier or
	// screening requirement; everything else starts at the sign-in flow
	anonymous := v == nil || !v.Authenticated
	if anonymous {
		if rule.AllowGuest && g.rank(rule.RequiredTier) == 0 && !rule.RequiresScreening {
			return Allow
		}
		return RedirectSignIn
	}

	if v.Guest && !rule.AllowGuest {
		return RedirectLanding
	}

	if !g.tierSatisfied(v, rule.RequiredTier) {
		return RedirectUpgrade
	}

	if rule.RequiresScreening && !v.ScreeningComplete {
		return RedirectScreening
	}

	return Allow
}

// SignInTarget builds the sign-in path carrying the originally requested
// destination, so the app can return the user there after login
func SignInTarget(signInPath, destination string) string {
	if destination == "" {
		return signInPath
	}
	return signInPath + "?next=" + url.QueryEscape(destination)
}

// tierSatisfied mirrors the server's tier check: rank comparison plus an
// active-status requirement for paid tiers
func (g *RouteGuard) tierSatisfied(v *Viewer, required string) bool {
	if g.rank(v.Tier) < g.rank(required) {
		return false
	}
	if g.rank(required) > 0 && v.SubscriptionStatus != "active" {
		return false
	}
	return true
}

// rank maps unknown tiers to the lowest rank, matching server behavior
func (g *RouteGuard) rank(tier string) int {
	if r, ok := g.ranks[tier]; ok {
		return r
	}
	return 0
}

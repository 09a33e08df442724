package access

import "testing"

func activeSubject(tier string) Subject {
	return Subject{
		Authenticated:      true,
		Tier:               tier,
		SubscriptionStatus: StatusActive,
		ScreeningComplete:  true,
	}
}

func TestEvaluate_UnknownFeature(t *testing.T) {
	d := Evaluate(activeSubject(TierPremium), "payments.refund")
	if d.Allowed {
		t.Fatal("unknown feature key must deny")
	}
	if d.Reason != ReasonUnknownFeature {
		t.Errorf("reason = %q, want %q", d.Reason, ReasonUnknownFeature)
	}
}

func TestEvaluate_Anonymous(t *testing.T) {
	tests := []struct {
		name       string
		feature    string
		wantAllow  bool
		wantReason string
	}{
		{name: "guest-open feature allows anonymous", feature: FeatureBrowseLibrary, wantAllow: true},
		{name: "member feature denies anonymous", feature: FeatureProgressTracking, wantAllow: false, wantReason: ReasonUnauthenticated},
		{name: "paid feature denies anonymous", feature: FeatureMealPlan, wantAllow: false, wantReason: ReasonUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Evaluate(Subject{}, tt.feature)
			if d.Allowed != tt.wantAllow {
				t.Fatalf("Allowed = %v, want %v", d.Allowed, tt.wantAllow)
			}
			if !tt.wantAllow && d.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", d.Reason, tt.wantReason)
			}
		})
	}
}

func TestEvaluate_GuestGate(t *testing.T) {
	guest := Subject{
		Authenticated:      true,
		Guest:              true,
		Tier:               TierPremium,
		SubscriptionStatus: StatusActive,
		ScreeningComplete:  true,
	}

	// Tier and screening state must not rescue a guest from the guest gate
	d := Evaluate(guest, FeatureProgressTracking)
	if d.Allowed {
		t.Fatal("guest must be denied a members-only feature regardless of tier")
	}
	if d.Reason != ReasonGuestNotAllowed {
		t.Errorf("reason = %q, want %q", d.Reason, ReasonGuestNotAllowed)
	}

	if d := Evaluate(guest, FeatureBrowseLibrary); !d.Allowed {
		t.Error("guest must be allowed a guest-open feature")
	}
}

func TestEvaluate_TierDenialPayload(t *testing.T) {
	s := Subject{Authenticated: true, Tier: TierFree, SubscriptionStatus: StatusActive}

	d := Evaluate(s, FeatureWorkoutGen)
	if d.Allowed {
		t.Fatal("free tier must be denied a basic feature")
	}
	if d.Reason != ReasonInsufficientTier {
		t.Fatalf("reason = %q, want %q", d.Reason, ReasonInsufficientTier)
	}
	if d.RequiredTier != TierBasic {
		t.Errorf("RequiredTier = %q, want %q", d.RequiredTier, TierBasic)
	}
	if d.CurrentTier != TierFree {
		t.Errorf("CurrentTier = %q, want %q", d.CurrentTier, TierFree)
	}
}

func TestEvaluate_ScreeningAfterTier(t *testing.T) {
	// An unscreened basic subscriber fails FeatureWorkoutGen on screening,
	// not on tier: the tier check runs first and passes.
	s := Subject{
		Authenticated:      true,
		Tier:               TierBasic,
		SubscriptionStatus: StatusActive,
		ScreeningComplete:  false,
	}

	d := Evaluate(s, FeatureWorkoutGen)
	if d.Allowed {
		t.Fatal("unscreened subject must be denied a screening-gated feature")
	}
	if d.Reason != ReasonScreeningIncomplete {
		t.Errorf("reason = %q, want %q", d.Reason, ReasonScreeningIncomplete)
	}

	// An unscreened free subject fails the same feature on tier first
	s.Tier = TierFree
	d = Evaluate(s, FeatureWorkoutGen)
	if d.Reason != ReasonInsufficientTier {
		t.Errorf("reason = %q, want %q (tier check precedes screening)", d.Reason, ReasonInsufficientTier)
	}
}

func TestEvaluate_SubscriptionStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    string
		wantAllow bool
	}{
		{name: "active premium allowed", status: StatusActive, wantAllow: true},
		{name: "cancelled premium denied", status: StatusCancelled, wantAllow: false},
		{name: "past due premium denied", status: StatusPastDue, wantAllow: false},
		{name: "inactive premium denied", status: StatusInactive, wantAllow: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Subject{
				Authenticated:      true,
				Tier:               TierPremium,
				SubscriptionStatus: tt.status,
				ScreeningComplete:  true,
			}
			d := Evaluate(s, FeatureAICoach)
			if d.Allowed != tt.wantAllow {
				t.Fatalf("Allowed = %v, want %v", d.Allowed, tt.wantAllow)
			}
			if !tt.wantAllow && d.Reason != ReasonInsufficientTier {
				t.Errorf("reason = %q, want %q", d.Reason, ReasonInsufficientTier)
			}
		})
	}
}

func TestEvaluate_LapsedStatusKeepsFreeAccess(t *testing.T) {
	// A cancelled subscription loses paid access but not the free tier
	s := Subject{
		Authenticated:      true,
		Tier:               TierPremium,
		SubscriptionStatus: StatusCancelled,
	}
	if d := Evaluate(s, FeatureProgressTracking); !d.Allowed {
		t.Error("free-tier feature must stay available after cancellation")
	}
}

func TestEvaluate_HappyPath(t *testing.T) {
	d := Evaluate(activeSubject(TierBasic), FeatureWorkoutGen)
	if !d.Allowed {
		t.Fatalf("active screened basic subject must pass, got reason %q", d.Reason)
	}
}

func TestEvaluate_UnknownTierTreatedAsFree(t *testing.T) {
	s := Subject{
		Authenticated:      true,
		Tier:               "platinum",
		SubscriptionStatus: StatusActive,
		ScreeningComplete:  true,
	}
	d := Evaluate(s, FeatureMealPlan)
	if d.Allowed {
		t.Fatal("unknown tier label must not widen access")
	}
	if d.CurrentTier != TierFree {
		t.Errorf("CurrentTier = %q, want %q", d.CurrentTier, TierFree)
	}
}

func TestCheckTier_AdminBypass(t *testing.T) {
	s := Subject{Authenticated: true, Admin: true, Tier: TierFree}
	if d := CheckTier(s, TierPremium); !d.Allowed {
		t.Error("admin must satisfy every tier requirement")
	}

	// Admins still go through the screening gate in Evaluate
	d := Evaluate(Subject{Authenticated: true, Admin: true, Tier: TierFree}, FeatureWorkoutGen)
	if d.Allowed {
		t.Fatal("admin without screening must still be denied a screening-gated feature")
	}
	if d.Reason != ReasonScreeningIncomplete {
		t.Errorf("reason = %q, want %q", d.Reason, ReasonScreeningIncomplete)
	}
}

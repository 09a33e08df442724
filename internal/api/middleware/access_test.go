package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fitgate/fitgate/internal/access"
	"github.com/fitgate/fitgate/internal/domain/user"
)

func serveWithIdentity(handler http.Handler, u *user.User) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/feature", nil)
	if u != nil {
		req = req.WithContext(withIdentity(req.Context(), u))
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) (code string, details map[string]interface{}) {
	t.Helper()
	var resp struct {
		Error struct {
			Code    string                 `json:"code"`
			Details map[string]interface{} `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	return resp.Error.Code, resp.Error.Details
}

func TestRequireTier_DenialPayload(t *testing.T) {
	handler := RequireTier(access.TierBasic)(okHandler())

	u := &user.User{
		ID:                 1,
		AccountType:        user.AccountTypeRegistered,
		SubscriptionTier:   "free",
		SubscriptionStatus: "active",
	}
	rec := serveWithIdentity(handler, u)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	code, details := decodeError(t, rec)
	if code != "INSUFFICIENT_TIER" {
		t.Fatalf("code = %q, want INSUFFICIENT_TIER", code)
	}
	if details["required_tier"] != "basic" {
		t.Errorf("required_tier = %v, want basic", details["required_tier"])
	}
	if details["current_tier"] != "free" {
		t.Errorf("current_tier = %v, want free", details["current_tier"])
	}
	if _, ok := details["subscription_status"]; !ok {
		t.Error("denial must carry subscription_status")
	}
}

func TestRequireTier_CancelledSubscription(t *testing.T) {
	handler := RequireTier(access.TierPremium)(okHandler())

	u := &user.User{
		ID:                 1,
		AccountType:        user.AccountTypeRegistered,
		SubscriptionTier:   "premium",
		SubscriptionStatus: "cancelled",
	}
	rec := serveWithIdentity(handler, u)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403 (tier level alone is not enough)", rec.Code)
	}
	code, _ := decodeError(t, rec)
	if code != "INSUFFICIENT_TIER" {
		t.Errorf("code = %q, want INSUFFICIENT_TIER", code)
	}
}

func TestRequireTier_NoIdentity(t *testing.T) {
	handler := RequireTier(access.TierBasic)(okHandler())
	rec := serveWithIdentity(handler, nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireScreening(t *testing.T) {
	handler := RequireScreening(okHandler())

	unscreened := &user.User{ID: 1, AccountType: user.AccountTypeRegistered}
	rec := serveWithIdentity(handler, unscreened)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	code, _ := decodeError(t, rec)
	if code != "SCREENING_INCOMPLETE" {
		t.Errorf("code = %q, want SCREENING_INCOMPLETE", code)
	}

	screened := &user.User{ID: 1, AccountType: user.AccountTypeRegistered, ScreeningComplete: true}
	if rec := serveWithIdentity(handler, screened); rec.Code != http.StatusOK {
		t.Errorf("screened user: status = %d, want 200", rec.Code)
	}
}

func TestRequireFeature_UnknownKeyFailsClosed(t *testing.T) {
	handler := RequireFeature("definitely.not.registered")(okHandler())

	admin := &user.User{
		ID:                 1,
		IsAdmin:            true,
		AccountType:        user.AccountTypeRegistered,
		SubscriptionTier:   "premium",
		SubscriptionStatus: "active",
		ScreeningComplete:  true,
	}
	rec := serveWithIdentity(handler, admin)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	code, _ := decodeError(t, rec)
	if code != "UNKNOWN_FEATURE" {
		t.Errorf("code = %q, want UNKNOWN_FEATURE", code)
	}
}

func TestRequireFeature_TierCheckPrecedesScreening(t *testing.T) {
	handler := RequireFeature(access.FeatureWorkoutGen)(okHandler())

	// Basic, unscreened: the deterministic order reports screening
	basic := &user.User{
		ID:                 1,
		AccountType:        user.AccountTypeRegistered,
		SubscriptionTier:   "basic",
		SubscriptionStatus: "active",
	}
	rec := serveWithIdentity(handler, basic)
	if code, _ := decodeError(t, rec); code != "SCREENING_INCOMPLETE" {
		t.Errorf("basic unscreened: code = %q, want SCREENING_INCOMPLETE", code)
	}

	// Free, unscreened: tier fails first
	free := &user.User{
		ID:                 1,
		AccountType:        user.AccountTypeRegistered,
		SubscriptionTier:   "free",
		SubscriptionStatus: "active",
	}
	rec = serveWithIdentity(handler, free)
	if code, _ := decodeError(t, rec); code != "INSUFFICIENT_TIER" {
		t.Errorf("free unscreened: code = %q, want INSUFFICIENT_TIER", code)
	}
}

func TestRequireFeature_GuestGate(t *testing.T) {
	handler := RequireFeature(access.FeatureProgressTracking)(okHandler())

	guest := &user.User{
		ID:                 1,
		AccountType:        user.AccountTypeGuest,
		SubscriptionTier:   "free",
		SubscriptionStatus: "active",
	}
	rec := serveWithIdentity(handler, guest)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	code, _ := decodeError(t, rec)
	if code != "FORBIDDEN" {
		t.Errorf("code = %q, want FORBIDDEN", code)
	}
}

func TestRequireFeature_AnonymousOnGuestOpenFeature(t *testing.T) {
	handler := RequireFeature(access.FeatureBrowseLibrary)(okHandler())

	if rec := serveWithIdentity(handler, nil); rec.Code != http.StatusOK {
		t.Errorf("anonymous on guest-open feature: status = %d, want 200", rec.Code)
	}
}

func TestRequireFeature_AnonymousOnMemberFeature(t *testing.T) {
	handler := RequireFeature(access.FeatureMealPlan)(okHandler())

	rec := serveWithIdentity(handler, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 (deny before leaking tier state)", rec.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin(okHandler())

	regular := &user.User{ID: 1, AccountType: user.AccountTypeRegistered}
	if rec := serveWithIdentity(handler, regular); rec.Code != http.StatusForbidden {
		t.Errorf("non-admin: status = %d, want 403", rec.Code)
	}

	admin := &user.User{ID: 2, IsAdmin: true, AccountType: user.AccountTypeRegistered}
	if rec := serveWithIdentity(handler, admin); rec.Code != http.StatusOK {
		t.Errorf("admin: status = %d, want 200", rec.Code)
	}

	if rec := serveWithIdentity(handler, nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous: status = %d, want 401", rec.Code)
	}
}

package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fitgate/fitgate/internal/auth"
	"github.com/fitgate/fitgate/internal/domain/user"
	"github.com/fitgate/fitgate/internal/pkg/errors"
)

const testSecret = "middleware-test-secret"

// stubUsers implements the subset of user.Service the guards touch
type stubUsers struct {
	user.Service
	byID map[int64]*user.User
	err  error
}

func (s *stubUsers) GetByID(ctx context.Context, id int64) (*user.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.byID[id]
	if !ok {
		return nil, errors.NotFound("User")
	}
	return u, nil
}

func testAuthConfig(users *stubUsers) AuthConfig {
	return AuthConfig{
		JWTSecret:     testSecret,
		Users:         users,
		LookupTimeout: time.Second,
	}
}

func mintFor(t *testing.T, u *user.User) string {
	t.Helper()
	tok, err := auth.Mint(u.ID, u.Email, u.AccountType, u.IsAdmin, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("minting token: %v", err)
	}
	return tok
}

func identityEcho(t *testing.T, got **user.User) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if u, ok := GetIdentity(r); ok {
			*got = u
		}
		w.WriteHeader(http.StatusOK)
	})
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var resp struct {
		Error struct {
			Code    string                 `json:"code"`
			Details map[string]interface{} `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	return resp.Error.Code
}

func TestRequireAuth_MissingToken(t *testing.T) {
	cfg := testAuthConfig(&stubUsers{byID: map[int64]*user.User{}})

	var got *user.User
	handler := RequireAuth(cfg)(identityEcho(t, &got))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/protected", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if code := errorCode(t, rec.Body.Bytes()); code != errors.ErrCodeUnauthorized {
		t.Errorf("error code = %q, want %q", code, errors.ErrCodeUnauthorized)
	}
	if got != nil {
		t.Error("handler must not run without a token")
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	cfg := testAuthConfig(&stubUsers{byID: map[int64]*user.User{}})
	handler := RequireAuth(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run with an invalid token")
	}))

	for _, raw := range []string{"Bearer garbage", "Bearer ", "Basic abc"} {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", raw)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", raw, rec.Code)
		}
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	u := &user.User{ID: 1, Email: "a@b.c", AccountType: user.AccountTypeRegistered}
	cfg := testAuthConfig(&stubUsers{byID: map[int64]*user.User{1: u}})

	expired, err := auth.Mint(u.ID, u.Email, u.AccountType, false, testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("minting token: %v", err)
	}

	handler := RequireAuth(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run with an expired token")
	}))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAuth_AccountDeleted(t *testing.T) {
	// Token is valid but the record it binds to is gone
	ghost := &user.User{ID: 7, Email: "ghost@example.com", AccountType: user.AccountTypeRegistered}
	cfg := testAuthConfig(&stubUsers{byID: map[int64]*user.User{}})

	handler := RequireAuth(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run for a deleted account")
	}))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+mintFor(t, ghost))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAuth_StoreFailureFailsClosed(t *testing.T) {
	u := &user.User{ID: 1, Email: "a@b.c", AccountType: user.AccountTypeRegistered}
	cfg := testAuthConfig(&stubUsers{err: errors.DatabaseError("down", nil)})

	handler := RequireAuth(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run when the store is unreachable")
	}))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+mintFor(t, u))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 (fail closed, never grant)", rec.Code)
	}
}

func TestRequireAuth_FreshStateBeatsTokenSnapshot(t *testing.T) {
	// Token was minted while the user was free tier; the store has since
	// been upgraded. The request must see the current record.
	current := &user.User{
		ID:                 3,
		Email:              "upgraded@example.com",
		AccountType:        user.AccountTypeRegistered,
		SubscriptionTier:   "premium",
		SubscriptionStatus: "active",
	}
	cfg := testAuthConfig(&stubUsers{byID: map[int64]*user.User{3: current}})

	stale := &user.User{ID: 3, Email: "upgraded@example.com", AccountType: user.AccountTypeRegistered}
	tok := mintFor(t, stale)

	var got *user.User
	handler := RequireAuth(cfg)(identityEcho(t, &got))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got == nil {
		t.Fatal("handler did not receive an identity")
	}
	if got.SubscriptionTier != "premium" {
		t.Errorf("tier = %q, want premium (store state, not token snapshot)", got.SubscriptionTier)
	}
}

func TestRequireAuth_CookieFallback(t *testing.T) {
	u := &user.User{ID: 5, Email: "cookie@example.com", AccountType: user.AccountTypeRegistered}
	cfg := testAuthConfig(&stubUsers{byID: map[int64]*user.User{5: u}})

	var got *user.User
	handler := RequireAuth(cfg)(identityEcho(t, &got))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: mintFor(t, u)})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got == nil || got.ID != 5 {
		t.Error("cookie token must authenticate the request")
	}
}

func TestOptionalAuth_NoToken(t *testing.T) {
	cfg := testAuthConfig(&stubUsers{byID: map[int64]*user.User{}})

	var ran bool
	var got *user.User
	handler := OptionalAuth(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ran = true
		got, _ = GetIdentity(r)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/library", nil))

	if !ran {
		t.Fatal("anonymous request must proceed")
	}
	if got != nil {
		t.Error("anonymous request must carry no identity")
	}
}

func TestOptionalAuth_InvalidTokenDegradesToAnonymous(t *testing.T) {
	cfg := testAuthConfig(&stubUsers{byID: map[int64]*user.User{}})

	var ran bool
	var got *user.User
	handler := OptionalAuth(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ran = true
		got, _ = GetIdentity(r)
	}))

	req := httptest.NewRequest("GET", "/library", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !ran {
		t.Fatal("request with a malformed token must proceed anonymously")
	}
	if got != nil {
		t.Error("malformed token must not attach an identity")
	}
}

func TestOptionalAuth_ValidTokenAttachesIdentity(t *testing.T) {
	u := &user.User{ID: 9, Email: "opt@example.com", AccountType: user.AccountTypeRegistered}
	cfg := testAuthConfig(&stubUsers{byID: map[int64]*user.User{9: u}})

	var got *user.User
	handler := OptionalAuth(cfg)(identityEcho(t, &got))

	req := httptest.NewRequest("GET", "/library", nil)
	req.Header.Set("Authorization", "Bearer "+mintFor(t, u))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got == nil || got.ID != 9 {
		t.Error("valid token must attach the loaded identity")
	}
}

func TestOptionalAuth_StoreFailureDegradesToAnonymous(t *testing.T) {
	u := &user.User{ID: 9, Email: "opt@example.com", AccountType: user.AccountTypeRegistered}
	cfg := testAuthConfig(&stubUsers{err: errors.DatabaseError("down", nil)})

	var ran bool
	var got *user.User
	handler := OptionalAuth(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ran = true
		got, _ = GetIdentity(r)
	}))

	req := httptest.NewRequest("GET", "/library", nil)
	req.Header.Set("Authorization", "Bearer "+mintFor(t, u))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !ran {
		t.Fatal("optional path must degrade, not fail, on store errors")
	}
	if got != nil {
		t.Error("store failure must not attach an identity")
	}
}

package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/fitgate/fitgate/internal/auth"
	"github.com/fitgate/fitgate/internal/domain/user"
	"github.com/fitgate/fitgate/internal/pkg/errors"
	"github.com/fitgate/fitgate/internal/pkg/metrics"
	"github.com/fitgate/fitgate/internal/pkg/utils"
)

// ContextKey is a custom type for context keys
type ContextKey string

// IdentityKey is the context key for the authenticated user record
const IdentityKey ContextKey = "identity"

// AuthConfig carries what the authentication guards need
type AuthConfig struct {
	JWTSecret     string
	Users         user.Service
	LookupTimeout time.Duration
}

// RequireAuth returns a middleware that rejects requests without a valid
// bearer token. On success the current user record, freshly loaded from the
// store, is attached to the request context. Token claims are used only to
// locate the record; tier and screening state always come from the store.
func RequireAuth(cfg AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerToken(r)
			if tokenStr == "" {
				metrics.RecordDecision("auth", "deny")
				utils.WriteError(w, errors.Unauthorized("Missing authentication token"))
				return
			}

			claims, err := auth.ParseClaims(tokenStr, cfg.JWTSecret)
			if err != nil {
				metrics.RecordTokenRejected("required")
				metrics.RecordDecision("auth", "deny")
				utils.WriteError(w, errors.Unauthorized("Invalid or expired token"))
				return
			}

			u, appErr := loadIdentity(r.Context(), cfg, claims)
			if appErr != nil {
				metrics.RecordDecision("auth", "deny")
				utils.WriteError(w, appErr)
				return
			}

			metrics.RecordDecision("auth", "allow")
			AddLogField(w, "user_id", u.ID)
			next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), u)))
		})
	}
}

// OptionalAuth is like RequireAuth but guest-tolerant: a request without a
// token proceeds anonymously. An invalid token also degrades to anonymous
// rather than failing the request; this mirrors how the product treats
// guests today and is counted so the permissiveness stays visible.
func OptionalAuth(cfg AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerToken(r)
			if tokenStr == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ParseClaims(tokenStr, cfg.JWTSecret)
			if err != nil {
				metrics.RecordTokenRejected("optional")
				next.ServeHTTP(w, r)
				return
			}

			u, appErr := loadIdentity(r.Context(), cfg, claims)
			if appErr != nil {
				// The record behind a valid token is gone or unreachable;
				// degrade to anonymous like any other optional-path failure.
				metrics.RecordTokenRejected("optional")
				next.ServeHTTP(w, r)
				return
			}

			AddLogField(w, "user_id", u.ID)
			next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), u)))
		})
	}
}

// loadIdentity resolves verified claims to the current store record. A
// missing record or store failure yields 401: the guard fails closed.
func loadIdentity(ctx context.Context, cfg AuthConfig, claims *auth.Claims) (*user.User, *errors.AppError) {
	id, err := claims.UserID()
	if err != nil {
		return nil, errors.Unauthorized("Invalid or expired token")
	}

	timeout := cfg.LookupTimeout
	if timeout == 0 {
		timeout = 3 * time.Second
	}
	lookupCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	u, err := cfg.Users.GetByID(lookupCtx, id)
	if err != nil {
		return nil, errors.Unauthorized("Account no longer exists")
	}
	return u, nil
}

// bearerToken extracts the credential from the Authorization header, falling
// back to the access-token cookie browsers send
func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	cookie, err := r.Cookie("accessToken")
	if err == nil {
		return cookie.Value
	}
	return ""
}

func withIdentity(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, IdentityKey, u)
}

// GetIdentity extracts the authenticated user from the request context
func GetIdentity(r *http.Request) (*user.User, bool) {
	u, ok := r.Context().Value(IdentityKey).(*user.User)
	return u, ok
}

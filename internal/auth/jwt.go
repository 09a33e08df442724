package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the assertions embedded in a bearer token. Email, AccountType
// and IsAdmin are a snapshot taken at issuance for convenience only; current
// privilege is always re-read from the user store on verification.
type Claims struct {
	Email       string `json:"email"`
	AccountType string `json:"account_type"`
	IsAdmin     bool   `json:"admin"`
	jwt.RegisteredClaims
}

// Mint issues a signed token binding to the given user ID with a fixed
// validity window
func Mint(userID int64, email, accountType string, isAdmin bool, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email:       email,
		AccountType: accountType,
		IsAdmin:     isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return token.SignedString([]byte(secret))
}

// ParseClaims verifies a token's signature and expiry and returns its claims.
// Verification failure is always recoverable by the caller; it is never fatal.
func ParseClaims(tokenStr, secret string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if c, ok := t.Claims.(*Claims); ok && t.Valid {
		return c, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}

// UserID returns the identity id the token binds to
func (c *Claims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

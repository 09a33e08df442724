package client

import "fmt"

// Error codes the API uses for access denials
const (
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeInsufficientTier    = "INSUFFICIENT_TIER"
	CodeScreeningIncomplete = "SCREENING_INCOMPLETE"
	CodeUnknownFeature      = "UNKNOWN_FEATURE"
)

// APIError represents an error returned by the API
type APIError struct {
	StatusCode int                    `json:"-"`
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("API error [%s]: %s (status: %d)", e.Code, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("API error: %s (status: %d)", e.Message, e.StatusCode)
}

// IsUnauthorized returns true if the error is a 401 unauthorized error
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401
}

// IsForbidden returns true if the error is a 403 forbidden error
func (e *APIError) IsForbidden() bool {
	return e.StatusCode == 403
}

// IsNotFound returns true if the error is a 404 not found error
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsValidationError returns true if the error is a 400 validation error
func (e *APIError) IsValidationError() bool {
	return e.StatusCode == 400
}

// IsServerError returns true if the error is a 5xx server error
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}

// IsInsufficientTier returns true for a tier denial
func (e *APIError) IsInsufficientTier() bool {
	return e.Code == CodeInsufficientTier
}

// IsScreeningIncomplete returns true for a screening denial
func (e *APIError) IsScreeningIncomplete() bool {
	return e.Code == CodeScreeningIncomplete
}

// RequiredTier returns the tier a denial asked for, if present
func (e *APIError) RequiredTier() string {
	return e.detailString("required_tier")
}

// CurrentTier returns the caller's tier from a denial, if present
func (e *APIError) CurrentTier() string {
	return e.detailString("current_tier")
}

// SubscriptionStatus returns the caller's subscription status from a
// denial, if present
func (e *APIError) SubscriptionStatus() string {
	return e.detailString("subscription_status")
}

func (e *APIError) detailString(key string) string {
	if e.Details == nil {
		return ""
	}
	if v, ok := e.Details[key].(string); ok {
		return v
	}
	return ""
}

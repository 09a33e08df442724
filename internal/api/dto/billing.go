package dto

import "time"

// PlanDTO describes a subscription plan offering
type PlanDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	Interval    string   `json:"interval"`
	Features    []string `json:"features,omitempty"`
	IsPopular   bool     `json:"is_popular"`
	IsCurrent   bool     `json:"is_current"`
}

// BillingInfoDTO is the current user's billing summary
type BillingInfoDTO struct {
	Tier          string     `json:"tier"`
	Status        string     `json:"status"`
	NextBillingAt *time.Time `json:"next_billing_at,omitempty"`
}

// CheckoutRequest asks for a checkout session for a tier upgrade
type CheckoutRequest struct {
	Tier string `json:"tier" validate:"required,oneof=basic premium"`
}

// CheckoutResponse carries the processor's hosted checkout URL
type CheckoutResponse struct {
	URL string `json:"url"`
}

// SubscriptionWebhook is the payment processor's event payload. The
// processor is opaque to this service; only the resulting subscription
// state matters.
type SubscriptionWebhook struct {
	UserID int64  `json:"user_id" validate:"required"`
	Tier   string `json:"tier" validate:"required,oneof=free basic premium"`
	Status string `json:"status" validate:"required,oneof=active inactive cancelled past_due"`
	Event  string `json:"event,omitempty"`
}

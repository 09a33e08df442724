package client

import "time"

// User represents an identity in the system
type User struct {
	ID                 int64    `json:"id"`
	Email              string   `json:"email"`
	DisplayName        string   `json:"display_name,omitempty"`
	IsAdmin            bool     `json:"is_admin"`
	AccountType        string   `json:"account_type"`
	SubscriptionTier   string   `json:"subscription_tier"`
	SubscriptionStatus string   `json:"subscription_status"`
	ScreeningComplete  bool     `json:"screening_complete"`
	HeightCM           *float64 `json:"height_cm,omitempty"`
	WeightKG           *float64 `json:"weight_kg,omitempty"`
	FitnessGoal        string   `json:"fitness_goal,omitempty"`
	DietaryPrefs       string   `json:"dietary_prefs,omitempty"`
}

// AuthResponse is returned from login, register and guest bootstrap
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

// Plan is a generated workout or meal plan
type Plan struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Model     string    `json:"model,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// GeneratePlanRequest is the payload for plan generation
type GeneratePlanRequest struct {
	Goal         string `json:"goal,omitempty"`
	DaysPerWeek  int    `json:"days_per_week,omitempty"`
	Equipment    string `json:"equipment,omitempty"`
	DietaryPrefs string `json:"dietary_prefs,omitempty"`
}

// PlanPage is one page of a plan listing
type PlanPage struct {
	Data       []Plan `json:"data"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalItems int64  `json:"total_items"`
	TotalPages int    `json:"total_pages"`
}

// FeatureRule is one entry in the server's feature policy
type FeatureRule struct {
	RequiredTier      string `json:"required_tier"`
	RequiresScreening bool   `json:"requires_screening"`
	AllowGuest        bool   `json:"allow_guest"`
}

// PolicyDocument is the server's feature access policy
type PolicyDocument struct {
	Tiers    []string               `json:"tiers"`
	Features map[string]FeatureRule `json:"features"`
}

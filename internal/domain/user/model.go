package user

import "time"

// User represents an identity in the system, registered or guest
type User struct {
	ID                 int64      `json:"id"`
	Email              string     `json:"email"`
	DisplayName        string     `json:"display_name,omitempty"`
	PasswordHash       string     `json:"-"` // Not exposed in JSON
	IsAdmin            bool       `json:"is_admin"`
	AccountType        string     `json:"account_type"`
	SubscriptionTier   string     `json:"subscription_tier"`
	SubscriptionStatus string     `json:"subscription_status"`
	ScreeningComplete  bool       `json:"screening_complete"`
	HeightCM           *float64   `json:"height_cm,omitempty"`
	WeightKG           *float64   `json:"weight_kg,omitempty"`
	FitnessGoal        string     `json:"fitness_goal,omitempty"`
	DietaryPrefs       string     `json:"dietary_prefs,omitempty"`
	GuestExpiresAt     *time.Time `json:"guest_expires_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// Account types
const (
	AccountTypeGuest      = "guest"
	AccountTypeRegistered = "registered"
)

// IsGuest reports whether the identity is a time-bounded guest account
func (u *User) IsGuest() bool {
	return u.AccountType == AccountTypeGuest
}

// ScreeningStatus summarises the PAR-Q gate for a user
type ScreeningStatus struct {
	Complete    bool       `json:"complete"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

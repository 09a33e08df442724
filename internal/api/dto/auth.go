package dto

// LoginRequest is the payload for email/password login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the payload for account registration
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	DisplayName string `json:"display_name" validate:"omitempty,max=100"`
}

// AuthResponse is returned from login, register and guest bootstrap
type AuthResponse struct {
	Token string   `json:"token"`
	User  *UserDTO `json:"user"`
}

// UserDTO is the API representation of an identity
type UserDTO struct {
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

// UpdateProfileRequest carries profile attribute changes; absent fields are
// left unchanged
type UpdateProfileRequest struct {
	DisplayName  *string  `json:"display_name" validate:"omitempty,max=100"`
	HeightCM     *float64 `json:"height_cm" validate:"omitempty,gt=0,lt=300"`
	WeightKG     *float64 `json:"weight_kg" validate:"omitempty,gt=0,lt=500"`
	FitnessGoal  *string  `json:"fitness_goal" validate:"omitempty,max=100"`
	DietaryPrefs *string  `json:"dietary_prefs" validate:"omitempty,max=255"`
}

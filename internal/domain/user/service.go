package user

import "context"

// ProfileUpdate carries the mutable profile attributes. Nil fields are left
// unchanged.
type ProfileUpdate struct {
	DisplayName  *string
	HeightCM     *float64
	WeightKG     *float64
	FitnessGoal  *string
	DietaryPrefs *string
}

// Service defines the interface for user business logic
type Service interface {
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id int64) (*User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Register creates a registered account with a hashed password
	Register(ctx context.Context, email, password, displayName string) (*User, error)

	// CreateGuest bootstraps a time-bounded guest identity
	CreateGuest(ctx context.Context) (*User, error)

	// Authenticate verifies credentials and returns the user
	Authenticate(ctx context.Context, email, password string) (*User, error)

	// CompleteScreening marks the PAR-Q questionnaire done
	CompleteScreening(ctx context.Context, userID int64) (*User, error)

	// SetSubscription applies a payment-processor event to the user's tier
	// and status
	SetSubscription(ctx context.Context, userID int64, tier, status string) error

	// UpdateProfile applies profile attribute changes
	UpdateProfile(ctx context.Context, userID int64, upd ProfileUpdate) (*User, error)

	// List retrieves users with pagination (admin console)
	List(ctx context.Context, limit, offset int) ([]*User, int64, error)
}

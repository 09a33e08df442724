package plan

import "context"

// Repository defines the interface for plan data access
type Repository interface {
	// Create stores a generated plan
	Create(ctx context.Context, p *Plan) error

	// GetByID retrieves a plan by ID
	GetByID(ctx context.Context, id int64) (*Plan, error)

	// ListByUser retrieves a user's plans, newest first
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*Plan, int64, error)
}

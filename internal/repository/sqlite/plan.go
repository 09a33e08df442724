package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fitgate/fitgate/internal/domain/plan"
	"github.com/fitgate/fitgate/internal/pkg/errors"
)

// PlanRepository implements plan.Repository
type PlanRepository struct {
	db *sql.DB
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(db *sql.DB) plan.Repository {
	return &PlanRepository{db: db}
}

// Create stores a generated plan
func (r *PlanRepository) Create(ctx context.Context, p *plan.Plan) error {
	p.CreatedAt = time.Now()

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO plans (user_id, kind, title, content, model, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		p.UserID, p.Kind, p.Title, p.Content, nullString(p.Model), p.CreatedAt.Unix(),
	)
	if err != nil {
		return errors.DatabaseError("Failed to create plan", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.DatabaseError("Failed to get plan ID", err)
	}

	p.ID = id
	return nil
}

// GetByID retrieves a plan by ID
func (r *PlanRepository) GetByID(ctx context.Context, id int64) (*plan.Plan, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, kind, title, content, model, created_at FROM plans WHERE id = ?`, id)

	p, err := scanPlan(row)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListByUser retrieves a user's plans, newest first
func (r *PlanRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*plan.Plan, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM plans WHERE user_id = ?`, userID).Scan(&total); err != nil {
		return nil, 0, errors.DatabaseError("Failed to count plans", err)
	}

	// limit <= 0 means no paging (export path)
	if limit <= 0 {
		limit = int(total)
		offset = 0
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, kind, title, content, model, created_at
		 FROM plans WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list plans", err)
	}
	defer rows.Close()

	var plans []*plan.Plan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, 0, err
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, errors.DatabaseError("Failed to read plans", err)
	}

	return plans, total, nil
}

func scanPlan(s scanner) (*plan.Plan, error) {
	var p plan.Plan
	var model sql.NullString
	var createdAt int64

	err := s.Scan(&p.ID, &p.UserID, &p.Kind, &p.Title, &p.Content, &model, &createdAt)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Plan")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get plan", err)
	}

	p.Model = model.String
	p.CreatedAt = time.Unix(createdAt, 0)
	return &p, nil
}

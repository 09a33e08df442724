package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fitgate/fitgate/internal/access"
	"github.com/fitgate/fitgate/internal/domain/user"
	"github.com/fitgate/fitgate/internal/pkg/errors"
)

// UserRepository implements user.Repository
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) user.Repository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, display_name, password_hash, is_admin, account_type,
	subscription_tier, subscription_status, screening_complete,
	height_cm, weight_kg, fitness_goal, dietary_prefs, guest_expires_at,
	created_at, updated_at`

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	u.Email = strings.ToLower(u.Email)

	query := `
		INSERT INTO users (email, display_name, password_hash, is_admin, account_type,
			subscription_tier, subscription_status, screening_complete,
			height_cm, weight_kg, fitness_goal, dietary_prefs, guest_expires_at,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		u.Email, nullString(u.DisplayName), nullString(u.PasswordHash), u.IsAdmin, u.AccountType,
		u.SubscriptionTier, u.SubscriptionStatus, u.ScreeningComplete,
		u.HeightCM, u.WeightKG, nullString(u.FitnessGoal), nullString(u.DietaryPrefs), nullTime(u.GuestExpiresAt),
		now.Unix(), now.Unix(),
	)
	if err != nil {
		return errors.DatabaseError("Failed to create user", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.DatabaseError("Failed to get user ID", err)
	}

	u.ID = id
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// GetByEmail retrieves a user by email, case-insensitively
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, strings.ToLower(email)))
}

// Update updates a user
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	u.UpdatedAt = time.Now()
	u.Email = strings.ToLower(u.Email)

	query := `
		UPDATE users
		SET email = ?, display_name = ?, password_hash = ?, is_admin = ?, account_type = ?,
			subscription_tier = ?, subscription_status = ?, screening_complete = ?,
			height_cm = ?, weight_kg = ?, fitness_goal = ?, dietary_prefs = ?, guest_expires_at = ?,
			updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		u.Email, nullString(u.DisplayName), nullString(u.PasswordHash), u.IsAdmin, u.AccountType,
		u.SubscriptionTier, u.SubscriptionStatus, u.ScreeningComplete,
		u.HeightCM, u.WeightKG, nullString(u.FitnessGoal), nullString(u.DietaryPrefs), nullTime(u.GuestExpiresAt),
		u.UpdatedAt.Unix(), u.ID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update user", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to check update result", err)
	}
	if rows == 0 {
		return errors.NotFound("User")
	}
	return nil
}

// Delete deletes a user
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return errors.DatabaseError("Failed to delete user", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to check delete result", err)
	}
	if rows == 0 {
		return errors.NotFound("User")
	}
	return nil
}

// List retrieves users with pagination
func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]*user.User, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, errors.DatabaseError("Failed to count users", err)
	}

	query := `SELECT ` + userColumns + ` FROM users ORDER BY id LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list users", err)
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, errors.DatabaseError("Failed to read users", err)
	}

	return users, total, nil
}

// ExpireGuests removes guest accounts past their expiry
func (r *UserRepository) ExpireGuests(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM users WHERE account_type = ? AND guest_expires_at IS NOT NULL AND guest_expires_at < ?`,
		user.AccountTypeGuest, time.Now().Unix(),
	)
	if err != nil {
		return 0, errors.DatabaseError("Failed to expire guests", err)
	}
	return result.RowsAffected()
}

// LapsePastDue marks past_due subscriptions inactive
func (r *UserRepository) LapsePastDue(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET subscription_status = ?, updated_at = ? WHERE subscription_status = ?`,
		access.StatusInactive, time.Now().Unix(), access.StatusPastDue,
	)
	if err != nil {
		return 0, errors.DatabaseError("Failed to lapse past-due subscriptions", err)
	}
	return result.RowsAffected()
}

// scanner abstracts *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func (r *UserRepository) scanOne(row *sql.Row) (*user.User, error) {
	u, err := scanUser(row)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func scanUser(s scanner) (*user.User, error) {
	var u user.User
	var displayName, passwordHash, fitnessGoal, dietaryPrefs sql.NullString
	var heightCM, weightKG sql.NullFloat64
	var guestExpiresAt sql.NullInt64
	var createdAt, updatedAt int64

	err := s.Scan(
		&u.ID, &u.Email, &displayName, &passwordHash, &u.IsAdmin, &u.AccountType,
		&u.SubscriptionTier, &u.SubscriptionStatus, &u.ScreeningComplete,
		&heightCM, &weightKG, &fitnessGoal, &dietaryPrefs, &guestExpiresAt,
		&createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("User")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get user", err)
	}

	u.DisplayName = displayName.String
	u.PasswordHash = passwordHash.String
	u.FitnessGoal = fitnessGoal.String
	u.DietaryPrefs = dietaryPrefs.String
	if heightCM.Valid {
		u.HeightCM = &heightCM.Float64
	}
	if weightKG.Valid {
		u.WeightKG = &weightKG.Float64
	}
	if guestExpiresAt.Valid {
		t := time.Unix(guestExpiresAt.Int64, 0)
		u.GuestExpiresAt = &t
	}
	u.CreatedAt = time.Unix(createdAt, 0)
	u.UpdatedAt = time.Unix(updatedAt, 0)

	return &u, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.Unix(), Valid: true}
}

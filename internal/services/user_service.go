package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fitgate/fitgate/internal/access"
	"github.com/fitgate/fitgate/internal/audit"
	"github.com/fitgate/fitgate/internal/domain/user"
	"github.com/fitgate/fitgate/internal/pkg/errors"
	"github.com/fitgate/fitgate/internal/pkg/logger"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserService implements user.Service
type UserService struct {
	repo          user.Repository
	logger        *logger.Logger
	trail         *audit.Trail
	bcryptCost    int
	guestLifetime time.Duration
}

// NewUserService creates a new user service
func NewUserService(repo user.Repository, log *logger.Logger, trail *audit.Trail, bcryptCost int, guestLifetime time.Duration) user.Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{
		repo:          repo,
		logger:        log,
		trail:         trail,
		bcryptCost:    bcryptCost,
		guestLifetime: guestLifetime,
	}
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id int64) (*user.User, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByEmail retrieves a user by email
func (s *UserService) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.repo.GetByEmail(ctx, email)
}

// Register creates a registered account with a hashed password
func (s *UserService) Register(ctx context.Context, email, password, displayName string) (*user.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	u := &user.User{
		Email:              strings.ToLower(email),
		DisplayName:        displayName,
		PasswordHash:       string(hash),
		AccountType:        user.AccountTypeRegistered,
		SubscriptionTier:   access.TierFree,
		SubscriptionStatus: access.StatusActive,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create user")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": u.ID,
		"email":   u.Email,
	}).Info("User registered")
	s.trail.Record(u.Email, "user.register", "")

	return u, nil
}

// CreateGuest bootstraps a time-bounded guest identity. Guests get a
// synthetic email so the unique index holds.
func (s *UserService) CreateGuest(ctx context.Context) (*user.User, error) {
	expires := time.Now().Add(s.guestLifetime)
	u := &user.User{
		Email:              fmt.Sprintf("guest-%s@guest.fitgate.local", uuid.New().String()),
		DisplayName:        "Guest",
		AccountType:        user.AccountTypeGuest,
		SubscriptionTier:   access.TierFree,
		SubscriptionStatus: access.StatusActive,
		GuestExpiresAt:     &expires,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create guest")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": u.ID,
	}).Info("Guest account created")

	return u, nil
}

// Authenticate verifies credentials and returns the user
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*user.User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		// Same error for unknown email and bad password
		return nil, errors.Unauthorized("Invalid credentials")
	}

	if u.PasswordHash == "" {
		// Guest accounts have no password and cannot log in directly
		return nil, errors.Unauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, errors.Unauthorized("Invalid credentials")
	}

	return u, nil
}

// CompleteScreening marks the PAR-Q questionnaire done
func (s *UserService) CompleteScreening(ctx context.Context, userID int64) (*user.User, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if u.ScreeningComplete {
		return u, nil
	}

	u.ScreeningComplete = true
	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.ErrorWithErr(err, "Failed to record screening completion")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": u.ID,
	}).Info("Health screening completed")
	s.trail.Record(u.Email, "screening.complete", "")

	return u, nil
}

// SetSubscription applies a payment-processor event to the user's tier and
// status. Unknown tier labels are rejected here rather than stored; the
// access layer would treat them as free anyway.
func (s *UserService) SetSubscription(ctx context.Context, userID int64, tier, status string) error {
	if !access.ValidTier(tier) {
		return errors.BadRequest(fmt.Sprintf("unknown subscription tier %q", tier))
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	u.SubscriptionTier = tier
	u.SubscriptionStatus = status
	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.ErrorWithErr(err, "Failed to update subscription")
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": userID,
		"tier":    tier,
		"status":  status,
	}).Info("Subscription updated")
	s.trail.Record(u.Email, "subscription.update", fmt.Sprintf("tier=%s status=%s", tier, status))

	return nil
}

// UpdateProfile applies profile attribute changes
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, upd user.ProfileUpdate) (*user.User, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if upd.DisplayName != nil {
		u.DisplayName = *upd.DisplayName
	}
	if upd.HeightCM != nil {
		u.HeightCM = upd.HeightCM
	}
	if upd.WeightKG != nil {
		u.WeightKG = upd.WeightKG
	}
	if upd.FitnessGoal != nil {
		u.FitnessGoal = *upd.FitnessGoal
	}
	if upd.DietaryPrefs != nil {
		u.DietaryPrefs = *upd.DietaryPrefs
	}

	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.ErrorWithErr(err, "Failed to update profile")
		return nil, err
	}

	return u, nil
}

// List retrieves users with pagination
func (s *UserService) List(ctx context.Context, limit, offset int) ([]*user.User, int64, error) {
	return s.repo.List(ctx, limit, offset)
}

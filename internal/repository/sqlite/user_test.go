package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/fitgate/fitgate/internal/access"
	"github.com/fitgate/fitgate/internal/domain/user"
	"github.com/fitgate/fitgate/internal/pkg/errors"
	"github.com/fitgate/fitgate/internal/testutil"
)

func newTestUser(email string) *user.User {
	return &user.User{
		Email:              email,
		DisplayName:        "Test User",
		PasswordHash:       "$2a$04$hash",
		AccountType:        user.AccountTypeRegistered,
		SubscriptionTier:   access.TierFree,
		SubscriptionStatus: access.StatusActive,
	}
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := NewUserRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	height := 180.0
	u := newTestUser("Alice@Example.com")
	u.HeightCM = &height
	u.FitnessGoal = "strength"

	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if u.ID == 0 {
		t.Fatal("Create() did not assign an ID")
	}

	got, err := repo.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Email != "alice@example.com" {
		t.Errorf("email = %q, want lowercased", got.Email)
	}
	if got.DisplayName != "Test User" {
		t.Errorf("display name = %q", got.DisplayName)
	}
	if got.HeightCM == nil || *got.HeightCM != 180.0 {
		t.Errorf("height = %v, want 180", got.HeightCM)
	}
	if got.WeightKG != nil {
		t.Errorf("weight = %v, want nil", got.WeightKG)
	}
	if got.FitnessGoal != "strength" {
		t.Errorf("fitness goal = %q", got.FitnessGoal)
	}
}

func TestUserRepository_GetByEmailCaseInsensitive(t *testing.T) {
	repo := NewUserRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	u := newTestUser("bob@example.com")
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByEmail(ctx, "BOB@Example.COM")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("got user %d, want %d", got.ID, u.ID)
	}
}

func TestUserRepository_GetByIDNotFound(t *testing.T) {
	repo := NewUserRepository(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), 999)
	if appErr, ok := err.(*errors.AppError); !ok || appErr.Code != errors.ErrCodeNotFound {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestUserRepository_Update(t *testing.T) {
	repo := NewUserRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	u := newTestUser("carol@example.com")
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	u.SubscriptionTier = access.TierPremium
	u.ScreeningComplete = true
	if err := repo.Update(ctx, u); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := repo.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.SubscriptionTier != access.TierPremium {
		t.Errorf("tier = %q, want premium", got.SubscriptionTier)
	}
	if !got.ScreeningComplete {
		t.Error("screening flag not persisted")
	}
}

func TestUserRepository_UpdateMissingUser(t *testing.T) {
	repo := NewUserRepository(testutil.NewTestDB(t))

	u := newTestUser("nobody@example.com")
	u.ID = 42
	err := repo.Update(context.Background(), u)
	if appErr, ok := err.(*errors.AppError); !ok || appErr.Code != errors.ErrCodeNotFound {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestUserRepository_List(t *testing.T) {
	repo := NewUserRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		if err := repo.Create(ctx, newTestUser(email)); err != nil {
			t.Fatalf("Create(%s) error = %v", email, err)
		}
	}

	users, total, err := repo.List(ctx, 2, 1)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if len(users) != 2 {
		t.Fatalf("page size = %d, want 2", len(users))
	}
	if users[0].Email != "b@example.com" {
		t.Errorf("first user = %q, want b@example.com", users[0].Email)
	}
}

func TestUserRepository_ExpireGuests(t *testing.T) {
	repo := NewUserRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	expired := newTestUser("expired@example.com")
	expired.AccountType = user.AccountTypeGuest
	expired.GuestExpiresAt = &past

	live := newTestUser("live@example.com")
	live.AccountType = user.AccountTypeGuest
	live.GuestExpiresAt = &future

	registered := newTestUser("registered@example.com")

	for _, u := range []*user.User{expired, live, registered} {
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("Create(%s) error = %v", u.Email, err)
		}
	}

	n, err := repo.ExpireGuests(ctx)
	if err != nil {
		t.Fatalf("ExpireGuests() error = %v", err)
	}
	if n != 1 {
		t.Errorf("expired %d guests, want 1", n)
	}

	if _, err := repo.GetByID(ctx, expired.ID); err == nil {
		t.Error("expired guest still present")
	}
	if _, err := repo.GetByID(ctx, live.ID); err != nil {
		t.Errorf("unexpired guest removed: %v", err)
	}
	if _, err := repo.GetByID(ctx, registered.ID); err != nil {
		t.Errorf("registered user removed: %v", err)
	}
}

func TestUserRepository_LapsePastDue(t *testing.T) {
	repo := NewUserRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	pastDue := newTestUser("pastdue@example.com")
	pastDue.SubscriptionTier = access.TierPremium
	pastDue.SubscriptionStatus = access.StatusPastDue

	active := newTestUser("active@example.com")
	active.SubscriptionTier = access.TierPremium

	for _, u := range []*user.User{pastDue, active} {
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("Create(%s) error = %v", u.Email, err)
		}
	}

	n, err := repo.LapsePastDue(ctx)
	if err != nil {
		t.Fatalf("LapsePastDue() error = %v", err)
	}
	if n != 1 {
		t.Errorf("lapsed %d subscriptions, want 1", n)
	}

	got, err := repo.GetByID(ctx, pastDue.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.SubscriptionStatus != access.StatusInactive {
		t.Errorf("status = %q, want inactive", got.SubscriptionStatus)
	}
	if got.SubscriptionTier != access.TierPremium {
		t.Errorf("tier = %q, lapsing must not change the tier", got.SubscriptionTier)
	}

	stillActive, err := repo.GetByID(ctx, active.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if stillActive.SubscriptionStatus != access.StatusActive {
		t.Errorf("active subscription altered: %q", stillActive.SubscriptionStatus)
	}
}

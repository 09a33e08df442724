package sqlite

import (
	"context"
	"fmt"
	"testing"

	"github.com/fitgate/fitgate/internal/domain/plan"
	"github.com/fitgate/fitgate/internal/pkg/errors"
	"github.com/fitgate/fitgate/internal/testutil"
)

func seedPlans(t *testing.T, repo plan.Repository, userID int64, n int) []*plan.Plan {
	t.Helper()
	plans := make([]*plan.Plan, 0, n)
	for i := 1; i <= n; i++ {
		p := &plan.Plan{
			UserID:  userID,
			Kind:    plan.KindWorkout,
			Title:   fmt.Sprintf("Workout plan %d", i),
			Content: "Day A: squats",
		}
		if err := repo.Create(context.Background(), p); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		plans = append(plans, p)
	}
	return plans
}

func TestPlanRepository_CreateAndGet(t *testing.T) {
	repo := NewPlanRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	p := &plan.Plan{
		UserID:  7,
		Kind:    plan.KindMeal,
		Title:   "Meal plan: cutting",
		Content: "Breakfast: oats",
		Model:   "gpt-4o-mini",
	}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if p.ID == 0 {
		t.Fatal("Create() did not assign an ID")
	}

	got, err := repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.UserID != 7 || got.Kind != plan.KindMeal || got.Model != "gpt-4o-mini" {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestPlanRepository_GetByIDNotFound(t *testing.T) {
	repo := NewPlanRepository(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), 999)
	if appErr, ok := err.(*errors.AppError); !ok || appErr.Code != errors.ErrCodeNotFound {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestPlanRepository_ListByUserPaged(t *testing.T) {
	repo := NewPlanRepository(testutil.NewTestDB(t))
	seedPlans(t, repo, 1, 5)
	seedPlans(t, repo, 2, 1)

	plans, total, err := repo.ListByUser(context.Background(), 1, 2, 2)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if total != 5 {
		t.Errorf("total = %d, want 5 (other users' plans must not count)", total)
	}
	if len(plans) != 2 {
		t.Fatalf("page size = %d, want 2", len(plans))
	}
	// newest first: page 2 of size 2 holds plans 3 and 2
	if plans[0].Title != "Workout plan 3" || plans[1].Title != "Workout plan 2" {
		t.Errorf("page = [%q, %q], want plans 3 and 2", plans[0].Title, plans[1].Title)
	}
}

func TestPlanRepository_ListByUserUnbounded(t *testing.T) {
	repo := NewPlanRepository(testutil.NewTestDB(t))
	seedPlans(t, repo, 1, 4)

	plans, total, err := repo.ListByUser(context.Background(), 1, 0, 0)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if total != 4 || len(plans) != 4 {
		t.Errorf("got %d of %d plans, want all 4", len(plans), total)
	}
}

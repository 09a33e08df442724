package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/fitgate/fitgate/internal/domain/plan"
	"github.com/fitgate/fitgate/internal/domain/user"
	"github.com/fitgate/fitgate/internal/pkg/logger"
	"github.com/fitgate/fitgate/internal/testutil"
)

func testPlanUser() *user.User {
	return &user.User{
		ID:                 1,
		Email:              "athlete@example.com",
		AccountType:        user.AccountTypeRegistered,
		SubscriptionTier:   "basic",
		SubscriptionStatus: "active",
		ScreeningComplete:  true,
	}
}

func TestPlanService_GenerateWorkout_WithCompleter(t *testing.T) {
	repo := testutil.NewMockPlanRepository()
	completer := &testutil.MockCompleter{Response: "Day 1: squats"}
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewPlanService(repo, completer, "gpt-4o-mini", log)

	p, err := service.GenerateWorkout(context.Background(), testPlanUser(), plan.Request{Goal: "strength", DaysPerWeek: 4})
	if err != nil {
		t.Fatalf("GenerateWorkout() error = %v", err)
	}

	if completer.Calls != 1 {
		t.Errorf("completer calls = %d, want 1", completer.Calls)
	}
	if p.Content != "Day 1: squats" {
		t.Errorf("content = %q, want model output", p.Content)
	}
	if p.Model != "gpt-4o-mini" {
		t.Errorf("model = %q, want gpt-4o-mini", p.Model)
	}
	if p.Kind != plan.KindWorkout {
		t.Errorf("kind = %q, want workout", p.Kind)
	}
	if p.ID == 0 {
		t.Error("plan must be persisted")
	}
}

func TestPlanService_GenerateWorkout_NoCompleterFallsBack(t *testing.T) {
	repo := testutil.NewMockPlanRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewPlanService(repo, nil, "", log)

	p, err := service.GenerateWorkout(context.Background(), testPlanUser(), plan.Request{Goal: "strength"})
	if err != nil {
		t.Fatalf("GenerateWorkout() error = %v", err)
	}

	if !strings.Contains(p.Content, "Template plan") {
		t.Errorf("content = %q, want templated fallback", p.Content)
	}
	if p.Model != "" {
		t.Errorf("model = %q, want empty for fallback", p.Model)
	}
}

func TestPlanService_GenerateMeal_CompleterErrorFallsBack(t *testing.T) {
	repo := testutil.NewMockPlanRepository()
	completer := &testutil.MockCompleter{Err: fmt.Errorf("rate limited")}
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewPlanService(repo, completer, "gpt-4o-mini", log)

	p, err := service.GenerateMeal(context.Background(), testPlanUser(), plan.Request{Goal: "cutting"})
	if err != nil {
		t.Fatalf("a model failure must not fail the request, got %v", err)
	}

	if !strings.Contains(p.Content, "Template meal plan") {
		t.Errorf("content = %q, want templated fallback", p.Content)
	}
	if p.Kind != plan.KindMeal {
		t.Errorf("kind = %q, want meal", p.Kind)
	}
}

func TestPlanService_ListByUser(t *testing.T) {
	repo := testutil.NewMockPlanRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewPlanService(repo, nil, "", log)
	ctx := context.Background()

	u := testPlanUser()
	for i := 0; i < 3; i++ {
		if _, err := service.GenerateWorkout(ctx, u, plan.Request{}); err != nil {
			t.Fatalf("seeding plans: %v", err)
		}
	}

	plans, total, err := service.ListByUser(ctx, u.ID, 2, 0)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if len(plans) != 2 {
		t.Errorf("page size = %d, want 2", len(plans))
	}
	if len(plans) == 2 && plans[0].ID < plans[1].ID {
		t.Error("plans must be newest first")
	}
}

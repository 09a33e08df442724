package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/fitgate/fitgate/internal/domain/plan"
	"github.com/fitgate/fitgate/internal/domain/user"
	"github.com/fitgate/fitgate/internal/pkg/logger"
	"github.com/fitgate/fitgate/internal/providers"
)

// PlanService generates and stores workout and meal plans
type PlanService struct {
	repo      plan.Repository
	completer providers.Completer
	model     string
	logger    *logger.Logger
}

// NewPlanService creates a new plan service. completer may be nil, in which
// case generation falls back to a templated plan.
func NewPlanService(repo plan.Repository, completer providers.Completer, model string, log *logger.Logger) *PlanService {
	return &PlanService{
		repo:      repo,
		completer: completer,
		model:     model,
		logger:    log,
	}
}

const workoutSystemPrompt = `You are a certified personal trainer. Produce a structured weekly workout
plan with named days, exercises, sets, reps and rest periods. Account for the
client's goal and available equipment. Keep it safe for a general population
that has passed a PAR-Q screening.`

const mealSystemPrompt = `You are a registered dietitian. Produce a structured weekly meal plan with
daily meals and approximate calories, respecting the client's dietary
preferences and fitness goal.`

// GenerateWorkout produces a personalized workout plan for the user
func (s *PlanService) GenerateWorkout(ctx context.Context, u *user.User, req plan.Request) (*plan.Plan, error) {
	prompt := workoutPrompt(u, req)
	content, model := s.complete(ctx, workoutSystemPrompt, prompt, fallbackWorkout(req))

	p := &plan.Plan{
		UserID:  u.ID,
		Kind:    plan.KindWorkout,
		Title:   fmt.Sprintf("Workout plan: %s", goalOrDefault(req.Goal)),
		Content: content,
		Model:   model,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": u.ID,
		"plan_id": p.ID,
		"kind":    p.Kind,
	}).Info("Plan generated")

	return p, nil
}

// GenerateMeal produces a personalized meal plan for the user
func (s *PlanService) GenerateMeal(ctx context.Context, u *user.User, req plan.Request) (*plan.Plan, error) {
	prompt := mealPrompt(u, req)
	content, model := s.complete(ctx, mealSystemPrompt, prompt, fallbackMeal(req))

	p := &plan.Plan{
		UserID:  u.ID,
		Kind:    plan.KindMeal,
		Title:   fmt.Sprintf("Meal plan: %s", goalOrDefault(req.Goal)),
		Content: content,
		Model:   model,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": u.ID,
		"plan_id": p.ID,
		"kind":    p.Kind,
	}).Info("Plan generated")

	return p, nil
}

// ListByUser retrieves a user's plans, newest first
func (s *PlanService) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*plan.Plan, int64, error) {
	return s.repo.ListByUser(ctx, userID, limit, offset)
}

// complete calls the model, falling back to a template when no completer is
// configured or the call fails. A failed LLM call must not fail the request.
func (s *PlanService) complete(ctx context.Context, system, prompt, fallback string) (content, model string) {
	if s.completer == nil {
		return fallback, ""
	}
	out, err := s.completer.Complete(ctx, system, prompt)
	if err != nil {
		s.logger.ErrorWithErr(err, "Plan generation via model failed, using template")
		return fallback, ""
	}
	return out, s.model
}

func workoutPrompt(u *user.User, req plan.Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Goal: %s.\n", goalOrDefault(req.Goal))
	if req.DaysPerWeek > 0 {
		fmt.Fprintf(&b, "Training days per week: %d.\n", req.DaysPerWeek)
	}
	if req.Equipment != "" {
		fmt.Fprintf(&b, "Available equipment: %s.\n", req.Equipment)
	}
	if u.HeightCM != nil && u.WeightKG != nil {
		fmt.Fprintf(&b, "Client stats: %.0f cm, %.0f kg.\n", *u.HeightCM, *u.WeightKG)
	}
	return b.String()
}

func mealPrompt(u *user.User, req plan.Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Goal: %s.\n", goalOrDefault(req.Goal))
	prefs := req.DietaryPrefs
	if prefs == "" {
		prefs = u.DietaryPrefs
	}
	if prefs != "" {
		fmt.Fprintf(&b, "Dietary preferences: %s.\n", prefs)
	}
	return b.String()
}

func goalOrDefault(goal string) string {
	if goal == "" {
		return "general fitness"
	}
	return goal
}

func fallbackWorkout(req plan.Request) string {
	days := req.DaysPerWeek
	if days <= 0 {
		days = 3
	}
	return fmt.Sprintf(
		"Template plan (%d days/week, goal: %s)\n"+
			"Day A: Squat 3x8, Push-up 3x12, Row 3x10, Plank 3x45s\n"+
			"Day B: Deadlift 3x6, Overhead press 3x8, Lunge 3x10/leg\n"+
			"Day C: 30 min steady cardio, Core circuit x3\n"+
			"Rest at least one day between sessions.",
		days, goalOrDefault(req.Goal))
}

func fallbackMeal(req plan.Request) string {
	return fmt.Sprintf(
		"Template meal plan (goal: %s)\n"+
			"Breakfast: oats with fruit and yogurt\n"+
			"Lunch: grain bowl with lean protein and vegetables\n"+
			"Dinner: roasted protein, potatoes, side salad\n"+
			"Snack: nuts or fruit. Adjust portions to appetite.",
		goalOrDefault(req.Goal))
}

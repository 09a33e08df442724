package dto

import "time"

// GeneratePlanRequest is the payload for workout or meal plan generation
type GeneratePlanRequest struct {
	Goal         string `json:"goal" validate:"omitempty,max=100"`
	DaysPerWeek  int    `json:"days_per_week" validate:"omitempty,gte=1,lte=7"`
	Equipment    string `json:"equipment" validate:"omitempty,max=255"`
	DietaryPrefs string `json:"dietary_prefs" validate:"omitempty,max=255"`
}

// PlanResponse is the API representation of a generated plan
type PlanResponse struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Model     string    `json:"model,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

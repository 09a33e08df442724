package plan

import "time"

// Plan kinds
const (
	KindWorkout = "workout"
	KindMeal    = "meal"
)

// Plan is a generated workout or meal plan belonging to a user
type Plan struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Model     string    `json:"model,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Request captures the inputs a generation call works from
type Request struct {
	Goal         string `json:"goal"`
	DaysPerWeek  int    `json:"days_per_week,omitempty"`
	Equipment    string `json:"equipment,omitempty"`
	DietaryPrefs string `json:"dietary_prefs,omitempty"`
}

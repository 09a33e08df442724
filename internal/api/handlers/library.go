package handlers

import (
	"net/http"
	"strings"

	"github.com/fitgate/fitgate/internal/pkg/utils"
)

// LibraryHandler serves the built-in exercise library. The catalog is
// static; it exists so anonymous and guest visitors have something to
// browse before signing up.
type LibraryHandler struct{}

// NewLibraryHandler creates a new library handler
func NewLibraryHandler() *LibraryHandler {
	return &LibraryHandler{}
}

// LibraryWorkout is one entry in the exercise library
type LibraryWorkout struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Difficulty  string   `json:"difficulty"`
	Equipment   []string `json:"equipment,omitempty"`
	Description string   `json:"description"`
}

var libraryWorkouts = []LibraryWorkout{
	{ID: "full-body-beginner", Name: "Full Body Starter", Category: "strength", Difficulty: "beginner", Description: "Three weekly full-body sessions built around squats, push-ups and rows"},
	{ID: "push-pull-legs", Name: "Push Pull Legs", Category: "strength", Difficulty: "intermediate", Equipment: []string{"barbell", "dumbbells"}, Description: "Six-day split alternating pushing, pulling and lower-body work"},
	{ID: "couch-to-5k", Name: "Couch to 5K", Category: "cardio", Difficulty: "beginner", Description: "Nine-week walk-run progression ending with a continuous 5K"},
	{ID: "hiit-20", Name: "20-Minute HIIT", Category: "conditioning", Difficulty: "intermediate", Description: "Four rounds of 40/20 intervals, no equipment needed"},
	{ID: "mobility-daily", Name: "Daily Mobility", Category: "mobility", Difficulty: "beginner", Description: "Ten-minute hip, shoulder and spine routine for rest days"},
	{ID: "kettlebell-complex", Name: "Kettlebell Complex", Category: "strength", Difficulty: "advanced", Equipment: []string{"kettlebell"}, Description: "Swing, clean, press and squat chained into unbroken complexes"},
}

// ListWorkouts returns the exercise library, optionally filtered by category
// @Summary Browse workout library
// @Description List the built-in workout catalog. Available without an account.
// @Tags Library
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {array} handlers.LibraryWorkout "Workouts"
// @Router /library/workouts [get]
func (h *LibraryHandler) ListWorkouts(w http.ResponseWriter, r *http.Request) {
	category := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("category")))
	if category == "" {
		utils.WriteSuccess(w, http.StatusOK, libraryWorkouts)
		return
	}

	filtered := make([]LibraryWorkout, 0, len(libraryWorkouts))
	for _, wk := range libraryWorkouts {
		if wk.Category == category {
			filtered = append(filtered, wk)
		}
	}
	utils.WriteSuccess(w, http.StatusOK, filtered)
}

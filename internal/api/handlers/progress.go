package handlers

import (
	"net/http"

	"github.com/fitgate/fitgate/internal/api/middleware"
	"github.com/fitgate/fitgate/internal/pkg/errors"
	"github.com/fitgate/fitgate/internal/pkg/logger"
	"github.com/fitgate/fitgate/internal/pkg/utils"
	"github.com/fitgate/fitgate/internal/services"
)

// ProgressHandler serves the user's progress summary
type ProgressHandler struct {
	planService *services.PlanService
	logger      *logger.Logger
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(planService *services.PlanService, log *logger.Logger) *ProgressHandler {
	return &ProgressHandler{
		planService: planService,
		logger:      log,
	}
}

// ProgressSummary is the tracked state for a user
type ProgressSummary struct {
	PlansGenerated    int64    `json:"plans_generated"`
	ScreeningComplete bool     `json:"screening_complete"`
	WeightKG          *float64 `json:"weight_kg,omitempty"`
	HeightCM          *float64 `json:"height_cm,omitempty"`
	FitnessGoal       string   `json:"fitness_goal,omitempty"`
}

// Summary returns the authenticated user's progress summary
// @Summary Progress summary
// @Description Get the user's tracked progress state
// @Tags Progress
// @Produce json
// @Success 200 {object} handlers.ProgressSummary "Progress"
// @Failure 401 {object} utils.ErrorResponse "Unauthenticated"
// @Security BearerAuth
// @Router /progress [get]
func (h *ProgressHandler) Summary(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.GetIdentity(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("Authentication required"))
		return
	}

	_, total, err := h.planService.ListByUser(r.Context(), u.ID, 1, 0)
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to load progress")
		utils.WriteError(w, errors.Internal("Failed to load progress", err))
		return
	}

	summary := ProgressSummary{
		PlansGenerated:    total,
		ScreeningComplete: u.ScreeningComplete,
		WeightKG:          u.WeightKG,
		HeightCM:          u.HeightCM,
		FitnessGoal:       u.FitnessGoal,
	}

	utils.WriteSuccess(w, http.StatusOK, summary)
}

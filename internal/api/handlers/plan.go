package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/fitgate/fitgate/internal/api/dto"
	"github.com/fitgate/fitgate/internal/api/middleware"
	"github.com/fitgate/fitgate/internal/domain/plan"
	"github.com/fitgate/fitgate/internal/pkg/errors"
	"github.com/fitgate/fitgate/internal/pkg/logger"
	"github.com/fitgate/fitgate/internal/pkg/utils"
	"github.com/fitgate/fitgate/internal/pkg/validator"
	"github.com/fitgate/fitgate/internal/services"
)

// PlanHandler handles workout and meal plan generation
type PlanHandler struct {
	planService *services.PlanService
	logger      *logger.Logger
	validator   *validator.Validator
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(planService *services.PlanService, log *logger.Logger, val *validator.Validator) *PlanHandler {
	return &PlanHandler{
		planService: planService,
		logger:      log,
		validator:   val,
	}
}

// GenerateWorkout creates a personalized workout plan
// @Summary Generate workout plan
// @Description Generate a workout plan tailored to the user's goal and equipment
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body dto.GeneratePlanRequest true "Plan preferences"
// @Success 201 {object} dto.PlanResponse "Generated plan"
// @Failure 400 {object} utils.ErrorResponse "Invalid request"
// @Failure 401 {object} utils.ErrorResponse "Unauthenticated"
// @Failure 403 {object} utils.ErrorResponse "Tier or screening requirement not met"
// @Security BearerAuth
// @Router /plans/workout/generate [post]
func (h *PlanHandler) GenerateWorkout(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, plan.KindWorkout)
}

// GenerateMeal creates a personalized meal plan
// @Summary Generate meal plan
// @Description Generate a meal plan tailored to the user's goal and dietary preferences
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body dto.GeneratePlanRequest true "Plan preferences"
// @Success 201 {object} dto.PlanResponse "Generated plan"
// @Failure 400 {object} utils.ErrorResponse "Invalid request"
// @Failure 401 {object} utils.ErrorResponse "Unauthenticated"
// @Failure 403 {object} utils.ErrorResponse "Tier requirement not met"
// @Security BearerAuth
// @Router /plans/meal/generate [post]
func (h *PlanHandler) GenerateMeal(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, plan.KindMeal)
}

func (h *PlanHandler) generate(w http.ResponseWriter, r *http.Request, kind string) {
	u, ok := middleware.GetIdentity(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("Authentication required"))
		return
	}

	var req dto.GeneratePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	preq := plan.Request{
		Goal:         req.Goal,
		DaysPerWeek:  req.DaysPerWeek,
		Equipment:    req.Equipment,
		DietaryPrefs: req.DietaryPrefs,
	}

	var (
		p   *plan.Plan
		err error
	)
	if kind == plan.KindMeal {
		p, err = h.planService.GenerateMeal(r.Context(), u, preq)
	} else {
		p, err = h.planService.GenerateWorkout(r.Context(), u, preq)
	}
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to generate plan")
		if appErr, ok := err.(*errors.AppError); ok {
			utils.WriteError(w, appErr)
			return
		}
		utils.WriteError(w, errors.Internal("Failed to generate plan", err))
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, planToDTO(p))
}

// List returns the user's generated plans
// @Summary List plans
// @Description List the authenticated user's generated plans, newest first
// @Tags Plans
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(10)
// @Success 200 {object} utils.PaginatedResponse "Plans"
// @Failure 401 {object} utils.ErrorResponse "Unauthenticated"
// @Security BearerAuth
// @Router /plans [get]
func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.GetIdentity(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("Authentication required"))
		return
	}

	params := utils.ParsePaginationParams(r)
	plans, total, err := h.planService.ListByUser(r.Context(), u.ID, params.PageSize, params.Offset)
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to list plans")
		utils.WriteError(w, errors.Internal("Failed to list plans", err))
		return
	}

	out := make([]*dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, planToDTO(p))
	}
	utils.WriteSuccess(w, http.StatusOK, utils.NewPaginatedResponse(out, params.Page, params.PageSize, total))
}

// Export downloads all of the user's plans as a JSON document
// @Summary Export plans
// @Description Download all generated plans as a JSON attachment
// @Tags Plans
// @Produce json
// @Success 200 {array} dto.PlanResponse "Plans"
// @Failure 401 {object} utils.ErrorResponse "Unauthenticated"
// @Failure 403 {object} utils.ErrorResponse "Tier requirement not met"
// @Security BearerAuth
// @Router /plans/export [get]
func (h *PlanHandler) Export(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.GetIdentity(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("Authentication required"))
		return
	}

	plans, _, err := h.planService.ListByUser(r.Context(), u.ID, 0, 0)
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to export plans")
		utils.WriteError(w, errors.Internal("Failed to export plans", err))
		return
	}

	out := make([]*dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, planToDTO(p))
	}

	w.Header().Set("Content-Disposition", `attachment; filename="fitgate-plans.json"`)
	utils.WriteJSON(w, http.StatusOK, out)
}

func planToDTO(p *plan.Plan) *dto.PlanResponse {
	return &dto.PlanResponse{
		ID:        p.ID,
		Kind:      p.Kind,
		Title:     p.Title,
		Content:   p.Content,
		Model:     p.Model,
		CreatedAt: p.CreatedAt,
	}
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/fitgate/fitgate/internal/api/middleware"
	"github.com/fitgate/fitgate/internal/pkg/errors"
	"github.com/fitgate/fitgate/internal/pkg/logger"
	"github.com/fitgate/fitgate/internal/pkg/utils"
	"github.com/fitgate/fitgate/internal/pkg/validator"
	"github.com/fitgate/fitgate/internal/services"
)

// CoachHandler handles AI coach conversations
type CoachHandler struct {
	coachService *services.CoachService
	logger       *logger.Logger
	validator    *validator.Validator
}

// NewCoachHandler creates a new coach handler
func NewCoachHandler(coachService *services.CoachService, log *logger.Logger, val *validator.Validator) *CoachHandler {
	return &CoachHandler{
		coachService: coachService,
		logger:       log,
		validator:    val,
	}
}

// CoachRequest is one user message to the coach
type CoachRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

// CoachResponse is the coach's reply
type CoachResponse struct {
	Reply string `json:"reply"`
	Model string `json:"model,omitempty"`
}

// Chat sends a message to the AI coach
// @Summary Chat with the AI coach
// @Description Send a message to the AI coach and get a contextual reply
// @Tags Coach
// @Accept json
// @Produce json
// @Param request body handlers.CoachRequest true "User message"
// @Success 200 {object} handlers.CoachResponse "Coach reply"
// @Failure 400 {object} utils.ErrorResponse "Invalid request"
// @Failure 401 {object} utils.ErrorResponse "Unauthenticated"
// @Failure 403 {object} utils.ErrorResponse "Tier or screening requirement not met"
// @Security BearerAuth
// @Router /coach/chat [post]
func (h *CoachHandler) Chat(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.GetIdentity(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("Authentication required"))
		return
	}

	var req CoachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	reply, model, err := h.coachService.Reply(r.Context(), u, req.Message)
	if err != nil {
		h.logger.ErrorWithErr(err, "Coach reply failed")
		utils.WriteError(w, errors.Internal("Failed to get a coach reply", err))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, CoachResponse{Reply: reply, Model: model})
}

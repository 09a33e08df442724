package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/fitgate/fitgate/internal/api/dto"
	"github.com/fitgate/fitgate/internal/api/middleware"
	"github.com/fitgate/fitgate/internal/domain/user"
	"github.com/fitgate/fitgate/internal/pkg/errors"
	"github.com/fitgate/fitgate/internal/pkg/logger"
	"github.com/fitgate/fitgate/internal/pkg/utils"
	"github.com/fitgate/fitgate/internal/pkg/validator"
)

// ScreeningHandler handles the pre-exercise readiness questionnaire
type ScreeningHandler struct {
	userService user.Service
	logger      *logger.Logger
	validator   *validator.Validator
}

// NewScreeningHandler creates a new screening handler
func NewScreeningHandler(userService user.Service, log *logger.Logger, val *validator.Validator) *ScreeningHandler {
	return &ScreeningHandler{
		userService: userService,
		logger:      log,
		validator:   val,
	}
}

// Status returns the current user's screening state
// @Summary Screening status
// @Description Get whether the authenticated user has completed the readiness questionnaire
// @Tags Screening
// @Produce json
// @Success 200 {object} dto.ScreeningResponse "Screening state"
// @Failure 401 {object} utils.ErrorResponse "Unauthenticated"
// @Security BearerAuth
// @Router /screening [get]
func (h *ScreeningHandler) Status(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.GetIdentity(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("Authentication required"))
		return
	}

	resp := dto.ScreeningResponse{Complete: u.ScreeningComplete}
	if !u.ScreeningComplete {
		resp.Message = "Complete the readiness questionnaire to unlock training features"
	}
	utils.WriteSuccess(w, http.StatusOK, resp)
}

// Submit records the questionnaire answers and marks screening complete
// @Summary Submit screening
// @Description Submit the readiness questionnaire for the authenticated user
// @Tags Screening
// @Accept json
// @Produce json
// @Param request body dto.ScreeningRequest true "Questionnaire answers"
// @Success 200 {object} dto.ScreeningResponse "Screening state"
// @Failure 400 {object} utils.ErrorResponse "Invalid request"
// @Failure 401 {object} utils.ErrorResponse "Unauthenticated"
// @Security BearerAuth
// @Router /screening [post]
func (h *ScreeningHandler) Submit(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.GetIdentity(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("Authentication required"))
		return
	}

	var req dto.ScreeningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	updated, err := h.userService.CompleteScreening(r.Context(), u.ID)
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to record screening")
		if appErr, ok := err.(*errors.AppError); ok {
			utils.WriteError(w, appErr)
			return
		}
		utils.WriteError(w, errors.Internal("Failed to record screening", err))
		return
	}

	resp := dto.ScreeningResponse{
		Complete:         updated.ScreeningComplete,
		PhysicianAdvised: req.AnyYes(),
	}
	if resp.PhysicianAdvised {
		resp.Message = "One or more answers indicate you should consult a physician before increasing activity"
	}
	utils.WriteSuccess(w, http.StatusOK, resp)
}

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

// ProfileHandler handles profile attribute updates
type ProfileHandler struct {
	userService user.Service
	logger      *logger.Logger
	validator   *validator.Validator
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(userService user.Service, log *logger.Logger, val *validator.Validator) *ProfileHandler {
	return &ProfileHandler{
		userService: userService,
		logger:      log,
		validator:   val,
	}
}

// Update applies profile changes for the current user
// @Summary Update profile
// @Description Update the authenticated user's profile attributes
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile changes"
// @Success 200 {object} dto.UserDTO "Updated user"
// @Failure 400 {object} utils.ErrorResponse "Invalid request"
// @Failure 401 {object} utils.ErrorResponse "Unauthenticated"
// @Security BearerAuth
// @Router /profile [put]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.GetIdentity(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("Authentication required"))
		return
	}

	var req dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	updated, err := h.userService.UpdateProfile(r.Context(), u.ID, user.ProfileUpdate{
		DisplayName:  req.DisplayName,
		HeightCM:     req.HeightCM,
		WeightKG:     req.WeightKG,
		FitnessGoal:  req.FitnessGoal,
		DietaryPrefs: req.DietaryPrefs,
	})
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to update profile")
		if appErr, ok := err.(*errors.AppError); ok {
			utils.WriteError(w, appErr)
			return
		}
		utils.WriteError(w, errors.Internal("Failed to update profile", err))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, UserToDTO(updated))
}

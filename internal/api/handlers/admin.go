package handlers

import (
	"net/http"
	"strconv"

	"github.com/fitgate/fitgate/internal/api/dto"
	"github.com/fitgate/fitgate/internal/audit"
	"github.com/fitgate/fitgate/internal/domain/user"
	"github.com/fitgate/fitgate/internal/pkg/errors"
	"github.com/fitgate/fitgate/internal/pkg/logger"
	"github.com/fitgate/fitgate/internal/pkg/utils"
)

// AdminHandler handles the admin console endpoints
type AdminHandler struct {
	userService user.Service
	trail       *audit.Trail
	logger      *logger.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(userService user.Service, trail *audit.Trail, log *logger.Logger) *AdminHandler {
	return &AdminHandler{
		userService: userService,
		trail:       trail,
		logger:      log,
	}
}

// ListUsers returns a page of user accounts
// @Summary List users
// @Description List user accounts with pagination (admin only)
// @Tags Admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.PaginatedResponse "Users"
// @Failure 401 {object} utils.ErrorResponse "Unauthenticated"
// @Failure 403 {object} utils.ErrorResponse "Not an admin"
// @Security BearerAuth
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	params := utils.ParsePaginationParams(r)
	users, total, err := h.userService.List(r.Context(), params.PageSize, params.Offset)
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to list users")
		utils.WriteError(w, errors.Internal("Failed to list users", err))
		return
	}

	out := make([]*dto.UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, UserToDTO(u))
	}
	utils.WriteSuccess(w, http.StatusOK, utils.NewPaginatedResponse(out, params.Page, params.PageSize, total))
}

// AuditTrail returns the most recent recorded actions
// @Summary Audit trail
// @Description Get the most recent audit entries, newest first (admin only)
// @Tags Admin
// @Produce json
// @Param limit query int false "Maximum entries" default(100)
// @Success 200 {array} audit.Entry "Audit entries"
// @Failure 401 {object} utils.ErrorResponse "Unauthenticated"
// @Failure 403 {object} utils.ErrorResponse "Not an admin"
// @Security BearerAuth
// @Router /admin/audit [get]
func (h *AdminHandler) AuditTrail(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	utils.WriteSuccess(w, http.StatusOK, h.trail.Recent(limit))
}

package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/fitgate/fitgate/internal/api/dto"
	"github.com/fitgate/fitgate/internal/api/middleware"
	"github.com/fitgate/fitgate/internal/auth"
	"github.com/fitgate/fitgate/internal/config"
	"github.com/fitgate/fitgate/internal/domain/user"
	"github.com/fitgate/fitgate/internal/pkg/errors"
	"github.com/fitgate/fitgate/internal/pkg/logger"
	"github.com/fitgate/fitgate/internal/pkg/utils"
	"github.com/fitgate/fitgate/internal/pkg/validator"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	userService user.Service
	config      *config.Config
	logger      *logger.Logger
	validator   *validator.Validator
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	userService user.Service,
	cfg *config.Config,
	log *logger.Logger,
	val *validator.Validator,
) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		config:      cfg,
		logger:      log,
		validator:   val,
	}
}

// Login handles user login
// @Summary User login
// @Description Authenticate user with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse "Successfully authenticated"
// @Failure 400 {object} utils.ErrorResponse "Invalid request"
// @Failure 401 {object} utils.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	authenticated, err := h.userService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.WithFields(map[string]interface{}{
			"email": req.Email,
		}).Warn("Authentication failed")
		if appErr, ok := err.(*errors.AppError); ok {
			utils.WriteError(w, appErr)
		} else {
			utils.WriteError(w, errors.Unauthorized("Invalid credentials"))
		}
		return
	}

	h.issueAndRespond(w, r, authenticated, http.StatusOK)
}

// Register handles user registration
// @Summary User registration
// @Description Register a new user account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.AuthResponse "User successfully registered"
// @Failure 400 {object} utils.ErrorResponse "Invalid request or validation error"
// @Failure 409 {object} utils.ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	if existing, err := h.userService.GetByEmail(r.Context(), req.Email); err == nil && existing != nil {
		h.logger.WithFields(map[string]interface{}{
			"email": req.Email,
		}).Warn("Registration attempt with existing email")
		utils.WriteError(w, errors.Conflict("Email already registered"))
		return
	}

	newUser, err := h.userService.Register(r.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to create user")
		if strings.Contains(err.Error(), "UNIQUE constraint failed") ||
			strings.Contains(err.Error(), "duplicate key") {
			utils.WriteError(w, errors.Conflict("Email already registered"))
			return
		}
		utils.WriteError(w, errors.Internal("Failed to create user", err))
		return
	}

	h.issueAndRespond(w, r, newUser, http.StatusCreated)
}

// Guest bootstraps an anonymous guest identity
// @Summary Create guest session
// @Description Create a time-bounded guest account with limited feature access
// @Tags Auth
// @Produce json
// @Success 201 {object} dto.AuthResponse "Guest session created"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /auth/guest [post]
func (h *AuthHandler) Guest(w http.ResponseWriter, r *http.Request) {
	guest, err := h.userService.CreateGuest(r.Context())
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to create guest")
		utils.WriteError(w, errors.Internal("Failed to create guest session", err))
		return
	}

	h.issueAndRespond(w, r, guest, http.StatusCreated)
}

// Me returns the current user's record
// @Summary Current user
// @Description Get the authenticated user's record
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.UserDTO "Current user"
// @Failure 401 {object} utils.ErrorResponse "Unauthenticated"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.GetIdentity(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("Authentication required"))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, UserToDTO(u))
}

// issueAndRespond mints a token for the user, sets the browser cookie and
// writes the auth response
func (h *AuthHandler) issueAndRespond(w http.ResponseWriter, r *http.Request, u *user.User, status int) {
	token, err := auth.Mint(u.ID, u.Email, u.AccountType, u.IsAdmin, h.config.Auth.JWTSecret, h.config.Auth.TokenExpiry)
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to generate token")
		utils.WriteError(w, errors.Internal("Failed to generate token", err))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "accessToken",
		Value:    token,
		HttpOnly: true,
		Secure:   h.config.Server.Environment == "production",
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   int(h.config.Auth.TokenExpiry.Seconds()),
	})

	h.logger.WithFields(map[string]interface{}{
		"user_id":      u.ID,
		"account_type": u.AccountType,
	}).Info("Token issued")

	utils.WriteSuccess(w, status, dto.AuthResponse{
		Token: token,
		User:  UserToDTO(u),
	})
}

// UserToDTO maps a domain user to its API representation
func UserToDTO(u *user.User) *dto.UserDTO {
	return &dto.UserDTO{
		ID:                 u.ID,
		Email:              u.Email,
		DisplayName:        u.DisplayName,
		IsAdmin:            u.IsAdmin,
		AccountType:        u.AccountType,
		SubscriptionTier:   u.SubscriptionTier,
		SubscriptionStatus: u.SubscriptionStatus,
		ScreeningComplete:  u.ScreeningComplete,
		HeightCM:           u.HeightCM,
		WeightKG:           u.WeightKG,
		FitnessGoal:        u.FitnessGoal,
		DietaryPrefs:       u.DietaryPrefs,
	}
}

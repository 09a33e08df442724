package handlers

import (
	"crypto/hmac"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fitgate/fitgate/internal/access"
	"github.com/fitgate/fitgate/internal/api/dto"
	"github.com/fitgate/fitgate/internal/api/middleware"
	"github.com/fitgate/fitgate/internal/config"
	"github.com/fitgate/fitgate/internal/domain/user"
	"github.com/fitgate/fitgate/internal/pkg/errors"
	"github.com/fitgate/fitgate/internal/pkg/logger"
	"github.com/fitgate/fitgate/internal/pkg/utils"
	"github.com/fitgate/fitgate/internal/pkg/validator"
)

// BillingHandler handles subscription plans, checkout and processor webhooks
type BillingHandler struct {
	userService user.Service
	config      *config.Config
	logger      *logger.Logger
	validator   *validator.Validator
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(userService user.Service, cfg *config.Config, log *logger.Logger, val *validator.Validator) *BillingHandler {
	return &BillingHandler{
		userService: userService,
		config:      cfg,
		logger:      log,
		validator:   val,
	}
}

// ListPlans returns the available subscription plans
// @Summary List subscription plans
// @Description Get the available subscription tiers and their pricing
// @Tags Billing
// @Produce json
// @Success 200 {array} dto.PlanDTO "Plans"
// @Security BearerAuth
// @Router /billing/plans [get]
func (h *BillingHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	currentTier := access.TierFree
	if u, ok := middleware.GetIdentity(r); ok {
		currentTier = u.SubscriptionTier
	}

	plans := []dto.PlanDTO{
		{
			ID:          access.TierFree,
			Name:        "Free",
			Description: "Browse the exercise library and track your progress",
			Price:       0,
			Currency:    "USD",
			Interval:    "month",
			Features:    []string{"Exercise library", "Progress tracking"},
			IsCurrent:   currentTier == access.TierFree,
		},
		{
			ID:          access.TierBasic,
			Name:        "Basic",
			Description: "Personalized workout and meal plans",
			Price:       9.99,
			Currency:    "USD",
			Interval:    "month",
			Features:    []string{"Everything in Free", "Workout plan generation", "Meal plan generation", "Data export"},
			IsPopular:   true,
			IsCurrent:   currentTier == access.TierBasic,
		},
		{
			ID:          access.TierPremium,
			Name:        "Premium",
			Description: "Everything in Basic plus the AI coach",
			Price:       19.99,
			Currency:    "USD",
			Interval:    "month",
			Features:    []string{"Everything in Basic", "AI coach conversations"},
			IsCurrent:   currentTier == access.TierPremium,
		},
	}

	utils.WriteSuccess(w, http.StatusOK, plans)
}

// GetBillingInfo returns the current user's subscription summary
// @Summary Billing info
// @Description Get the authenticated user's subscription tier and status
// @Tags Billing
// @Produce json
// @Success 200 {object} dto.BillingInfoDTO "Billing summary"
// @Failure 401 {object} utils.ErrorResponse "Unauthenticated"
// @Security BearerAuth
// @Router /billing/info [get]
func (h *BillingHandler) GetBillingInfo(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.GetIdentity(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("Authentication required"))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, dto.BillingInfoDTO{
		Tier:   u.SubscriptionTier,
		Status: u.SubscriptionStatus,
	})
}

// CreateCheckoutSession returns a hosted checkout URL for a tier upgrade
// @Summary Create checkout session
// @Description Start a checkout session with the payment processor for the requested tier
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body dto.CheckoutRequest true "Requested tier"
// @Success 200 {object} dto.CheckoutResponse "Checkout URL"
// @Failure 400 {object} utils.ErrorResponse "Invalid request"
// @Failure 401 {object} utils.ErrorResponse "Unauthenticated"
// @Security BearerAuth
// @Router /billing/checkout [post]
func (h *BillingHandler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.GetIdentity(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("Authentication required"))
		return
	}

	var req dto.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	if u.IsGuest() {
		utils.WriteError(w, errors.Forbidden("Create an account before subscribing"))
		return
	}

	if access.TierAtLeast(u.SubscriptionTier, req.Tier) && u.SubscriptionStatus == access.StatusActive {
		utils.WriteError(w, errors.Conflict("Already subscribed at this tier or higher"))
		return
	}

	url := fmt.Sprintf("%s?tier=%s&user=%d", h.config.Billing.CheckoutURL, req.Tier, u.ID)
	h.logger.Info(fmt.Sprintf("Checkout session created for user %d (tier %s)", u.ID, req.Tier))
	utils.WriteSuccess(w, http.StatusOK, dto.CheckoutResponse{URL: url})
}

// Webhook applies a payment processor subscription event
// @Summary Subscription webhook
// @Description Receive a subscription lifecycle event from the payment processor
// @Tags Billing
// @Accept json
// @Produce json
// @Param X-Webhook-Secret header string true "Shared webhook secret"
// @Param request body dto.SubscriptionWebhook true "Subscription event"
// @Success 200 {object} map[string]string "Acknowledged"
// @Failure 400 {object} utils.ErrorResponse "Invalid payload"
// @Failure 401 {object} utils.ErrorResponse "Bad webhook secret"
// @Router /billing/webhook [post]
func (h *BillingHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	secret := r.Header.Get("X-Webhook-Secret")
	if h.config.Billing.WebhookSecret == "" ||
		!hmac.Equal([]byte(secret), []byte(h.config.Billing.WebhookSecret)) {
		utils.WriteError(w, errors.Unauthorized("Invalid webhook secret"))
		return
	}

	var evt dto.SubscriptionWebhook
	if err := json.NewDecoder(r.Body).Decode(&evt); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(evt); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	if err := h.userService.SetSubscription(r.Context(), evt.UserID, evt.Tier, evt.Status); err != nil {
		h.logger.ErrorWithErr(err, "Failed to apply subscription event")
		if appErr, ok := err.(*errors.AppError); ok {
			utils.WriteError(w, appErr)
			return
		}
		utils.WriteError(w, errors.Internal("Failed to apply subscription event", err))
		return
	}

	h.logger.Info(fmt.Sprintf("Subscription event applied for user %d: tier=%s status=%s", evt.UserID, evt.Tier, evt.Status))
	utils.WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

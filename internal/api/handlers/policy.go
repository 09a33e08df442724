package handlers

import (
	"net/http"

	"github.com/fitgate/fitgate/internal/access"
	"github.com/fitgate/fitgate/internal/api/dto"
	"github.com/fitgate/fitgate/internal/pkg/utils"
)

// PolicyHandler serves the feature access policy to clients
type PolicyHandler struct{}

// NewPolicyHandler creates a new policy handler
func NewPolicyHandler() *PolicyHandler {
	return &PolicyHandler{}
}

// Features returns the feature rule registry. Clients use this to gate
// navigation without duplicating the rules; the server remains
// authoritative on every request.
// @Summary Feature policy
// @Description Get the tier ordering and per-feature access rules
// @Tags Policy
// @Produce json
// @Success 200 {object} dto.PolicyDocument "Policy document"
// @Router /policy/features [get]
func (h *PolicyHandler) Features(w http.ResponseWriter, r *http.Request) {
	doc := dto.PolicyDocument{
		Tiers:    []string{access.TierFree, access.TierBasic, access.TierPremium},
		Features: access.Rules(),
	}
	utils.WriteSuccess(w, http.StatusOK, doc)
}

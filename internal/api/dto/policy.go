package dto

import "github.com/fitgate/fitgate/internal/access"

// PolicyDocument is the feature-access policy served to clients. It is
// built from the same registry the request guards evaluate, so UI-side
// gating can never drift from server enforcement. The server remains the
// authority; clients use this for navigation UX only.
type PolicyDocument struct {
	Tiers    []string               `json:"tiers"`
	Features map[string]access.Rule `json:"features"`
}

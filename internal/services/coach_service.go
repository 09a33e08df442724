package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/fitgate/fitgate/internal/domain/user"
	"github.com/fitgate/fitgate/internal/pkg/logger"
	"github.com/fitgate/fitgate/internal/providers"
)

// CoachService answers free-form training and nutrition questions
type CoachService struct {
	completer providers.Completer
	model     string
	logger    *logger.Logger
}

// NewCoachService creates a new coach service. completer may be nil, in
// which case replies fall back to a canned response.
func NewCoachService(completer providers.Completer, model string, log *logger.Logger) *CoachService {
	return &CoachService{
		completer: completer,
		model:     model,
		logger:    log,
	}
}

const coachSystemPrompt = `You are a supportive fitness and nutrition coach. Give practical, safe
advice in a few short paragraphs. Recommend consulting a physician for
anything medical. Never prescribe supplements or medication.`

// Reply answers a user's message, using their profile for context
func (s *CoachService) Reply(ctx context.Context, u *user.User, message string) (reply, model string, err error) {
	if s.completer == nil {
		return coachFallback, "", nil
	}

	out, err := s.completer.Complete(ctx, coachSystemPrompt, coachPrompt(u, message))
	if err != nil {
		s.logger.ErrorWithErr(err, "Coach completion failed, using canned reply")
		return coachFallback, "", nil
	}
	return out, s.model, nil
}

const coachFallback = "Coaching is temporarily unavailable. In the meantime: stay consistent, " +
	"prioritise sleep and protein, and keep most sessions at a difficulty you could " +
	"repeat tomorrow."

func coachPrompt(u *user.User, message string) string {
	var b strings.Builder
	if u.FitnessGoal != "" {
		fmt.Fprintf(&b, "Client goal: %s.\n", u.FitnessGoal)
	}
	if u.DietaryPrefs != "" {
		fmt.Fprintf(&b, "Dietary preferences: %s.\n", u.DietaryPrefs)
	}
	fmt.Fprintf(&b, "Question: %s", message)
	return b.String()
}

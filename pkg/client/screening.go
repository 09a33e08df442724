package client

import "context"

// ScreeningAnswers is the PAR-Q questionnaire submission
type ScreeningAnswers struct {
	HeartCondition     bool `json:"heart_condition"`
	ChestPainActivity  bool `json:"chest_pain_activity"`
	ChestPainRest      bool `json:"chest_pain_rest"`
	DizzinessOrBalance bool `json:"dizziness_or_balance"`
	BoneOrJointProblem bool `json:"bone_or_joint_problem"`
	BloodPressureMeds  bool `json:"blood_pressure_meds"`
	OtherReason        bool `json:"other_reason"`
}

// ScreeningState reports the PAR-Q gate for the current user
type ScreeningState struct {
	Complete         bool   `json:"complete"`
	PhysicianAdvised bool   `json:"physician_advised,omitempty"`
	Message          string `json:"message,omitempty"`
}

// ScreeningStatus retrieves the current user's screening state
func (c *Client) ScreeningStatus(ctx context.Context) (*ScreeningState, error) {
	var out ScreeningState
	if err := c.doRequest(ctx, "GET", "/api/v1/screening", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitScreening submits the questionnaire and marks screening complete
func (c *Client) SubmitScreening(ctx context.Context, answers ScreeningAnswers) (*ScreeningState, error) {
	var out ScreeningState
	if err := c.doRequest(ctx, "POST", "/api/v1/screening", answers, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

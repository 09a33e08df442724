package dto

// ScreeningRequest is the PAR-Q questionnaire submission. The seven
// questions follow the standard PAR-Q form; answering yes to any directs
// the user to consult a physician but does not block completion.
type ScreeningRequest struct {
	HeartCondition     *bool `json:"heart_condition" validate:"required"`
	ChestPainActivity  *bool `json:"chest_pain_activity" validate:"required"`
	ChestPainRest      *bool `json:"chest_pain_rest" validate:"required"`
	DizzinessOrBalance *bool `json:"dizziness_or_balance" validate:"required"`
	BoneOrJointProblem *bool `json:"bone_or_joint_problem" validate:"required"`
	BloodPressureMeds  *bool `json:"blood_pressure_meds" validate:"required"`
	OtherReason        *bool `json:"other_reason" validate:"required"`
}

// AnyYes reports whether any questionnaire answer was yes
func (s ScreeningRequest) AnyYes() bool {
	for _, v := range []*bool{
		s.HeartCondition, s.ChestPainActivity, s.ChestPainRest,
		s.DizzinessOrBalance, s.BoneOrJointProblem, s.BloodPressureMeds,
		s.OtherReason,
	} {
		if v != nil && *v {
			return true
		}
	}
	return false
}

// ScreeningResponse reports the state of the PAR-Q gate
type ScreeningResponse struct {
	Complete         bool   `json:"complete"`
	PhysicianAdvised bool   `json:"physician_advised,omitempty"`
	Message          string `json:"message,omitempty"`
}

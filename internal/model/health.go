package model

// TeamHealth is the single aggregate health summary for the SAR team.
type TeamHealth struct {
	AverageStressLevel string   `json:"average_stress_level"`
	HighRiskMembers    int      `json:"high_risk_members"`
	Recommendations    []string `json:"recommendations"`
}

// TeamHealthUpdate is a partial update: nil fields leave the aggregate untouched.
type TeamHealthUpdate struct {
	AverageStressLevel *string  `json:"average_stress_level"`
	HighRiskMembers    *int     `json:"high_risk_members"`
	Recommendations    []string `json:"recommendations"`
}

// DefaultTeamHealth is the aggregate the coordinator starts with.
func DefaultTeamHealth() TeamHealth {
	return TeamHealth{
		AverageStressLevel: "moderate",
		HighRiskMembers:    2,
		Recommendations: []string{
			"mandatory rest for high-risk members",
			"team debriefing session",
		},
	}
}

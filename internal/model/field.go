package model

// Operational adjustments chosen by field adaptation, first match wins.
const (
	AdjustmentStormWeather    = "Limit aerial operations, increase ground unit readiness"
	AdjustmentMountainTerrain = "Deploy mountain rescue teams, use specialized gear"
	AdjustmentStandard        = "Standard operations"
)

// FieldAssessment echoes the assessed conditions together with the chosen
// operational adjustment.
type FieldAssessment struct {
	ConditionsAssessed JSONMap `json:"conditions_assessed"`
	Adjustments        string  `json:"adjustments"`
}

func (a FieldAssessment) AsMap() map[string]interface{} {
	return map[string]interface{}{
		"conditions_assessed": map[string]interface{}(a.ConditionsAssessed),
		"adjustments":         a.Adjustments,
	}
}

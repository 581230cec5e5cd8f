package field

import (
	"github.com/sarops/medic-api/internal/model"
)

// Service adapts operation plans to real-time field conditions. It is pure:
// assessing conditions never mutates coordinator state.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Assess picks the operational adjustment for the given conditions. First
// match wins: stormy weather takes precedence over mountainous terrain.
func (s *Service) Assess(conditions model.JSONMap) model.FieldAssessment {
	adjustments := model.AdjustmentStandard
	if stringValue(conditions, "weather") == "stormy" {
		adjustments = model.AdjustmentStormWeather
	} else if stringValue(conditions, "terrain") == "mountainous" {
		adjustments = model.AdjustmentMountainTerrain
	}

	return model.FieldAssessment{
		ConditionsAssessed: conditions,
		Adjustments:        adjustments,
	}
}

func stringValue(m model.JSONMap, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

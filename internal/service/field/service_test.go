package field

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sarops/medic-api/internal/model"
)

func TestAssessScenarios(t *testing.T) {
	svc := NewService()

	cases := []struct {
		name       string
		conditions model.JSONMap
		want       string
	}{
		{
			name:       "stormy weather",
			conditions: model.JSONMap{"weather": "stormy", "terrain": "flat"},
			want:       model.AdjustmentStormWeather,
		},
		{
			name:       "stormy wins over mountainous",
			conditions: model.JSONMap{"weather": "stormy", "terrain": "mountainous"},
			want:       model.AdjustmentStormWeather,
		},
		{
			name:       "mountainous terrain",
			conditions: model.JSONMap{"weather": "clear", "terrain": "mountainous"},
			want:       model.AdjustmentMountainTerrain,
		},
		{
			name:       "standard operations",
			conditions: model.JSONMap{"weather": "clear", "terrain": "flat"},
			want:       model.AdjustmentStandard,
		},
		{
			name:       "empty conditions",
			conditions: model.JSONMap{},
			want:       model.AdjustmentStandard,
		},
		{
			name:       "non-string values ignored",
			conditions: model.JSONMap{"weather": 42, "terrain": true},
			want:       model.AdjustmentStandard,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := svc.Assess(tc.conditions)
			assert.Equal(t, tc.want, result.Adjustments)
			assert.Equal(t, tc.conditions, result.ConditionsAssessed)
		})
	}
}

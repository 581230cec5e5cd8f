package health

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarops/medic-api/internal/model"
	"github.com/sarops/medic-api/internal/repository/memory"
	"github.com/sarops/medic-api/pkg/logger"
)

func newService() *Service {
	return NewService(memory.NewTeamHealthRepository(model.DefaultTeamHealth()), logger.NewLogger(nil))
}

func TestMonitorReturnsSeed(t *testing.T) {
	svc := newService()

	current, err := svc.Monitor(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "moderate", current.AverageStressLevel)
	assert.Equal(t, 2, current.HighRiskMembers)
	assert.Contains(t, current.Recommendations, "team debriefing session")
}

func TestUpdateThenMonitor(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	stress := "high"
	members := 5
	updated, err := svc.Update(ctx, model.TeamHealthUpdate{
		AverageStressLevel: &stress,
		HighRiskMembers:    &members,
		Recommendations:    []string{"increase surveillance"},
	})
	require.NoError(t, err)

	assert.Equal(t, "high", updated.AverageStressLevel)
	assert.Equal(t, 5, updated.HighRiskMembers)
	assert.Contains(t, updated.Recommendations, "increase surveillance")

	current, err := svc.Monitor(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, current)
}

func TestUpdateLeavesAbsentFieldsUntouched(t *testing.T) {
	svc := newService()

	updated, err := svc.Update(context.Background(), model.TeamHealthUpdate{})
	require.NoError(t, err)

	assert.Equal(t, model.DefaultTeamHealth(), updated)
}

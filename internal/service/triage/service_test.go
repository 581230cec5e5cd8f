package triage

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarops/medic-api/internal/model"
	"github.com/sarops/medic-api/internal/repository/memory"
	"github.com/sarops/medic-api/pkg/errors"
	"github.com/sarops/medic-api/pkg/logger"
	"github.com/sarops/medic-api/pkg/metrics"
)

func newService(t *testing.T) (*Service, *memory.PatientRepository) {
	t.Helper()
	repo := memory.NewPatientRepository()
	svc := NewService(repo, logger.NewLogger(nil), metrics.New("test", prometheus.NewRegistry()))
	return svc, repo
}

func TestTriagePriorityOrdering(t *testing.T) {
	svc, _ := newService(t)

	result, err := svc.Triage(context.Background(), []model.TriagePatient{
		{ID: "p1", Severity: model.SeverityHigh, ArrivalTime: 1},
		{ID: "p2", Severity: model.SeverityHigh, ArrivalTime: 2},
		{ID: "p3", Severity: model.SeverityLow, ArrivalTime: 3},
	})
	require.NoError(t, err)

	assert.Equal(t, model.TriageResult{"p1": 1, "p2": 2, "p3": 3}, result)
}

func TestTriageSeverityBeforeArrival(t *testing.T) {
	svc, _ := newService(t)

	result, err := svc.Triage(context.Background(), []model.TriagePatient{
		{ID: "late-critical", Severity: model.SeverityHigh, ArrivalTime: 10},
		{ID: "early-minor", Severity: model.SeverityLow, ArrivalTime: 1},
		{ID: "mid-moderate", Severity: model.SeverityMedium, ArrivalTime: 5},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result["late-critical"])
	assert.Equal(t, 2, result["mid-moderate"])
	assert.Equal(t, 3, result["early-minor"])
}

func TestTriageStableForEqualSeverity(t *testing.T) {
	svc, _ := newService(t)

	result, err := svc.Triage(context.Background(), []model.TriagePatient{
		{ID: "b", Severity: model.SeverityMedium, ArrivalTime: 2},
		{ID: "a", Severity: model.SeverityMedium, ArrivalTime: 1},
		{ID: "c", Severity: model.SeverityMedium, ArrivalTime: 3},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result["a"])
	assert.Equal(t, 2, result["b"])
	assert.Equal(t, 3, result["c"])
}

func TestTriageCreatesRecords(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()

	_, err := svc.Triage(ctx, []model.TriagePatient{
		{ID: "p1", Severity: model.SeverityHigh, ArrivalTime: 1, Extra: model.JSONMap{"name": "John Doe"}},
	})
	require.NoError(t, err)

	record, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "high", record.StringField(model.FieldSeverity))
	assert.Equal(t, "triaged", record.StringField(model.FieldStatus))
	assert.Equal(t, "John Doe", record["name"])
	assert.NotEqual(t, model.ValueUnknown, record.StringField(model.FieldTriageTime))
}

func TestTriageMergeIsIdempotent(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()

	batch := []model.TriagePatient{
		{ID: "p1", Severity: model.SeverityLow, ArrivalTime: 1},
		{ID: "p2", Severity: model.SeverityMedium, ArrivalTime: 2},
	}
	_, err := svc.Triage(ctx, batch)
	require.NoError(t, err)

	// Re-triage with a worsened severity: record is merged, not duplicated.
	batch[0].Severity = model.SeverityHigh
	_, err = svc.Triage(ctx, batch)
	require.NoError(t, err)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	record, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "high", record.StringField(model.FieldSeverity))
}

func TestTriageInvalidSeverity(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()

	_, err := svc.Triage(ctx, []model.TriagePatient{
		{ID: "p1", Severity: model.SeverityHigh, ArrivalTime: 1},
		{ID: "p2", Severity: "critical", ArrivalTime: 2},
	})
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidEnum, errors.CodeOf(err))

	// Validation happens before intake: no records were created.
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

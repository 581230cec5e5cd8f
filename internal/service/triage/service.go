package triage

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sarops/medic-api/internal/model"
	"github.com/sarops/medic-api/internal/repository"
	"github.com/sarops/medic-api/pkg/errors"
	"github.com/sarops/medic-api/pkg/logger"
	"github.com/sarops/medic-api/pkg/metrics"
)

// Service sorts incoming patients into treatment order and registers them in
// the patient registry.
type Service struct {
	patients repository.PatientRepository
	logger   *logger.Logger
	metrics  *metrics.Metrics
}

func NewService(patients repository.PatientRepository, log *logger.Logger, m *metrics.Metrics) *Service {
	return &Service{
		patients: patients,
		logger:   log,
		metrics:  m,
	}
}

// Triage assigns each patient a 1-based priority under (severity rank,
// arrival time) ordering and creates or refreshes their registry record with
// status triaged. Severities are validated up front so a bad descriptor
// leaves the registry untouched.
func (s *Service) Triage(ctx context.Context, incoming []model.TriagePatient) (model.TriageResult, error) {
	for _, p := range incoming {
		if _, ok := p.Severity.Rank(); !ok {
			return nil, errors.InvalidEnum(fmt.Sprintf("unrecognized severity level: %q", p.Severity))
		}
	}

	sorted := make([]model.TriagePatient, len(incoming))
	copy(sorted, incoming)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, _ := sorted[i].Severity.Rank()
		rj, _ := sorted[j].Severity.Rank()
		if ri != rj {
			return ri < rj
		}
		return sorted[i].ArrivalTime < sorted[j].ArrivalTime
	})

	stamp := time.Now().UTC().Format(time.RFC3339)
	result := make(model.TriageResult, len(sorted))
	for i, p := range sorted {
		result[p.ID] = i + 1

		patch := make(model.JSONMap, len(p.Extra)+4)
		for k, v := range p.Extra {
			patch[k] = v
		}
		patch[model.FieldSeverity] = string(p.Severity)
		patch[model.FieldStatus] = string(model.PatientStatusTriaged)
		patch[model.FieldTriageTime] = stamp
		patch[model.FieldArrivalTime] = p.ArrivalTime

		if _, err := s.patients.Upsert(ctx, p.ID, patch); err != nil {
			return nil, fmt.Errorf("failed to register triaged patient %s: %w", p.ID, err)
		}
	}

	s.metrics.TriageBatchSize.Observe(float64(len(incoming)))
	s.logger.Debug("triage batch processed", "patients", len(incoming))

	return result, nil
}

package patient

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sarops/medic-api/internal/model"
	"github.com/sarops/medic-api/internal/repository"
	"github.com/sarops/medic-api/pkg/errors"
	"github.com/sarops/medic-api/pkg/logger"
	"github.com/sarops/medic-api/pkg/messaging"
	"github.com/sarops/medic-api/pkg/metrics"
)

// Service manages the patient record lifecycle: explicit registration,
// updates, listing, and discharge. Records are never removed; discharge is a
// status transition.
type Service struct {
	repo    repository.PatientRepository
	broker  messaging.Broker
	logger  *logger.Logger
	metrics *metrics.Metrics
}

func NewService(repo repository.PatientRepository, broker messaging.Broker, log *logger.Logger, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		broker:  broker,
		logger:  log,
		metrics: m,
	}
}

// Register stores a new patient record. The id field is required; status
// defaults to registered and registration_time to now when absent.
func (s *Service) Register(ctx context.Context, data model.JSONMap) (model.PatientRecord, error) {
	id, ok := data[model.FieldID].(string)
	if !ok || id == "" {
		return nil, errors.MissingField("Patient ID")
	}

	record := model.PatientRecord(data.Clone())
	if _, ok := record[model.FieldStatus]; !ok {
		record[model.FieldStatus] = string(model.PatientStatusRegistered)
	}
	if _, ok := record[model.FieldRegistrationTime]; !ok {
		record[model.FieldRegistrationTime] = time.Now().UTC().Format(time.RFC3339)
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.refreshCount(ctx)
	s.publish(ctx, messaging.EventPatientRegistered, "patient.registered", id, nil)
	s.logger.Info("patient registered", "patient_id", id)

	return record, nil
}

// Update merges patch into an existing record and stamps last_updated.
func (s *Service) Update(ctx context.Context, id string, patch model.JSONMap) (model.PatientRecord, error) {
	merged := patch.Clone()
	merged[model.FieldLastUpdated] = time.Now().UTC().Format(time.RFC3339)

	record, err := s.repo.Update(ctx, id, merged)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Get returns the full record for id.
func (s *Service) Get(ctx context.Context, id string) (model.PatientRecord, error) {
	return s.repo.Get(ctx, id)
}

// List returns the projection of all records, optionally filtered to an
// exact status match.
func (s *Service) List(ctx context.Context, status string) (model.PatientList, error) {
	records, err := s.repo.List(ctx, status)
	if err != nil {
		return model.PatientList{}, fmt.Errorf("failed to list patients: %w", err)
	}

	summaries := make([]model.PatientSummary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, record.Summary())
	}
	return model.PatientList{
		Count:    len(summaries),
		Patients: summaries,
	}, nil
}

// Discharge marks the patient discharged, stamping discharge_time and
// storing the discharge notes. All other fields are preserved.
func (s *Service) Discharge(ctx context.Context, id, notes string) (model.PatientRecord, error) {
	patch := model.JSONMap{
		model.FieldStatus:         string(model.PatientStatusDischarged),
		model.FieldDischargeTime:  time.Now().UTC().Format(time.RFC3339),
		model.FieldDischargeNotes: notes,
	}
	record, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, messaging.EventPatientDischarged, "patient.discharged", id, model.JSONMap{"notes": notes})
	s.logger.Info("patient discharged", "patient_id", id)

	return record, nil
}

func (s *Service) refreshCount(ctx context.Context) {
	if count, err := s.repo.Count(ctx); err == nil {
		s.metrics.PatientsRegistered.Set(float64(count))
	}
}

func (s *Service) publish(ctx context.Context, eventType, channel, patientID string, extra model.JSONMap) {
	payload := map[string]interface{}{"patient_id": patientID}
	for k, v := range extra {
		payload[k] = v
	}
	msg := messaging.Message{
		ID:      uuid.NewString(),
		Type:    eventType,
		Payload: payload,
	}
	if err := s.broker.Publish(ctx, channel, msg); err != nil {
		s.metrics.EventsFailed.WithLabelValues(eventType).Inc()
		s.logger.Error(err, "failed to publish patient event", "event_type", eventType)
		return
	}
	s.metrics.EventsPublished.WithLabelValues(eventType).Inc()
}

package transport

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
)

// Service organizes patient transport. Failures are reported in the result,
// never as a Go error; callers inspect TransportStatus.
type Service struct {
	patients repository.PatientRepository
	oracle   Oracle
	broker   messaging.Broker
	logger   *logger.Logger
}

func NewService(patients repository.PatientRepository, oracle Oracle, broker messaging.Broker, log *logger.Logger) *Service {
	return &Service{
		patients: patients,
		oracle:   oracle,
		broker:   broker,
		logger:   log,
	}
}

// Organize picks a vehicle for the urgency level, checks the availability
// oracle, and marks an existing patient record in transit. It never creates a
// record: transport for an unregistered patient still returns "organized" but
// leaves the registry untouched.
func (s *Service) Organize(ctx context.Context, patientID, destination string, urgency model.Urgency) model.TransportResult {
	vehicle, ok := urgency.Vehicle()
	if !ok {
		return model.TransportResult{
			PatientID:       patientID,
			TransportStatus: model.TransportError,
			Error:           "Invalid urgency level specified",
		}
	}

	if !s.oracle.Available(vehicle) {
		return model.TransportResult{
			PatientID:       patientID,
			TransportStatus: model.TransportUnavailable,
			Error:           fmt.Sprintf("%s is not available currently", vehicle),
		}
	}

	patch := model.JSONMap{
		model.FieldTransportType: string(vehicle),
		model.FieldDestination:   destination,
		model.FieldTransportTime: time.Now().UTC().Format(time.RFC3339),
		model.FieldStatus:        string(model.PatientStatusInTransit),
	}
	if _, err := s.patients.Update(ctx, patientID, patch); err != nil {
		if errors.CodeOf(err) != errors.ErrNotFound {
			s.logger.Error(err, "failed to update patient transport state", "patient_id", patientID)
		}
	} else {
		s.publishInTransit(ctx, patientID, destination, vehicle)
	}

	return model.TransportResult{
		PatientID:       patientID,
		TransportStatus: model.TransportOrganized,
		TransportType:   vehicle,
		Destination:     destination,
	}
}

func (s *Service) publishInTransit(ctx context.Context, patientID, destination string, vehicle model.VehicleType) {
	msg := messaging.Message{
		ID:   uuid.NewString(),
		Type: messaging.EventPatientInTransit,
		Payload: map[string]interface{}{
			"patient_id":     patientID,
			"destination":    destination,
			"transport_type": string(vehicle),
		},
	}
	if err := s.broker.Publish(ctx, "patient.transport", msg); err != nil {
		s.logger.Error(err, "failed to publish transport event", "patient_id", patientID)
	}
}

package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/sarops/medic-api/internal/model"
	"github.com/sarops/medic-api/internal/service/field"
	"github.com/sarops/medic-api/internal/service/health"
	"github.com/sarops/medic-api/internal/service/patient"
	"github.com/sarops/medic-api/internal/service/supply"
	"github.com/sarops/medic-api/internal/service/transport"
	"github.com/sarops/medic-api/internal/service/triage"
	"github.com/sarops/medic-api/pkg/errors"
	"github.com/sarops/medic-api/pkg/logger"
	"github.com/sarops/medic-api/pkg/metrics"
)

// Intent keys recognized by the request dispatcher. The first key present in
// a request mapping, checked in intentOrder, selects the operation.
const (
	IntentTriage           = "triage_request"
	IntentTransport        = "transport_request"
	IntentSupply           = "supply_request"
	IntentHealthMonitoring = "health_monitoring_request"
	IntentFieldAdaptation  = "field_adaptation_request"
	IntentAddPatient       = "add_patient_request"
	IntentUpdatePatient    = "update_patient_request"
	IntentGetPatient       = "get_patient_request"
	IntentListPatients     = "list_patients_request"
	IntentDischargePatient = "discharge_patient_request"
)

var intentOrder = []string{
	IntentTriage,
	IntentTransport,
	IntentSupply,
	IntentHealthMonitoring,
	IntentFieldAdaptation,
	IntentAddPatient,
	IntentUpdatePatient,
	IntentGetPatient,
	IntentListPatients,
	IntentDischargePatient,
}

// Services are the operation handlers the coordinator dispatches to.
type Services struct {
	Triage    *triage.Service
	Transport *transport.Service
	Supply    *supply.Service
	Health    *health.Service
	Field     *field.Service
	Patients  *patient.Service
}

// MedicalTeamLeader is the medical coordination agent for SAR operations: it
// routes tagged request mappings to triage, transport, supply, team-health,
// field-adaptation, and patient-record operations.
type MedicalTeamLeader struct {
	*Agent
	svc     Services
	logger  *logger.Logger
	metrics *metrics.Metrics
}

const roleDescription = "Triage and treat injuries, coordinate patient transport, " +
	"manage medical supplies, monitor team health, and adapt operations to field conditions."

func NewMedicalTeamLeader(svc Services, log *logger.Logger, m *metrics.Metrics) *MedicalTeamLeader {
	return &MedicalTeamLeader{
		Agent:   New("Medical_Team_Leader", "Medical Team Leader", roleDescription),
		svc:     svc,
		logger:  log,
		metrics: m,
	}
}

// ProcessRequest dispatches a tagged request mapping to the matching
// operation and always returns a result mapping: handler failures come back
// as {"error": <message>}, never as a Go error or panic.
func (c *MedicalTeamLeader) ProcessRequest(ctx context.Context, message map[string]interface{}) map[string]interface{} {
	intent := ""
	for _, key := range intentOrder {
		if _, ok := message[key]; ok {
			intent = key
			break
		}
	}
	if intent == "" {
		c.metrics.RequestsTotal.WithLabelValues("unknown", "error").Inc()
		return errorEnvelope(errors.UnknownIntent())
	}

	start := time.Now()
	result, err := c.dispatch(ctx, intent, message)
	c.metrics.RequestLatency.WithLabelValues(intent).Observe(time.Since(start).Seconds())

	if err != nil {
		c.metrics.RequestsTotal.WithLabelValues(intent, "error").Inc()
		c.logger.Debug("request failed", "intent", intent, "error", err.Error())
		return errorEnvelope(err)
	}
	c.metrics.RequestsTotal.WithLabelValues(intent, "success").Inc()
	return result
}

func (c *MedicalTeamLeader) dispatch(ctx context.Context, intent string, message map[string]interface{}) (map[string]interface{}, error) {
	switch intent {
	case IntentTriage:
		patients, err := decodeTriagePatients(message["patients"])
		if err != nil {
			return nil, err
		}
		result, err := c.svc.Triage.Triage(ctx, patients)
		if err != nil {
			return nil, err
		}
		out := make(map[string]interface{}, len(result))
		for id, priority := range result {
			out[id] = priority
		}
		return out, nil

	case IntentTransport:
		patientID, err := stringField(message, "patient_id")
		if err != nil {
			return nil, err
		}
		destination, err := stringField(message, "destination")
		if err != nil {
			return nil, err
		}
		urgency, err := stringField(message, "urgency")
		if err != nil {
			return nil, err
		}
		return c.svc.Transport.Organize(ctx, patientID, destination, model.Urgency(urgency)).AsMap(), nil

	case IntentSupply:
		item, err := stringField(message, "item")
		if err != nil {
			return nil, err
		}
		quantity, err := intField(message, "quantity")
		if err != nil {
			return nil, err
		}
		result, err := c.svc.Supply.Adjust(ctx, item, quantity)
		if err != nil {
			return nil, err
		}
		return result.AsMap(), nil

	case IntentHealthMonitoring:
		current, err := c.svc.Health.Monitor(ctx)
		if err != nil {
			return nil, err
		}
		return teamHealthMap(current), nil

	case IntentFieldAdaptation:
		conditions, err := mapField(message, "conditions")
		if err != nil {
			return nil, err
		}
		return c.svc.Field.Assess(conditions).AsMap(), nil

	case IntentAddPatient:
		data, err := mapField(message, "patient_data")
		if err != nil {
			return nil, err
		}
		record, err := c.svc.Patients.Register(ctx, data)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"status":     "success",
			"message":    fmt.Sprintf("Patient %s added successfully", record.ID()),
			"patient_id": record.ID(),
		}, nil

	case IntentUpdatePatient:
		id, err := stringField(message, "patient_id")
		if err != nil {
			return nil, err
		}
		patch, err := mapField(message, "update_data")
		if err != nil {
			return nil, err
		}
		record, err := c.svc.Patients.Update(ctx, id, patch)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"status":       "success",
			"patient_id":   id,
			"patient_data": map[string]interface{}(record),
		}, nil

	case IntentGetPatient:
		id, err := stringField(message, "patient_id")
		if err != nil {
			return nil, err
		}
		record, err := c.svc.Patients.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"status":       "success",
			"patient_id":   id,
			"patient_data": map[string]interface{}(record),
		}, nil

	case IntentListPatients:
		status, _, err := optionalStringField(message, "status")
		if err != nil {
			return nil, err
		}
		list, err := c.svc.Patients.List(ctx, status)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"status":   "success",
			"count":    list.Count,
			"patients": list.Patients,
		}, nil

	case IntentDischargePatient:
		id, err := stringField(message, "patient_id")
		if err != nil {
			return nil, err
		}
		notes, _, err := optionalStringField(message, "notes")
		if err != nil {
			return nil, err
		}
		record, err := c.svc.Patients.Discharge(ctx, id, notes)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"status":       "success",
			"patient_id":   id,
			"patient_data": map[string]interface{}(record),
		}, nil
	}

	return nil, errors.UnknownIntent()
}

// UpdateTeamHealth applies a partial team-health update. It is not part of
// the intent set; callers reach it through the HTTP surface or directly.
func (c *MedicalTeamLeader) UpdateTeamHealth(ctx context.Context, update model.TeamHealthUpdate) (model.TeamHealth, error) {
	return c.svc.Health.Update(ctx, update)
}

func errorEnvelope(err error) map[string]interface{} {
	return map[string]interface{}{"error": err.Error()}
}

func teamHealthMap(h model.TeamHealth) map[string]interface{} {
	return map[string]interface{}{
		"average_stress_level": h.AverageStressLevel,
		"high_risk_members":    h.HighRiskMembers,
		"recommendations":      h.Recommendations,
	}
}

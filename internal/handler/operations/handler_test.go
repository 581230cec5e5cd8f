package operations

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarops/medic-api/internal/agent"
	"github.com/sarops/medic-api/internal/model"
	"github.com/sarops/medic-api/internal/notify"
	"github.com/sarops/medic-api/internal/repository/memory"
	"github.com/sarops/medic-api/internal/service/field"
	"github.com/sarops/medic-api/internal/service/health"
	"github.com/sarops/medic-api/internal/service/patient"
	"github.com/sarops/medic-api/internal/service/supply"
	"github.com/sarops/medic-api/internal/service/transport"
	"github.com/sarops/medic-api/internal/service/triage"
	"github.com/sarops/medic-api/pkg/logger"
	"github.com/sarops/medic-api/pkg/messaging"
	"github.com/sarops/medic-api/pkg/metrics"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewLogger(nil)
	m := metrics.New("test", prometheus.NewRegistry())
	broker := messaging.NewNoopBroker()

	patients := memory.NewPatientRepository()
	inventory := memory.NewInventoryRepository(model.DefaultInventory(), model.DefaultReorderThresholds())
	teamHealth := memory.NewTeamHealthRepository(model.DefaultTeamHealth())
	procurement := notify.NewProcurement(log, broker, nil, m)

	leader := agent.NewMedicalTeamLeader(agent.Services{
		Triage:    triage.NewService(patients, log, m),
		Transport: transport.NewService(patients, transport.StaticOracle{}, broker, log),
		Supply:    supply.NewService(inventory, procurement, log, m),
		Health:    health.NewService(teamHealth, log),
		Field:     field.NewService(),
		Patients:  patient.NewService(patients, broker, log, m),
	}, log, m)

	engine := gin.New()
	NewHandler(leader).RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(payload)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestProcessRequestDispatch(t *testing.T) {
	engine := newTestRouter(t)

	w := doRequest(t, engine, http.MethodPost, "/api/v1/requests", map[string]interface{}{
		"supply_request": true,
		"item":           "bandages",
		"quantity":       -30,
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "bandages", body["item"])
	assert.Equal(t, float64(70), body["updated_quantity"])
	assert.Equal(t, "reorder placed", body["reorder_status"])
}

func TestProcessRequestUnknownIntent(t *testing.T) {
	engine := newTestRouter(t)

	w := doRequest(t, engine, http.MethodPost, "/api/v1/requests", map[string]interface{}{
		"launch_request": true,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{"error": "Unknown request type"}, decodeBody(t, w))
}

func TestTriageEndpoint(t *testing.T) {
	engine := newTestRouter(t)

	w := doRequest(t, engine, http.MethodPost, "/api/v1/triage", map[string]interface{}{
		"patients": []map[string]interface{}{
			{"id": "P1", "severity": "low", "arrival_time": 1.0},
			{"id": "P2", "severity": "high", "arrival_time": 2.0},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), data["P2"])
	assert.Equal(t, float64(2), data["P1"])
}

func TestTriageEndpointRejectsBadSeverity(t *testing.T) {
	engine := newTestRouter(t)

	w := doRequest(t, engine, http.MethodPost, "/api/v1/triage", map[string]interface{}{
		"patients": []map[string]interface{}{
			{"id": "P1", "severity": "catastrophic", "arrival_time": 1.0},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransportEndpoint(t *testing.T) {
	engine := newTestRouter(t)

	w := doRequest(t, engine, http.MethodPost, "/api/v1/transport", map[string]interface{}{
		"patient_id":  "P9",
		"destination": "field hospital",
		"urgency":     "high",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "organized", body["transport_status"])
	assert.Equal(t, "helicopter", body["transport_type"])
	assert.Equal(t, "field hospital", body["destination"])
}

func TestTransportEndpointInvalidUrgency(t *testing.T) {
	engine := newTestRouter(t)

	w := doRequest(t, engine, http.MethodPost, "/api/v1/transport", map[string]interface{}{
		"patient_id":  "P9",
		"destination": "field hospital",
		"urgency":     "extreme",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "error", body["transport_status"])
	assert.Equal(t, "Invalid urgency level specified", body["error"])
}

func TestFieldAdaptationEndpoint(t *testing.T) {
	engine := newTestRouter(t)

	w := doRequest(t, engine, http.MethodPost, "/api/v1/field-adaptation", map[string]interface{}{
		"conditions": map[string]interface{}{"weather": "stormy"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Limit aerial operations, increase ground unit readiness", data["adjustments"])
}

func TestStatusRoundTrip(t *testing.T) {
	engine := newTestRouter(t)

	w := doRequest(t, engine, http.MethodGet, "/api/v1/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Medical_Team_Leader", data["name"])
	assert.Equal(t, "unknown", data["status"])

	w = doRequest(t, engine, http.MethodPut, "/api/v1/status", map[string]interface{}{
		"status": "deployed",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, engine, http.MethodGet, "/api/v1/status", nil)
	data = decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "deployed", data["status"])
}

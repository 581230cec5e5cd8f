package operations

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarops/medic-api/internal/agent"
	"github.com/sarops/medic-api/internal/handler"
	"github.com/sarops/medic-api/internal/model"
)

// Handler exposes the coordination operations: the raw request-envelope
// dispatcher plus typed triage, transport, field-adaptation, and agent-status
// routes.
type Handler struct {
	leader *agent.MedicalTeamLeader
}

func NewHandler(leader *agent.MedicalTeamLeader) *Handler {
	return &Handler{leader: leader}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/requests", h.ProcessRequest)
	r.POST("/triage", h.Triage)
	r.POST("/transport", h.OrganizeTransport)
	r.POST("/field-adaptation", h.AdaptToFieldConditions)
	r.GET("/status", h.GetStatus)
	r.PUT("/status", h.UpdateStatus)
}

// ProcessRequest accepts a tagged request mapping and returns the dispatcher
// result verbatim. The dispatcher never fails: errors come back inside the
// mapping, so the HTTP status is always 200.
func (h *Handler) ProcessRequest(c *gin.Context) {
	var message map[string]interface{}
	if err := c.ShouldBindJSON(&message); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(handler.BindErrorMessage(err)))
		return
	}
	c.JSON(http.StatusOK, h.leader.ProcessRequest(c.Request.Context(), message))
}

type triageRequest struct {
	Patients []model.TriagePatient `json:"patients" binding:"required,dive"`
}

func (h *Handler) Triage(c *gin.Context) {
	var req triageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(handler.BindErrorMessage(err)))
		return
	}

	message := map[string]interface{}{
		agent.IntentTriage: true,
		"patients":         toDescriptorList(req.Patients),
	}
	result := h.leader.ProcessRequest(c.Request.Context(), message)
	if msg, ok := result["error"].(string); ok {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(msg))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(result))
}

type transportRequest struct {
	PatientID   string `json:"patient_id" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	Urgency     string `json:"urgency" binding:"required"`
}

func (h *Handler) OrganizeTransport(c *gin.Context) {
	var req transportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(handler.BindErrorMessage(err)))
		return
	}

	result := h.leader.ProcessRequest(c.Request.Context(), map[string]interface{}{
		agent.IntentTransport: true,
		"patient_id":          req.PatientID,
		"destination":         req.Destination,
		"urgency":             req.Urgency,
	})

	status := http.StatusOK
	switch result["transport_status"] {
	case string(model.TransportUnavailable):
		status = http.StatusServiceUnavailable
	case string(model.TransportError):
		status = http.StatusBadRequest
	}
	c.JSON(status, result)
}

type fieldAdaptationRequest struct {
	Conditions model.JSONMap `json:"conditions" binding:"required"`
}

func (h *Handler) AdaptToFieldConditions(c *gin.Context) {
	var req fieldAdaptationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(handler.BindErrorMessage(err)))
		return
	}

	result := h.leader.ProcessRequest(c.Request.Context(), map[string]interface{}{
		agent.IntentFieldAdaptation: true,
		"conditions":                map[string]interface{}(req.Conditions),
	})
	c.JSON(http.StatusOK, handler.NewSuccessResponse(result))
}

func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"name":   h.leader.Name(),
		"role":   h.leader.Role(),
		"status": h.leader.Status(),
	}))
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(handler.BindErrorMessage(err)))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.leader.SetStatus(req.Status)))
}

func toDescriptorList(patients []model.TriagePatient) []interface{} {
	out := make([]interface{}, 0, len(patients))
	for _, p := range patients {
		out = append(out, map[string]interface{}{
			model.FieldID:          p.ID,
			model.FieldSeverity:    string(p.Severity),
			model.FieldArrivalTime: p.ArrivalTime,
		})
	}
	return out
}

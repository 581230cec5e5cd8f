package patient

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarops/medic-api/internal/handler"
	"github.com/sarops/medic-api/internal/model"
	"github.com/sarops/medic-api/internal/service/patient"
)

type Handler struct {
	service *patient.Service
}

func NewHandler(service *patient.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/patients")
	{
		patients.POST("", h.CreatePatient)
		patients.GET("", h.ListPatients)
		patients.GET("/:id", h.GetPatient)
		patients.PUT("/:id", h.UpdatePatient)
		patients.POST("/:id/discharge", h.DischargePatient)
	}
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var data model.JSONMap
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(handler.BindErrorMessage(err)))
		return
	}

	record, err := h.service.Register(c.Request.Context(), data)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(gin.H{
		"patient_id": record.ID(),
		"patient":    record,
	}))
}

func (h *Handler) GetPatient(c *gin.Context) {
	record, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(record))
}

func (h *Handler) UpdatePatient(c *gin.Context) {
	var patch model.JSONMap
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(handler.BindErrorMessage(err)))
		return
	}

	record, err := h.service.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(record))
}

func (h *Handler) ListPatients(c *gin.Context) {
	list, err := h.service.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(list))
}

type dischargeRequest struct {
	Notes string `json:"notes"`
}

func (h *Handler) DischargePatient(c *gin.Context) {
	var req dischargeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse(handler.BindErrorMessage(err)))
			return
		}
	}

	record, err := h.service.Discharge(c.Request.Context(), c.Param("id"), req.Notes)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(record))
}

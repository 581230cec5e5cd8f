package teamhealth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarops/medic-api/internal/handler"
	"github.com/sarops/medic-api/internal/model"
	"github.com/sarops/medic-api/internal/service/health"
)

type Handler struct {
	service *health.Service
}

func NewHandler(service *health.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/team-health", h.Monitor)
	r.PUT("/team-health", h.Update)
}

func (h *Handler) Monitor(c *gin.Context) {
	current, err := h.service.Monitor(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(current))
}

func (h *Handler) Update(c *gin.Context) {
	var update model.TeamHealthUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(handler.BindErrorMessage(err)))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), update)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

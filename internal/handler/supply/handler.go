package supply

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarops/medic-api/internal/handler"
	"github.com/sarops/medic-api/internal/notify"
	"github.com/sarops/medic-api/internal/service/supply"
)

type Handler struct {
	service     *supply.Service
	procurement *notify.Procurement
}

func NewHandler(service *supply.Service, procurement *notify.Procurement) *Handler {
	return &Handler{service: service, procurement: procurement}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	supplies := r.Group("/supplies")
	{
		supplies.POST("", h.AdjustSupply)
		supplies.GET("", h.ListSupplies)
		supplies.GET("/reorders", h.ListReorders)
	}
}

type adjustRequest struct {
	Item     string `json:"item" binding:"required"`
	Quantity int    `json:"quantity"`
}

func (h *Handler) AdjustSupply(c *gin.Context) {
	var req adjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(handler.BindErrorMessage(err)))
		return
	}

	result, err := h.service.Adjust(c.Request.Context(), req.Item, req.Quantity)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(result))
}

func (h *Handler) ListSupplies(c *gin.Context) {
	snapshot, err := h.service.Snapshot(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(snapshot))
}

func (h *Handler) ListReorders(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.procurement.History()))
}

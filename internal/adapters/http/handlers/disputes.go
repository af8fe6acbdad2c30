package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/gateway-client/internal/adapters/http/dto"
	"github.com/jsamuelsen/gateway-client/internal/domain"
)

const resourceDisputes = "disputes"

// DisputeHandler serves the sandbox dispute endpoints. Disputes cannot be
// created directly; they open after a charge on CardDisputed.
type DisputeHandler struct {
	store   *Store
	metrics *Metrics
}

// NewDisputeHandler creates a dispute handler.
func NewDisputeHandler(store *Store, metrics *Metrics) *DisputeHandler {
	return &DisputeHandler{
		store:   store,
		metrics: metrics,
	}
}

// Get handles GET /disputes/:id.
func (h *DisputeHandler) Get(c *gin.Context) {
	dispute, err := h.store.GetDispute(c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDisputeResponse(dispute))
}

// Update handles POST /disputes/:id with an evidence submission.
func (h *DisputeHandler) Update(c *gin.Context) {
	var req domain.DisputeUpdateRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	dispute, err := h.store.UpdateDispute(c.Param("id"), &req)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	h.metrics.mutated(resourceDisputes, "update")
	c.JSON(http.StatusOK, dto.NewDisputeResponse(dispute))
}

// Close handles POST /disputes/:id/close.
func (h *DisputeHandler) Close(c *gin.Context) {
	dispute, err := h.store.CloseDispute(c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	h.metrics.mutated(resourceDisputes, "close")
	c.JSON(http.StatusOK, dto.NewDisputeResponse(dispute))
}

// List handles GET /disputes.
func (h *DisputeHandler) List(c *gin.Context) {
	params, err := dto.BindListParams(c)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	page, err := h.store.ListDisputes(params)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(page, dto.NewDisputeResponse))
}

// RegisterRoutes registers the dispute routes on rg.
func (h *DisputeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	disputes := rg.Group("/disputes")
	disputes.GET("", h.List)
	disputes.GET("/:id", h.Get)
	disputes.POST("/:id", h.Update)
	disputes.POST("/:id/close", h.Close)
}

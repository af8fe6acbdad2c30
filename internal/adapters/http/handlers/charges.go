package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/gateway-client/internal/adapters/http/dto"
	"github.com/jsamuelsen/gateway-client/internal/domain"
)

const resourceCharges = "charges"

// ChargeHandler serves the sandbox charge endpoints.
type ChargeHandler struct {
	store   *Store
	metrics *Metrics
}

// NewChargeHandler creates a charge handler.
func NewChargeHandler(store *Store, metrics *Metrics) *ChargeHandler {
	return &ChargeHandler{
		store:   store,
		metrics: metrics,
	}
}

// Create handles POST /charges.
// A declined card answers 402 with the failed charge's ID in the envelope.
func (h *ChargeHandler) Create(c *gin.Context) {
	var req domain.ChargeRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	charge, err := h.store.CreateCharge(&req)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	h.metrics.mutated(resourceCharges, "create")
	c.JSON(http.StatusOK, dto.NewChargeResponse(charge))
}

// Get handles GET /charges/:id.
func (h *ChargeHandler) Get(c *gin.Context) {
	charge, err := h.store.GetCharge(c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewChargeResponse(charge))
}

// Update handles POST /charges/:id.
func (h *ChargeHandler) Update(c *gin.Context) {
	var req domain.ChargeUpdateRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	charge, err := h.store.UpdateCharge(c.Param("id"), &req)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	h.metrics.mutated(resourceCharges, "update")
	c.JSON(http.StatusOK, dto.NewChargeResponse(charge))
}

// Capture handles POST /charges/:id/capture.
func (h *ChargeHandler) Capture(c *gin.Context) {
	charge, err := h.store.CaptureCharge(c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	h.metrics.mutated(resourceCharges, "capture")
	c.JSON(http.StatusOK, dto.NewChargeResponse(charge))
}

// List handles GET /charges.
func (h *ChargeHandler) List(c *gin.Context) {
	params, err := dto.BindListParams(c)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	page, err := h.store.ListCharges(params)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(page, dto.NewChargeResponse))
}

// RegisterRoutes registers the charge routes on rg.
func (h *ChargeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	charges := rg.Group("/charges")
	charges.POST("", h.Create)
	charges.GET("", h.List)
	charges.GET("/:id", h.Get)
	charges.POST("/:id", h.Update)
	charges.POST("/:id/capture", h.Capture)
}

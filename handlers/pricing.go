// File: handlers/pricing.go
package handlers

import (
	"net/http"

	"partnerhub/models"
	"partnerhub/services/pricing"
	"partnerhub/utils"

	"github.com/gin-gonic/gin"
)

// PricingHandler exposes the registration fee admin surface.
type PricingHandler struct {
	Service pricing.PricingService
}

func NewPricingHandler(svc pricing.PricingService) *PricingHandler {
	return &PricingHandler{Service: svc}
}

// GetPricingSettingsHandler handles GET /registerFee/getPricingSettings.
func (h *PricingHandler) GetPricingSettingsHandler(c *gin.Context) {
	settings, err := h.Service.GetSettings(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "", settings)
}

// UpdatePricingSettingsHandler handles POST /registerFee/updatePricingSettings.
func (h *PricingHandler) UpdatePricingSettingsHandler(c *gin.Context) {
	var req models.PricingSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError(err.Error()))
		return
	}

	updated, err := h.Service.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Pricing settings updated", updated)
}

// GetPricingHistoryHandler handles GET /registerFee/getPricingHistory.
func (h *PricingHandler) GetPricingHistoryHandler(c *gin.Context) {
	history, err := h.Service.GetHistory(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "", history)
}

// GetPricingMetricsHandler handles GET /registerFee/getPricingMetrics.
func (h *PricingHandler) GetPricingMetricsHandler(c *gin.Context) {
	metrics, err := h.Service.GetMetrics(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "", metrics)
}

// File: handlers/feature.go
package handlers

import (
	"net/http"

	"partnerhub/models"
	"partnerhub/utils"

	"github.com/gin-gonic/gin"
)

// CreateFeatureHandler handles POST /registerFee/createFeature.
func (h *PricingHandler) CreateFeatureHandler(c *gin.Context) {
	var req models.FeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError(err.Error()))
		return
	}

	created, err := h.Service.CreateFeature(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, "Feature created", created)
}

// GetFeaturesHandler handles GET /registerFee/getFeatures.
func (h *PricingHandler) GetFeaturesHandler(c *gin.Context) {
	features, err := h.Service.ListFeatures(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "", features)
}

// UpdateFeatureHandler handles PUT /registerFee/updateFeature/:id.
func (h *PricingHandler) UpdateFeatureHandler(c *gin.Context) {
	var req models.FeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError(err.Error()))
		return
	}

	updated, err := h.Service.UpdateFeature(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Feature updated", updated)
}

// DeleteFeatureHandler handles DELETE /registerFee/deleteFeature/:id.
func (h *PricingHandler) DeleteFeatureHandler(c *gin.Context) {
	if err := h.Service.DeleteFeature(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Feature deleted", nil)
}

// ReorderFeaturesHandler handles PUT /registerFee/reorderFeatures.
func (h *PricingHandler) ReorderFeaturesHandler(c *gin.Context) {
	var req struct {
		Items []models.FeatureOrderItem `json:"items" binding:"required,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError(err.Error()))
		return
	}

	features, err := h.Service.ReorderFeatures(c.Request.Context(), req.Items)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Features reordered", features)
}

// ToggleFeatureHandler handles PUT /registerFee/toggleFeature/:id.
func (h *PricingHandler) ToggleFeatureHandler(c *gin.Context) {
	updated, err := h.Service.ToggleFeature(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Feature toggled", updated)
}

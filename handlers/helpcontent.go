// File: handlers/helpcontent.go
package handlers

import (
	"net/http"

	"partnerhub/models"
	"partnerhub/utils"

	"github.com/gin-gonic/gin"
)

// CreateHelpContentHandler handles POST /registerFee/createHelpContent.
func (h *PricingHandler) CreateHelpContentHandler(c *gin.Context) {
	var req models.HelpContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError(err.Error()))
		return
	}

	created, err := h.Service.CreateHelpContent(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, "Help content created", created)
}

// GetHelpContentHandler handles GET /registerFee/getHelpContent.
func (h *PricingHandler) GetHelpContentHandler(c *gin.Context) {
	entries, err := h.Service.ListHelpContent(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "", entries)
}

// UpdateHelpContentHandler handles PUT /registerFee/updateHelpContent/:id.
func (h *PricingHandler) UpdateHelpContentHandler(c *gin.Context) {
	var req models.HelpContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError(err.Error()))
		return
	}

	updated, err := h.Service.UpdateHelpContent(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Help content updated", updated)
}

// DeleteHelpContentHandler handles DELETE /registerFee/deleteHelpContent/:id.
func (h *PricingHandler) DeleteHelpContentHandler(c *gin.Context) {
	if err := h.Service.DeleteHelpContent(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Help content deleted", nil)
}

// GetHelpCategoriesHandler handles GET /registerFee/getHelpCategories.
func (h *PricingHandler) GetHelpCategoriesHandler(c *gin.Context) {
	categories, err := h.Service.ListHelpCategories(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "", categories)
}

// SearchHelpContentHandler handles GET /registerFee/searchHelpContent?q=...
func (h *PricingHandler) SearchHelpContentHandler(c *gin.Context) {
	entries, err := h.Service.SearchHelpContent(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "", entries)
}

// File: handlers/product.go
package handlers

import (
	"net/http"

	"partnerhub/middleware"
	"partnerhub/models"
	"partnerhub/services/product"
	"partnerhub/utils"

	"github.com/gin-gonic/gin"
)

// ProductHandler exposes the partner-scoped product catalog.
type ProductHandler struct {
	Service product.ProductService
}

func NewProductHandler(svc product.ProductService) *ProductHandler {
	return &ProductHandler{Service: svc}
}

// CreateProductHandler handles POST /products.
func (h *ProductHandler) CreateProductHandler(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError(err.Error()))
		return
	}

	created, err := h.Service.Create(c.Request.Context(), middleware.PartnerID(c), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, "Product created", created)
}

// ListProductsHandler handles GET /products.
func (h *ProductHandler) ListProductsHandler(c *gin.Context) {
	products, err := h.Service.List(c.Request.Context(), middleware.PartnerID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "", products)
}

// GetProductHandler handles GET /products/:id.
func (h *ProductHandler) GetProductHandler(c *gin.Context) {
	prod, err := h.Service.Get(c.Request.Context(), middleware.PartnerID(c), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "", prod)
}

// UpdateProductHandler handles PUT /products/:id.
func (h *ProductHandler) UpdateProductHandler(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError(err.Error()))
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), middleware.PartnerID(c), c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Product updated", updated)
}

// DeleteProductHandler handles DELETE /products/:id.
func (h *ProductHandler) DeleteProductHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), middleware.PartnerID(c), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Product deleted", nil)
}

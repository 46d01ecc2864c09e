// File: handlers/partner.go
package handlers

import (
	"net/http"

	"partnerhub/middleware"
	"partnerhub/services/partner"
	"partnerhub/utils"

	"github.com/gin-gonic/gin"
)

// PartnerHandler exposes partner account management.
type PartnerHandler struct {
	Service partner.PartnerService
}

func NewPartnerHandler(svc partner.PartnerService) *PartnerHandler {
	return &PartnerHandler{Service: svc}
}

// RegisterPartnerHandler handles POST /partners/register.
func (h *PartnerHandler) RegisterPartnerHandler(c *gin.Context) {
	var req partner.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError(err.Error()))
		return
	}

	created, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, "Partner registered, OTP sent", created)
}

// VerifyPartnerOTPHandler handles POST /partners/verify-otp.
func (h *PartnerHandler) VerifyPartnerOTPHandler(c *gin.Context) {
	var req partner.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError(err.Error()))
		return
	}

	verified, err := h.Service.VerifyOTP(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Phone verified", verified)
}

// AuthenticatePartnerHandler handles POST /partners/login.
func (h *PartnerHandler) AuthenticatePartnerHandler(c *gin.Context) {
	var req partner.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError(err.Error()))
		return
	}

	authed, err := h.Service.Authenticate(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Authenticated", authed)
}

// CompletePartnerProfileHandler handles PUT /partners/complete-profile.
func (h *PartnerHandler) CompletePartnerProfileHandler(c *gin.Context) {
	var req partner.CompleteProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError(err.Error()))
		return
	}

	updated, err := h.Service.CompleteProfile(c.Request.Context(), middleware.PartnerID(c), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Profile completed", updated)
}

// GetPartnerProfileHandler handles GET /partners/me.
func (h *PartnerHandler) GetPartnerProfileHandler(c *gin.Context) {
	p, err := h.Service.GetByID(c.Request.Context(), middleware.PartnerID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "", p)
}

// DeactivatePartnerHandler handles DELETE /partners/me.
func (h *PartnerHandler) DeactivatePartnerHandler(c *gin.Context) {
	if err := h.Service.Deactivate(c.Request.Context(), middleware.PartnerID(c)); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Account deactivated", nil)
}

// RevokePartnerTokenHandler handles DELETE /partners/revoke.
func (h *PartnerHandler) RevokePartnerTokenHandler(c *gin.Context) {
	if err := h.Service.RevokeToken(c.Request.Context(), middleware.PartnerID(c)); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Token revoked", nil)
}

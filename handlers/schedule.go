// File: handlers/schedule.go
package handlers

import (
	"net/http"

	"partnerhub/middleware"
	"partnerhub/models"
	"partnerhub/services/schedule"
	"partnerhub/utils"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler exposes slot availability and booking.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// SetupSlotsHandler handles POST /schedules/setup.
func (h *ScheduleHandler) SetupSlotsHandler(c *gin.Context) {
	var req models.SetupSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError(err.Error()))
		return
	}

	sched, err := h.Service.SetupSlots(c.Request.Context(), middleware.PartnerID(c), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Slots published", sched)
}

// GetAvailableSlotsHandler handles GET /schedules/availability.
func (h *ScheduleHandler) GetAvailableSlotsHandler(c *gin.Context) {
	var req models.AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError(err.Error()))
		return
	}

	slots, err := h.Service.GetAvailableSlots(c.Request.Context(), middleware.PartnerID(c), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "", slots)
}

// GetScheduleHandler handles GET /schedules/:serviceId/:date.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	sched, err := h.Service.GetSchedule(c.Request.Context(), middleware.PartnerID(c), c.Param("serviceId"), c.Param("date"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "", sched)
}

// BookSlotHandler handles POST /schedules/book.
func (h *ScheduleHandler) BookSlotHandler(c *gin.Context) {
	var req models.BookSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError(err.Error()))
		return
	}
	// The schedule owner is always the authenticated partner.
	req.PartnerID = middleware.PartnerID(c)

	slot, err := h.Service.BookSlot(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, "Slot booked", slot)
}

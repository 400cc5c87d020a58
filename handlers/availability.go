package handlers

import (
	"net/http"

	"shutterbook/models"
	"shutterbook/services/scheduling"
	"shutterbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the weekly-template and open-slot endpoints.
type AvailabilityHandler struct {
	Service scheduling.SchedulingService
	Logger  *zap.Logger
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc scheduling.SchedulingService, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, Logger: logger}
}

// GetAvailabilityHandler returns the caller's weekly template, creating the
// default all-unavailable template on first read.
func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	photographerID, ok := photographerFromContext(c)
	if !ok {
		return
	}

	avail, err := h.Service.GetAvailability(c.Request.Context(), photographerID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "availability": avail})
}

// UpdateAvailabilityHandler replaces the caller's weekly template wholesale.
func (h *AvailabilityHandler) UpdateAvailabilityHandler(c *gin.Context) {
	photographerID, ok := photographerFromContext(c)
	if !ok {
		return
	}

	var req models.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Warn("Invalid availability update request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	avail, err := h.Service.SetAvailability(c.Request.Context(), photographerID, req)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "availability": avail})
}

// GetOpenSlotsHandler is the public slot-derivation endpoint:
// GET /api/availability/:photographerId/slots?serviceId=&date=
func (h *AvailabilityHandler) GetOpenSlotsHandler(c *gin.Context) {
	photographerID := c.Param("photographerId")
	serviceID := c.Query("serviceId")
	date := c.Query("date")
	if serviceID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "serviceId and date query parameters are required")
		return
	}

	slots, err := h.Service.DeriveOpenSlots(c.Request.Context(), photographerID, serviceID, date)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "slots": slots})
}

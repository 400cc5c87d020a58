package handlers

import (
	"net/http"

	"shutterbook/models"
	"shutterbook/services/scheduling"
	"shutterbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking endpoints.
type BookingHandler struct {
	Service scheduling.SchedulingService
	Logger  *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc scheduling.SchedulingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBookingHandler is the public booking-request endpoint.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Warn("Invalid booking request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	booking, err := h.Service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "booking": booking})
}

// ListBookingsHandler returns the caller's bookings, optionally filtered by
// ?status=, sorted by date then start time ascending.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	photographerID, ok := photographerFromContext(c)
	if !ok {
		return
	}

	bookings, err := h.Service.ListBookings(c.Request.Context(), photographerID, c.Query("status"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

// UpdateBookingStatusHandler applies an owner-only status change.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	photographerID, ok := photographerFromContext(c)
	if !ok {
		return
	}

	bookingID := c.Param("id")
	var req models.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing or invalid status in request body")
		return
	}

	booking, err := h.Service.UpdateStatus(c.Request.Context(), bookingID, photographerID, req.Status)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "booking": booking})
}

// CancelBookingHandler sets the booking to cancelled; bookings are never
// physically deleted.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	photographerID, ok := photographerFromContext(c)
	if !ok {
		return
	}

	booking, err := h.Service.CancelBooking(c.Request.Context(), c.Param("id"), photographerID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "booking": booking})
}

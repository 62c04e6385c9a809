// File: handlers/booking.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pitchside/models"
	bookingSvc "pitchside/services/booking"
	"pitchside/utils"
)

// BookingHandler exposes the booking engine over HTTP.
type BookingHandler struct {
	Service bookingSvc.BookingService
}

// ListBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	filter := models.BookingListFilter{
		Status: models.BookingStatus(c.Query("status")),
		Date:   c.Query("date"),
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	bookings, pagination, err := h.Service.List(c.Request.Context(), filter)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "pagination": pagination})
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var in models.BookingCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload", err.Error())
		return
	}
	b, err := h.Service.Create(c.Request.Context(), in)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": b})
}

// AvailableSlotsHandler handles GET /api/bookings/available-slots.
func (h *BookingHandler) AvailableSlotsHandler(c *gin.Context) {
	slots, err := h.Service.AvailableSlots(c.Request.Context(), c.Query("coach_id"), c.Query("date"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availableSlots": slots})
}

// UpdateBookingHandler handles PUT /api/admin/bookings/:id.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	var in models.BookingUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking update payload", err.Error())
		return
	}
	b, err := h.Service.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// CancelBookingHandler handles DELETE /api/admin/bookings/:id. Cancelling
// frees the slot rather than erasing the record.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	b, err := h.Service.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

package handlers

import (
	"errors"
	"net/http"

	"fixly/models"
	"fixly/services/booking"
	"fixly/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes booking endpoints.
type BookingHandler struct {
	BookingService booking.BookingService
}

// bookingErrorStatus maps the booking error taxonomy onto HTTP codes.
func bookingErrorStatus(err error) int {
	var ve *booking.ValidationError
	var nf *booking.NotFoundError
	var cf *booking.ConflictError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &cf):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	created, err := h.BookingService.CreateBooking(userID, req)
	if err != nil {
		utils.JSONError(c, bookingErrorStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetUserBookingsHandler handles GET /api/bookings/user/:id. Callers may only
// list their own bookings.
func (h *BookingHandler) GetUserBookingsHandler(c *gin.Context) {
	userID := c.Param("id")
	if c.GetString("userID") != userID {
		utils.JSONError(c, http.StatusForbidden, "Cannot list another user's bookings", "")
		return
	}

	bookings, err := h.BookingService.GetUserBookings(userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error(), "")
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// CancelBookingHandler handles DELETE /api/bookings/:id.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	if err := h.BookingService.CancelBooking(c.GetString("userID"), c.Param("id")); err != nil {
		utils.JSONError(c, bookingErrorStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

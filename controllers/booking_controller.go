package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"hotel-booking/middleware"
	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

// BookingController serves the public booking endpoints. User identity is
// read from the request context once and handed to the service
// explicitly.
type BookingController struct {
	Service *services.BookingService
}

func NewBookingController(service *services.BookingService) *BookingController {
	return &BookingController{Service: service}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// CreateBooking handles POST /api/bookings/rooms/:room_id. Works with or
// without authentication; a valid token attaches the booking to the
// caller's account.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("room_id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}

	var req services.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	booking, fieldErrs, err := bc.Service.CreateBooking(c.Request.Context(), uint(roomID), req, middleware.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room not found")
			return
		}
		log.Printf("booking create failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to create booking")
		return
	}
	if fieldErrs.HasErrors() {
		utils.JSONFieldErrors(c, fieldErrs)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// GetBookingDetails handles GET /api/bookings/:id (confirmation page).
func (bc *BookingController) GetBookingDetails(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := bc.Service.GetBooking(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking not found")
			return
		}
		log.Printf("booking lookup failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to load booking")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"booking": booking,
		"nights":  booking.Nights(),
	})
}

// GetHistory handles GET /api/bookings/history?page= for the
// authenticated user.
func (bc *BookingController) GetHistory(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	bookings, total, err := bc.Service.History(c.Request.Context(), *userID, page)
	if err != nil {
		log.Printf("booking history failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to load booking history")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"bookings": bookings,
		"total":    total,
		"page":     page,
	})
}

// CancelBooking handles POST /api/bookings/:id/cancel?next=admin.
// Owner or staff only; cancelling twice reports "already cancelled"
// without error. Staff coming from the admin list get a redirect hint.
func (bc *BookingController) CancelBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, alreadyCancelled, err := bc.Service.CancelBooking(c.Request.Context(), id, middleware.CurrentUserID(c), middleware.IsStaff(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, "booking not found")
		case errors.Is(err, services.ErrNotAllowed):
			utils.JSONError(c, http.StatusForbidden, "You do not have permission to cancel this booking.")
		default:
			log.Printf("booking cancel failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "failed to cancel booking")
		}
		return
	}

	resp := gin.H{"booking": booking}
	if alreadyCancelled {
		resp["message"] = "This booking is already cancelled."
	} else {
		resp["message"] = "Booking has been cancelled."
	}
	if middleware.IsStaff(c) && c.Query("next") == "admin" {
		resp["next"] = "admin"
	}

	utils.JSONSuccess(c, http.StatusOK, resp)
}

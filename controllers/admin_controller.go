package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

// AdminController serves the staff booking-management endpoints. Routes
// behind it are mounted under StaffRequired.
type AdminController struct {
	Bookings *services.BookingService
	Exports  *services.ExportService
}

func NewAdminController(bookings *services.BookingService, exports *services.ExportService) *AdminController {
	return &AdminController{Bookings: bookings, Exports: exports}
}

// ListBookings handles GET /api/admin/bookings?status=&page=.
func (ac *AdminController) ListBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	status := c.Query("status")

	bookings, total, err := ac.Bookings.ListBookings(c.Request.Context(), status, page)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			utils.JSONError(c, http.StatusBadRequest, "invalid status filter")
			return
		}
		log.Printf("admin booking list failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"bookings": bookings,
		"total":    total,
		"page":     page,
	})
}

// UpdateBooking handles PATCH /api/admin/bookings/:id for direct status
// edits and date/guest corrections. The total is recomputed on save.
func (ac *AdminController) UpdateBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var patch services.BookingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	booking, fieldErrs, err := ac.Bookings.UpdateBooking(c.Request.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, "booking not found")
		case errors.Is(err, services.ErrInvalidStatus):
			utils.JSONError(c, http.StatusBadRequest, "status must be pending, confirmed or cancelled")
		default:
			log.Printf("admin booking update failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "failed to update booking")
		}
		return
	}
	if fieldErrs.HasErrors() {
		utils.JSONFieldErrors(c, fieldErrs)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, booking)
}

// ExportBookings handles GET /api/admin/bookings/export and streams an
// XLSX workbook.
func (ac *AdminController) ExportBookings(c *gin.Context) {
	f, err := ac.Exports.BookingsXLSX(c.Request.Context())
	if err != nil {
		log.Printf("bookings export failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to export bookings")
		return
	}
	defer f.Close()

	filename := "bookings-" + time.Now().Format("20060102-150405") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		log.Printf("bookings export write failed: %v", err)
	}
}

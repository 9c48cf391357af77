package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"hotel-booking/config"
	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

// RoomController serves the public search and detail endpoints through
// RoomService.
type RoomController struct {
	Service *services.RoomService
}

func NewRoomController(service *services.RoomService) *RoomController {
	return &RoomController{Service: service}
}

// SearchRooms handles GET /api/rooms?check_in=&check_out=&category=.
// Without dates it is a plain availability-flag listing; with both dates
// it excludes rooms blocked by a confirmed overlapping booking.
func (rc *RoomController) SearchRooms(c *gin.Context) {
	search := services.RoomSearch{CategorySlug: strings.TrimSpace(c.Query("category"))}

	rawCheckIn := strings.TrimSpace(c.Query("check_in"))
	rawCheckOut := strings.TrimSpace(c.Query("check_out"))
	if rawCheckIn != "" || rawCheckOut != "" {
		errs := utils.FieldErrors{}
		var checkIn, checkOut time.Time
		var err error
		if checkIn, err = services.ParseDate(rawCheckIn); err != nil {
			errs.Add("check_in", "Enter a valid date (YYYY-MM-DD).")
		}
		if checkOut, err = services.ParseDate(rawCheckOut); err != nil {
			errs.Add("check_out", "Enter a valid date (YYYY-MM-DD).")
		}
		if !errs.HasErrors() {
			errs = services.ValidateStayDates(checkIn, checkOut, false)
		}
		if errs.HasErrors() {
			utils.JSONFieldErrors(c, errs)
			return
		}
		search.CheckIn = &checkIn
		search.CheckOut = &checkOut
	}

	rooms, err := rc.Service.SearchRooms(c.Request.Context(), search)
	if err != nil {
		log.Printf("room search failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to search rooms")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"rooms":     rooms,
		"check_in":  rawCheckIn,
		"check_out": rawCheckOut,
	})
}

// GetRoomByID handles GET /api/rooms/:id with gallery and amenities.
func (rc *RoomController) GetRoomByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}

	room, err := rc.Service.GetRoom(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room not found")
			return
		}
		log.Printf("room lookup failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to load room")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"room":      room,
		"amenities": room.AmenitiesList(),
	})
}

// ----------------------------------------------------
// Staff: room CRUD
// ----------------------------------------------------

func CreateRoom(c *gin.Context) {
	var room models.Room

	if err := c.ShouldBindJSON(&room); err != nil {
		log.Printf("JSON BINDING ERROR (400): %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	room.Name = strings.TrimSpace(room.Name)
	if room.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Room name is required."})
		return
	}
	if room.PricePerNight < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Price per night must not be negative."})
		return
	}
	if room.MaxGuests < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Max guests must be at least 1."})
		return
	}

	// FK existence checks so the DB never sees dangling references
	var hotel models.Hotel
	if err := config.DB.First(&hotel, room.HotelID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": fmt.Sprintf("Invalid hotelId %d.", room.HotelID)})
		return
	}
	var category models.RoomCategory
	if err := config.DB.First(&category, room.CategoryID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": fmt.Sprintf("Invalid categoryId %d.", room.CategoryID)})
		return
	}

	if result := config.DB.Create(&room); result.Error != nil {
		log.Printf("DB ERROR creating room: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, room)
}

func UpdateRoom(c *gin.Context) {
	id := c.Param("id")
	var updateData map[string]interface{}

	if err := c.ShouldBindJSON(&updateData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	delete(updateData, "id")
	delete(updateData, "created_at")
	delete(updateData, "updated_at")
	delete(updateData, "deleted_at")

	if price, ok := updateData["price_per_night"].(float64); ok && price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Price per night must not be negative."})
		return
	}
	if guests, ok := updateData["max_guests"].(float64); ok && guests < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Max guests must be at least 1."})
		return
	}

	result := config.DB.Model(&models.Room{}).Where("id = ?", id).Updates(updateData)
	if result.Error != nil {
		log.Printf("Update Error for Room %s: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Update failed"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": fmt.Sprintf("Room with ID %s not found.", id)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Room updated successfully"})
}

func DeleteRoom(c *gin.Context) {
	id := c.Param("id")

	result := config.DB.Where("id = ?", id).Delete(&models.Room{})
	if result.Error != nil {
		log.Printf("DB Error during deletion (ID: %s): %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to delete room."})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": fmt.Sprintf("Room with ID %s not found.", id)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Room deleted successfully"})
}

// ----------------------------------------------------
// Staff: room gallery
// ----------------------------------------------------

func AddRoomImage(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid room id"})
		return
	}

	var room models.Room
	if err := config.DB.First(&room, uint(roomID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Room not found."})
		return
	}

	var image models.RoomImage
	if err := c.ShouldBindJSON(&image); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}
	if strings.TrimSpace(image.ImageURL) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Image URL is required."})
		return
	}

	image.RoomID = room.ID
	if result := config.DB.Create(&image); result.Error != nil {
		log.Printf("DB ERROR creating room image: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, image)
}

func DeleteRoomImage(c *gin.Context) {
	id := c.Param("id")

	result := config.DB.Where("id = ?", id).Delete(&models.RoomImage{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to delete image."})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Image not found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Image deleted successfully"})
}

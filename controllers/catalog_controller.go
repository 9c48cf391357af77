package controllers

import (
	"log"
	"net/http"
	"strconv"

	"hotel-booking/config"
	"hotel-booking/models"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

const hotelsPageSize = 9

// ----------------------------------------------------
// Landing page (GET /)
// ----------------------------------------------------

func Home(c *gin.Context) {
	var categories []models.RoomCategory
	config.DB.Order("slug").Find(&categories)

	var hotels []models.Hotel
	config.DB.Where("is_active = ?", true).Limit(6).Find(&hotels)

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"categories": categories,
		"hotels":     hotels,
	})
}

// ----------------------------------------------------
// Hotel listing (GET /api/hotels)
// ----------------------------------------------------

func GetHotels(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	var total int64
	config.DB.Model(&models.Hotel{}).Where("is_active = ?", true).Count(&total)

	var hotels []models.Hotel
	if err := config.DB.
		Where("is_active = ?", true).
		Order("name").
		Limit(hotelsPageSize).
		Offset((page - 1) * hotelsPageSize).
		Find(&hotels).Error; err != nil {
		log.Printf("DB ERROR listing hotels: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to list hotels")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"hotels": hotels,
		"total":  total,
		"page":   page,
	})
}

// ----------------------------------------------------
// Hotel detail with rooms (GET /api/hotels/:id)
// ----------------------------------------------------

func GetHotelByID(c *gin.Context) {
	id := c.Param("id")

	var hotel models.Hotel
	err := config.DB.
		Where("is_active = ?", true).
		Preload("Rooms", "is_available = ?", true).
		Preload("Rooms.Category").
		First(&hotel, "id = ?", id).Error
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Hotel not found.")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, hotel)
}

// ----------------------------------------------------
// Staff: hotel CRUD
// ----------------------------------------------------

func CreateHotel(c *gin.Context) {
	var hotel models.Hotel

	if err := c.ShouldBindJSON(&hotel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}
	if hotel.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Hotel name is required."})
		return
	}

	if result := config.DB.Create(&hotel); result.Error != nil {
		log.Printf("DB ERROR creating hotel: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, hotel)
}

func UpdateHotel(c *gin.Context) {
	id := c.Param("id")
	var updateData map[string]interface{}

	if err := c.ShouldBindJSON(&updateData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	// protect immutable fields
	delete(updateData, "id")
	delete(updateData, "created_at")
	delete(updateData, "updated_at")
	delete(updateData, "deleted_at")

	result := config.DB.Model(&models.Hotel{}).Where("id = ?", id).Updates(updateData)
	if result.Error != nil {
		log.Printf("Update Error for Hotel %s: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Update failed"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Hotel not found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Hotel updated successfully"})
}

func DeleteHotel(c *gin.Context) {
	id := c.Param("id")

	result := config.DB.Where("id = ?", id).Delete(&models.Hotel{})
	if result.Error != nil {
		log.Printf("DB Error deleting hotel %s: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to delete hotel."})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Hotel not found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Hotel deleted successfully"})
}

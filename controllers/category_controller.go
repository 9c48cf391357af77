package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"hotel-booking/config"
	"hotel-booking/models"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

func GetCategories(c *gin.Context) {
	var categories []models.RoomCategory
	config.DB.Order("slug").Find(&categories)
	utils.JSONSuccess(c, http.StatusOK, categories)
}

func CreateCategory(c *gin.Context) {
	var category models.RoomCategory

	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	category.Slug = strings.TrimSpace(strings.ToLower(category.Slug))
	if category.Name == "" || category.Slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Category name and slug are required."})
		return
	}

	if result := config.DB.Create(&category); result.Error != nil {
		// unique index on slug
		if strings.Contains(result.Error.Error(), "Duplicate entry") || strings.Contains(result.Error.Error(), "UNIQUE constraint failed") {
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": fmt.Sprintf("Category slug '%s' already exists.", category.Slug),
			})
			return
		}
		log.Printf("DB ERROR creating category: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, category)
}

func UpdateCategory(c *gin.Context) {
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

	result := config.DB.Model(&models.RoomCategory{}).Where("id = ?", id).Updates(updateData)
	if result.Error != nil {
		if strings.Contains(result.Error.Error(), "Duplicate entry") || strings.Contains(result.Error.Error(), "UNIQUE constraint failed") {
			c.JSON(http.StatusConflict, gin.H{"status": "error", "message": "Category slug already exists."})
			return
		}
		log.Printf("Update Error for Category %s: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Update failed"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Category not found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Category updated successfully"})
}

func DeleteCategory(c *gin.Context) {
	id := c.Param("id")

	result := config.DB.Where("id = ?", id).Delete(&models.RoomCategory{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to delete category."})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Category not found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Category deleted successfully"})
}

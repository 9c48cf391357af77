package models

import (
	"gorm.io/gorm"
)

// RoomCategory: Single, Double, Deluxe, Suite, Family.
type RoomCategory struct {
	gorm.Model

	Name        string `json:"name" gorm:"size:50"`
	Slug        string `json:"slug" gorm:"uniqueIndex;size:60"`
	Description string `json:"description" gorm:"type:text"`
}

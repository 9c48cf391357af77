package models

import (
	"gorm.io/gorm"
)

// Hotel is a property holding rooms. Long-lived reference data, edited
// only through the staff endpoints.
type Hotel struct {
	gorm.Model

	Name        string `json:"name" gorm:"size:200"`
	Address     string `json:"address" gorm:"type:text"`
	Phone       string `json:"phone" gorm:"size:20"`
	Email       string `json:"email" gorm:"size:254"`
	Description string `json:"description" gorm:"type:text"`
	ImageURL    string `json:"imageUrl" gorm:"column:image_url;size:500"`
	IsActive    bool   `json:"isActive" gorm:"column:is_active;default:true"`

	Rooms []Room `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
}

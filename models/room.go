package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Room struct {
	gorm.Model

	HotelID    uint `json:"hotelId" gorm:"index;column:hotel_id"`
	CategoryID uint `json:"categoryId" gorm:"index;column:category_id"`

	Name          string         `json:"name" gorm:"size:100"`
	Description   string         `json:"description" gorm:"type:text"`
	PricePerNight float64        `json:"pricePerNight" gorm:"column:price_per_night"`
	MaxGuests     int            `json:"maxGuests" gorm:"column:max_guests;default:2"`
	Amenities     datatypes.JSON `json:"amenities,omitempty"`
	IsAvailable   bool           `json:"isAvailable" gorm:"column:is_available;default:true"`

	Hotel    Hotel        `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
	Category RoomCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Images   []RoomImage  `gorm:"foreignKey:RoomID" json:"images,omitempty"`
}

// AmenitiesList decodes the Amenities JSON column into a string slice.
// Returns an empty slice for a null or malformed column.
func (r *Room) AmenitiesList() []string {
	if len(r.Amenities) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(r.Amenities, &out); err != nil {
		return []string{}
	}
	return out
}

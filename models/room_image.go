package models

import (
	"gorm.io/gorm"
)

// RoomImage is one gallery entry for a room. At most one image per room is
// expected to carry IsPrimary; listings order by is_primary DESC so the
// primary (or oldest) image comes first.
type RoomImage struct {
	gorm.Model

	RoomID    uint   `json:"roomId" gorm:"index;column:room_id"`
	ImageURL  string `json:"imageUrl" gorm:"column:image_url;size:500"`
	Caption   string `json:"caption" gorm:"size:200"`
	IsPrimary bool   `json:"isPrimary" gorm:"column:is_primary;default:false"`
}

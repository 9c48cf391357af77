package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// ValidBookingStatus reports whether s is one of the three booking states.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking reserves a room for the half-open date window [CheckIn, CheckOut).
// UserID is nullable: guest checkout creates bookings with no account.
type Booking struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID *uint `gorm:"index;column:user_id" json:"userId,omitempty"`
	RoomID uint  `gorm:"index;column:room_id" json:"roomId"`

	ReferenceCode string    `gorm:"column:reference_code;size:64;uniqueIndex" json:"referenceCode"`
	CheckIn       time.Time `gorm:"column:check_in" json:"checkIn"`
	CheckOut      time.Time `gorm:"column:check_out" json:"checkOut"`
	NumGuests     int       `gorm:"column:num_guests;default:1" json:"numGuests"`
	TotalPrice    float64   `gorm:"column:total_price" json:"totalPrice"`
	Status        string    `gorm:"column:status;size:20;default:pending" json:"status"`

	GuestName       string `gorm:"column:guest_name;size:200" json:"guestName"`
	GuestEmail      string `gorm:"column:guest_email;size:254" json:"guestEmail"`
	GuestPhone      string `gorm:"column:guest_phone;size:20" json:"guestPhone"`
	SpecialRequests string `gorm:"column:special_requests;type:text" json:"specialRequests,omitempty"`

	Room Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// Nights is the length of the stay in whole nights.
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

// TotalFor computes the booking total from a nightly rate.
func (b *Booking) TotalFor(pricePerNight float64) float64 {
	return float64(b.Nights()) * pricePerNight
}

// Overlaps reports whether the booking window intersects [ci, co).
// Half-open intervals: back-to-back stays sharing a turnover day do not
// overlap.
func (b *Booking) Overlaps(ci, co time.Time) bool {
	return b.CheckIn.Before(co) && b.CheckOut.After(ci)
}

func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// OwnedBy reports whether the booking belongs to the given user. Guest
// bookings (nil UserID) are owned by nobody.
func (b *Booking) OwnedBy(userID uint) bool {
	return b.UserID != nil && *b.UserID == userID
}

package services

import (
	"fmt"
	"testing"
	"time"

	"hotel-booking/config"
	"hotel-booking/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory sqlite store with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

// seedRoom creates a hotel, a category and one room under them.
func seedRoom(t *testing.T, db *gorm.DB, name string, price float64, maxGuests int) *models.Room {
	t.Helper()

	hotel := models.Hotel{Name: "Test Hotel " + name, Address: "1 Test Street", IsActive: true}
	require.NoError(t, db.Create(&hotel).Error)

	category := models.RoomCategory{Name: "Category " + name, Slug: "category-" + name}
	require.NoError(t, db.Create(&category).Error)

	room := models.Room{
		HotelID:       hotel.ID,
		CategoryID:    category.ID,
		Name:          name,
		PricePerNight: price,
		MaxGuests:     maxGuests,
		IsAvailable:   true,
	}
	require.NoError(t, db.Create(&room).Error)
	return &room
}

func seedBooking(t *testing.T, db *gorm.DB, roomID uint, status string, ci, co time.Time) *models.Booking {
	t.Helper()
	booking := models.Booking{
		RoomID:        roomID,
		ReferenceCode: "BK-" + uuid.NewString()[:8],
		CheckIn:       ci,
		CheckOut:      co,
		NumGuests:     1,
		Status:        status,
		GuestName:     "Seed Guest",
		GuestEmail:    "seed@example.com",
	}
	require.NoError(t, db.Create(&booking).Error)
	return &booking
}

func futureDate(daysFromNow int) time.Time {
	return time.Now().AddDate(0, 0, daysFromNow).Truncate(24 * time.Hour)
}

package config

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"hotel-booking/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var seedCategories = []models.RoomCategory{
	{Name: "Single", Slug: "single-room", Description: "Single Room"},
	{Name: "Double", Slug: "double-room", Description: "Double Room"},
	{Name: "Deluxe", Slug: "deluxe-room", Description: "Deluxe Room"},
	{Name: "Suite", Slug: "suite-room", Description: "Suite Room"},
	{Name: "Family", Slug: "family-room", Description: "Family Room"},
}

var seedHotels = []models.Hotel{
	{Name: "Grand Plaza Hotel", Address: "100 Main Street, Downtown", Phone: "+1 555-100-1000", Email: "info@grandplaza.com", IsActive: true},
	{Name: "Sunset Resort & Spa", Address: "200 Ocean Drive, Beachfront", Phone: "+1 555-200-2000", Email: "hello@sunsetresort.com", IsActive: true},
	{Name: "Mountain View Lodge", Address: "300 Pine Road, Hillside", Phone: "+1 555-300-3000", Email: "stay@mountainview.com", IsActive: true},
	{Name: "City Center Inn", Address: "400 Commerce Ave, City Center", Phone: "+1 555-400-4000", Email: "book@citycenterinn.com", IsActive: true},
	{Name: "Riverside Suites", Address: "500 River Road, Riverside", Phone: "+1 555-500-5000", Email: "info@riversidesuites.com", IsActive: true},
	{Name: "Garden Hotel", Address: "600 Bloom Street, Garden District", Phone: "+1 555-600-6000", Email: "contact@gardenhotel.com", IsActive: true},
	{Name: "Lakeside Retreat", Address: "700 Lake View Drive", Phone: "+1 555-700-7000", Email: "reservations@lakesideretreat.com", IsActive: true},
	{Name: "Heritage Grand", Address: "800 Historic Square", Phone: "+1 555-800-8000", Email: "guest@heritagegrand.com", IsActive: true},
	{Name: "Skyline Tower Hotel", Address: "900 Skyline Blvd, Uptown", Phone: "+1 555-900-9000", Email: "book@skylinetower.com", IsActive: true},
	{Name: "Parkside Inn", Address: "1000 Park Avenue, Green Zone", Phone: "+1 555-000-0000", Email: "hello@parksideinn.com", IsActive: true},
}

// slug -> (min price, max price, max guests)
var categoryRoomConfig = map[string]struct {
	Low, High float64
	MaxGuests int
}{
	"single-room": {59, 89, 1},
	"double-room": {89, 129, 2},
	"deluxe-room": {129, 189, 3},
	"suite-room":  {189, 299, 4},
	"family-room": {149, 249, 6},
}

var defaultAmenities = []string{"WiFi", "TV", "AC", "Mini Bar", "Safe", "Coffee Maker"}

// SeedDatabase ensures reference data exists: the five room categories, a
// default staff login, and (when SEED_SAMPLE_DATA=true) sample hotels and
// rooms. Idempotent: existing rows are counted first and left alone.
func SeedDatabase(db *gorm.DB) {
	seedRoomCategories(db)
	seedStaffUser(db)

	if strings.EqualFold(envOrDefault("SEED_SAMPLE_DATA", "false"), "true") {
		seedSampleData(db)
	}
}

func seedRoomCategories(db *gorm.DB) {
	var count int64
	db.Model(&models.RoomCategory{}).Count(&count)
	if count > 0 {
		return
	}
	if err := db.Create(&seedCategories).Error; err != nil {
		log.Printf("warning: failed to seed room categories: %v", err)
		return
	}
	log.Println("Room categories seeded")
}

func seedStaffUser(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Where("is_staff = ?", true).Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("STAFF_PASSWORD", "staff123")), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("warning: failed to hash default staff password: %v", err)
		return
	}
	staff := models.User{
		Username: envOrDefault("STAFF_USERNAME", "staff@hotel.local"),
		Email:    envOrDefault("STAFF_USERNAME", "staff@hotel.local"),
		FullName: "Staff User",
		Password: string(hash),
		IsStaff:  true,
	}
	if err := db.Create(&staff).Error; err != nil {
		log.Printf("warning: failed to create default staff user: %v", err)
		return
	}
	log.Println("Default staff user seeded")
}

// seedSampleData creates 10 hotels and 10 rooms per category, prices
// spread evenly over the category range.
func seedSampleData(db *gorm.DB) {
	var hotelCount int64
	db.Model(&models.Hotel{}).Count(&hotelCount)
	if hotelCount > 0 {
		log.Println("Sample data already seeded")
		return
	}

	hotels := make([]models.Hotel, len(seedHotels))
	copy(hotels, seedHotels)
	for i := range hotels {
		hotels[i].Description = "Welcome to " + hotels[i].Name + ". We offer comfortable rooms and great service."
	}
	if err := db.Create(&hotels).Error; err != nil {
		log.Printf("warning: failed to seed hotels: %v", err)
		return
	}

	amenities, _ := json.Marshal(defaultAmenities)

	var categories []models.RoomCategory
	db.Order("slug").Find(&categories)

	roomCount := 0
	for _, category := range categories {
		cfg, ok := categoryRoomConfig[category.Slug]
		if !ok {
			continue
		}
		step := (cfg.High - cfg.Low) / 9
		for i := 0; i < 10; i++ {
			room := models.Room{
				HotelID:       hotels[i%len(hotels)].ID,
				CategoryID:    category.ID,
				Name:          fmt.Sprintf("%s Room %d", category.Name, 100+i),
				Description:   "Comfortable and well-appointed room with modern amenities.",
				PricePerNight: cfg.Low + step*float64(i),
				MaxGuests:     cfg.MaxGuests,
				Amenities:     datatypes.JSON(amenities),
				IsAvailable:   true,
			}
			if err := db.Create(&room).Error; err != nil {
				log.Printf("warning: failed to seed room %s: %v", room.Name, err)
				continue
			}
			roomCount++
		}
	}
	log.Printf("Sample data seeded: %d hotels, %d rooms", len(hotels), roomCount)
}

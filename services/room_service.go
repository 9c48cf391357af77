package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-booking/models"

	"gorm.io/gorm"
)

var ErrRoomNotFound = errors.New("room_not_found")

// RoomService wraps the catalog queries: room search with the
// availability filter, room detail, category listing.
type RoomService struct {
	DB    *gorm.DB
	Cache *AvailabilityCache
}

func NewRoomService(db *gorm.DB, cache *AvailabilityCache) *RoomService {
	return &RoomService{DB: db, Cache: cache}
}

// RoomSearch carries the optional search filters. CheckIn/CheckOut are
// set together or not at all; CategorySlug narrows to one category.
type RoomSearch struct {
	CheckIn      *time.Time
	CheckOut     *time.Time
	CategorySlug string
}

func (s *RoomSearch) hasDates() bool {
	return s.CheckIn != nil && s.CheckOut != nil
}

// SearchRooms returns rooms marked available, optionally narrowed by
// category. When a date range is given it also excludes rooms that have
// a confirmed booking overlapping [check_in, check_out). Pending and
// cancelled bookings never block a room: confirmation is a manual staff
// gate and only confirmed bookings reserve inventory.
func (s *RoomService) SearchRooms(ctx context.Context, search RoomSearch) ([]models.Room, error) {
	var cacheKey string
	if search.hasDates() && s.Cache != nil {
		cacheKey = s.Cache.Key(ctx, *search.CheckIn, *search.CheckOut, search.CategorySlug)
		var cached []models.Room
		if s.Cache.Get(ctx, cacheKey, &cached) {
			return cached, nil
		}
	}

	q := s.DB.WithContext(ctx).
		Model(&models.Room{}).
		Where("rooms.is_available = ?", true).
		Preload("Hotel").
		Preload("Category")

	if search.CategorySlug != "" {
		q = q.Joins("JOIN room_categories ON room_categories.id = rooms.category_id").
			Where("room_categories.slug = ?", search.CategorySlug)
	}

	if search.hasDates() {
		// Half-open interval overlap: an existing booking blocks when
		// booking.check_in < co AND booking.check_out > ci.
		overlapping := s.DB.Model(&models.Booking{}).
			Select("room_id").
			Where("status = ? AND check_in < ? AND check_out > ?",
				models.BookingStatusConfirmed, *search.CheckOut, *search.CheckIn)
		q = q.Where("rooms.id NOT IN (?)", overlapping)
	}

	var rooms []models.Room
	if err := q.Order("rooms.hotel_id, rooms.name").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to search rooms: %w", err)
	}

	if cacheKey != "" {
		s.Cache.Set(ctx, cacheKey, rooms)
	}
	return rooms, nil
}

// GetRoom loads one room with hotel, category and gallery (primary image
// first).
func (s *RoomService) GetRoom(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	err := s.DB.WithContext(ctx).
		Preload("Hotel").
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_primary DESC, id")
		}).
		First(&room, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room %d: %w", id, err)
	}
	return &room, nil
}

// ListCategories returns all room categories in slug order.
func (s *RoomService) ListCategories(ctx context.Context) ([]models.RoomCategory, error) {
	var categories []models.RoomCategory
	if err := s.DB.WithContext(ctx).Order("slug").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

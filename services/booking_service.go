package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hotel-booking/models"
	"hotel-booking/utils"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound = errors.New("booking_not_found")
	ErrNotAllowed      = errors.New("not_allowed")
	ErrInvalidStatus   = errors.New("invalid_status")
)

const (
	historyPageSize = 10
	adminPageSize   = 20
)

// BookingService holds the booking lifecycle: create with validation and
// pricing, confirmation lookup, history, cancellation, staff edits. Every
// persist path recomputes the total from the room's nightly rate.
type BookingService struct {
	DB    *gorm.DB
	Cache *AvailabilityCache
}

func NewBookingService(db *gorm.DB, cache *AvailabilityCache) *BookingService {
	return &BookingService{DB: db, Cache: cache}
}

// BookingRequest is the booking form payload.
type BookingRequest struct {
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	NumGuests       int    `json:"num_guests"`
	GuestName       string `json:"guest_name"`
	GuestEmail      string `json:"guest_email"`
	GuestPhone      string `json:"guest_phone"`
	SpecialRequests string `json:"special_requests"`
}

// CreateBooking validates the request against the room's constraints and
// persists a pending booking. userID is nil for guest checkout. Field
// failures come back in the FieldErrors return; no partial save occurs.
//
// There is deliberately no overlap check here: pending bookings do not
// reserve inventory, and double submissions for the same window are
// resolved by staff at confirmation time.
func (s *BookingService) CreateBooking(ctx context.Context, roomID uint, req BookingRequest, userID *uint) (*models.Booking, utils.FieldErrors, error) {
	var room models.Room
	if err := s.DB.WithContext(ctx).First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrRoomNotFound
		}
		return nil, nil, fmt.Errorf("db error checking room %d: %w", roomID, err)
	}

	errs := utils.FieldErrors{}
	checkIn, ciErr := ParseDate(req.CheckIn)
	if ciErr != nil {
		errs.Add("check_in", "Enter a valid date (YYYY-MM-DD).")
	}
	checkOut, coErr := ParseDate(req.CheckOut)
	if coErr != nil {
		errs.Add("check_out", "Enter a valid date (YYYY-MM-DD).")
	}
	if errs.HasErrors() {
		return nil, errs, nil
	}

	if errs = ValidateBookingRequest(&room, checkIn, checkOut, req.NumGuests, req.GuestName, req.GuestEmail); errs.HasErrors() {
		return nil, errs, nil
	}

	booking := &models.Booking{
		UserID:          userID,
		RoomID:          room.ID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		NumGuests:       req.NumGuests,
		Status:          models.BookingStatusPending,
		GuestName:       strings.TrimSpace(req.GuestName),
		GuestEmail:      strings.TrimSpace(req.GuestEmail),
		GuestPhone:      strings.TrimSpace(req.GuestPhone),
		SpecialRequests: req.SpecialRequests,
	}
	booking.TotalPrice = booking.TotalFor(room.PricePerNight)

	// unique index on reference_code; regenerate on collision
	var createErr error
	for attempt := 0; attempt < 3; attempt++ {
		booking.ReferenceCode = utils.NewReferenceCode()
		createErr = s.DB.WithContext(ctx).Create(booking).Error
		if createErr == nil {
			break
		}
		lc := strings.ToLower(createErr.Error())
		if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") {
			continue
		}
		break
	}
	if createErr != nil {
		return nil, nil, fmt.Errorf("failed to create booking: %w", createErr)
	}

	log.Info().
		Uint("booking_id", booking.ID).
		Str("reference", booking.ReferenceCode).
		Uint("room_id", room.ID).
		Float64("total", booking.TotalPrice).
		Msg("booking created")

	booking.Room = room
	return booking, nil, nil
}

// GetBooking loads one booking with room, hotel and category for the
// confirmation page.
func (s *BookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.WithContext(ctx).
		Preload("Room").
		Preload("Room.Hotel").
		Preload("Room.Category").
		First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking %d: %w", id, err)
	}
	return &booking, nil
}

// History returns the user's bookings, newest first, 10 per page
// (page starts at 1). Also returns the total row count for pagination.
func (s *BookingService) History(ctx context.Context, userID uint, page int) ([]models.Booking, int64, error) {
	if page < 1 {
		page = 1
	}

	base := s.DB.WithContext(ctx).Model(&models.Booking{}).Where("user_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	var bookings []models.Booking
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Room").
		Preload("Room.Hotel").
		Preload("Room.Category").
		Order("created_at DESC").
		Limit(historyPageSize).
		Offset((page - 1) * historyPageSize).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load booking history: %w", err)
	}
	return bookings, total, nil
}

// CancelBooking transitions a booking to cancelled. Allowed for the
// owning user or staff. Cancelling an already-cancelled booking is a
// no-op reported via alreadyCancelled, not an error.
func (s *BookingService) CancelBooking(ctx context.Context, id uint, userID *uint, isStaff bool) (booking *models.Booking, alreadyCancelled bool, err error) {
	var b models.Booking
	if err := s.DB.WithContext(ctx).First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrBookingNotFound
		}
		return nil, false, fmt.Errorf("failed to load booking %d: %w", id, err)
	}

	owner := userID != nil && b.OwnedBy(*userID)
	if !owner && !isStaff {
		return nil, false, ErrNotAllowed
	}

	if b.IsCancelled() {
		return &b, true, nil
	}

	if err := s.DB.WithContext(ctx).Model(&b).Update("status", models.BookingStatusCancelled).Error; err != nil {
		return nil, false, fmt.Errorf("failed to cancel booking %d: %w", id, err)
	}
	b.Status = models.BookingStatusCancelled

	s.Cache.Invalidate(ctx)
	log.Info().Uint("booking_id", b.ID).Msg("booking cancelled")
	return &b, false, nil
}

// ListBookings is the staff view: all bookings, optional status filter,
// newest first, 20 per page.
func (s *BookingService) ListBookings(ctx context.Context, status string, page int) ([]models.Booking, int64, error) {
	if status != "" && !models.ValidBookingStatus(status) {
		return nil, 0, ErrInvalidStatus
	}
	if page < 1 {
		page = 1
	}

	base := s.DB.WithContext(ctx).Model(&models.Booking{})
	if status != "" {
		base = base.Where("status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	q := s.DB.WithContext(ctx).Preload("Room").Preload("Room.Hotel")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var bookings []models.Booking
	err := q.Order("created_at DESC").
		Limit(adminPageSize).
		Offset((page - 1) * adminPageSize).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, total, nil
}

// BookingPatch is the staff edit payload; nil fields are untouched.
type BookingPatch struct {
	Status    *string `json:"status"`
	CheckIn   *string `json:"check_in"`
	CheckOut  *string `json:"check_out"`
	NumGuests *int    `json:"num_guests"`
}

// UpdateBooking applies a staff edit. Date changes revalidate the range
// (past check-ins allowed so staff can correct historical records) and
// the total is recomputed from the room's current rate on every save.
func (s *BookingService) UpdateBooking(ctx context.Context, id uint, patch BookingPatch) (*models.Booking, utils.FieldErrors, error) {
	var booking models.Booking
	if err := s.DB.WithContext(ctx).Preload("Room").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrBookingNotFound
		}
		return nil, nil, fmt.Errorf("failed to load booking %d: %w", id, err)
	}

	if patch.Status != nil {
		if !models.ValidBookingStatus(*patch.Status) {
			return nil, nil, ErrInvalidStatus
		}
		booking.Status = *patch.Status
	}

	errs := utils.FieldErrors{}
	if patch.CheckIn != nil {
		ci, err := ParseDate(*patch.CheckIn)
		if err != nil {
			errs.Add("check_in", "Enter a valid date (YYYY-MM-DD).")
		} else {
			booking.CheckIn = ci
		}
	}
	if patch.CheckOut != nil {
		co, err := ParseDate(*patch.CheckOut)
		if err != nil {
			errs.Add("check_out", "Enter a valid date (YYYY-MM-DD).")
		} else {
			booking.CheckOut = co
		}
	}
	if errs.HasErrors() {
		return nil, errs, nil
	}

	if !booking.CheckOut.After(booking.CheckIn) {
		errs.Add("check_out", "Check-out must be after check-in.")
	}
	if patch.NumGuests != nil {
		if *patch.NumGuests < 1 {
			errs.Add("num_guests", "At least 1 guest is required.")
		} else if *patch.NumGuests > booking.Room.MaxGuests {
			errs.Add("num_guests", fmt.Sprintf("Maximum %d guests allowed for this room.", booking.Room.MaxGuests))
		} else {
			booking.NumGuests = *patch.NumGuests
		}
	}
	if errs.HasErrors() {
		return nil, errs, nil
	}

	booking.TotalPrice = booking.TotalFor(booking.Room.PricePerNight)

	if err := s.DB.WithContext(ctx).Model(&booking).Updates(map[string]interface{}{
		"status":      booking.Status,
		"check_in":    booking.CheckIn,
		"check_out":   booking.CheckOut,
		"num_guests":  booking.NumGuests,
		"total_price": booking.TotalPrice,
	}).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to update booking %d: %w", id, err)
	}

	s.Cache.Invalidate(ctx)
	return &booking, nil, nil
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Helper function to create a date
func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func uintPtr(v uint) *uint {
	return &v
}

func TestBooking_Nights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		expected int
	}{
		{
			name:     "one night",
			checkIn:  day(2026, 6, 1),
			checkOut: day(2026, 6, 2),
			expected: 1,
		},
		{
			name:     "four nights",
			checkIn:  day(2026, 6, 1),
			checkOut: day(2026, 6, 5),
			expected: 4,
		},
		{
			name:     "across month boundary",
			checkIn:  day(2026, 6, 29),
			checkOut: day(2026, 7, 2),
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Booking{CheckIn: tt.checkIn, CheckOut: tt.checkOut}
			assert.Equal(t, tt.expected, b.Nights())
		})
	}
}

func TestBooking_TotalFor(t *testing.T) {
	b := Booking{CheckIn: day(2026, 6, 1), CheckOut: day(2026, 6, 5)}
	assert.Equal(t, 4*129.50, b.TotalFor(129.50))

	zero := Booking{CheckIn: day(2026, 6, 1), CheckOut: day(2026, 6, 1)}
	assert.Equal(t, 0.0, zero.TotalFor(129.50))
}

func TestBooking_Overlaps(t *testing.T) {
	booking := Booking{
		CheckIn:  day(2026, 6, 10),
		CheckOut: day(2026, 6, 15),
	}

	tests := []struct {
		name    string
		ci      time.Time
		co      time.Time
		overlap bool
	}{
		{
			name:    "request entirely before",
			ci:      day(2026, 6, 1),
			co:      day(2026, 6, 5),
			overlap: false,
		},
		{
			name:    "request entirely after",
			ci:      day(2026, 6, 20),
			co:      day(2026, 6, 25),
			overlap: false,
		},
		{
			name:    "back-to-back before: checkout on booking check-in day",
			ci:      day(2026, 6, 5),
			co:      day(2026, 6, 10),
			overlap: false,
		},
		{
			name:    "back-to-back after: check-in on booking check-out day",
			ci:      day(2026, 6, 15),
			co:      day(2026, 6, 20),
			overlap: false,
		},
		{
			name:    "partial overlap at start",
			ci:      day(2026, 6, 8),
			co:      day(2026, 6, 12),
			overlap: true,
		},
		{
			name:    "partial overlap at end",
			ci:      day(2026, 6, 14),
			co:      day(2026, 6, 18),
			overlap: true,
		},
		{
			name:    "request contains booking",
			ci:      day(2026, 6, 1),
			co:      day(2026, 6, 30),
			overlap: true,
		},
		{
			name:    "booking contains request",
			ci:      day(2026, 6, 11),
			co:      day(2026, 6, 13),
			overlap: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlap, booking.Overlaps(tt.ci, tt.co))
		})
	}
}

func TestBooking_OwnedBy(t *testing.T) {
	guest := Booking{UserID: nil}
	assert.False(t, guest.OwnedBy(1))

	owned := Booking{UserID: uintPtr(7)}
	assert.True(t, owned.OwnedBy(7))
	assert.False(t, owned.OwnedBy(8))
}

func TestValidBookingStatus(t *testing.T) {
	assert.True(t, ValidBookingStatus(BookingStatusPending))
	assert.True(t, ValidBookingStatus(BookingStatusConfirmed))
	assert.True(t, ValidBookingStatus(BookingStatusCancelled))
	assert.False(t, ValidBookingStatus("checked-in"))
	assert.False(t, ValidBookingStatus(""))
}

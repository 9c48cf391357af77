package services

import (
	"fmt"
	"strings"
	"time"

	"hotel-booking/models"
	"hotel-booking/utils"

	"github.com/jinzhu/now"
)

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD form value.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(value))
}

// ValidateStayDates checks the date-range rules shared by the search form
// and the booking form: check-in not in the past (unless allowPast, used
// for staff edits of historical records) and check-out strictly after
// check-in.
func ValidateStayDates(checkIn, checkOut time.Time, allowPast bool) utils.FieldErrors {
	errs := utils.FieldErrors{}
	// compare as calendar days: parsed dates are UTC midnight while
	// BeginningOfDay is server-local, so instants cannot be compared directly
	if !allowPast && checkIn.Format(dateLayout) < now.BeginningOfDay().Format(dateLayout) {
		errs.Add("check_in", "Check-in date cannot be in the past.")
	}
	if !checkOut.After(checkIn) {
		errs.Add("check_out", "Check-out must be after check-in.")
	}
	return errs
}

// ValidateBookingRequest applies the full booking form rules against the
// room's constraints. The room is passed in explicitly so the rules stay
// independent of any request context.
func ValidateBookingRequest(room *models.Room, checkIn, checkOut time.Time, numGuests int, guestName, guestEmail string) utils.FieldErrors {
	errs := ValidateStayDates(checkIn, checkOut, false)
	if numGuests < 1 {
		errs.Add("num_guests", "At least 1 guest is required.")
	} else if numGuests > room.MaxGuests {
		errs.Add("num_guests", fmt.Sprintf("Maximum %d guests allowed for this room.", room.MaxGuests))
	}
	if strings.TrimSpace(guestName) == "" {
		errs.Add("guest_name", "Guest name is required.")
	}
	if strings.TrimSpace(guestEmail) == "" {
		errs.Add("guest_email", "Guest email is required.")
	}
	return errs
}

package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"hotel-booking/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingPayload() map[string]interface{} {
	return map[string]interface{}{
		"check_in":    testDate(10),
		"check_out":   testDate(14),
		"num_guests":  2,
		"guest_name":  "Jane Traveler",
		"guest_email": "jane@example.com",
	}
}

func TestCreateBooking_GuestCheckout(t *testing.T) {
	router, db := setupServer(t)
	room := createRoom(t, db, 150, 2)

	w := doJSON(router, http.MethodPost, fmt.Sprintf("/api/bookings/rooms/%d", room.ID), "", bookingPayload())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, 600.0, data["totalPrice"])
	assert.NotEmpty(t, data["referenceCode"])
	_, hasUser := data["userId"]
	assert.False(t, hasUser, "guest checkout must not attach a user")
}

func TestCreateBooking_AttachesAuthenticatedUser(t *testing.T) {
	router, db := setupServer(t)
	room := createRoom(t, db, 100, 2)
	user := createUser(t, db, "alice", "password123", false)
	token := loginAs(t, router, "alice", "password123")

	w := doJSON(router, http.MethodPost, fmt.Sprintf("/api/bookings/rooms/%d", room.ID), token, bookingPayload())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var booking models.Booking
	require.NoError(t, db.Order("id DESC").First(&booking).Error)
	require.NotNil(t, booking.UserID)
	assert.Equal(t, user.ID, *booking.UserID)
}

func TestCreateBooking_FieldErrors(t *testing.T) {
	router, db := setupServer(t)
	room := createRoom(t, db, 100, 2)

	payload := bookingPayload()
	payload["check_in"] = testDate(-1)
	payload["num_guests"] = 5

	w := doJSON(router, http.MethodPost, fmt.Sprintf("/api/bookings/rooms/%d", room.ID), "", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	errs := body["errors"].(map[string]interface{})
	assert.Contains(t, errs, "check_in")
	assert.Contains(t, errs, "num_guests")

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.Equal(t, int64(0), count, "rejected booking must not be saved")
}

func TestCreateBooking_UnknownRoom(t *testing.T) {
	router, _ := setupServer(t)

	w := doJSON(router, http.MethodPost, "/api/bookings/rooms/9999", "", bookingPayload())
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchRooms_FiltersConfirmedOverlap(t *testing.T) {
	router, db := setupServer(t)
	free := createRoom(t, db, 100, 2)
	blocked := createRoom(t, db, 100, 2)

	seedStatus := func(roomID uint, status string) {
		booking := models.Booking{
			RoomID:        roomID,
			ReferenceCode: fmt.Sprintf("BK-%d-%s", roomID, status),
			CheckIn:       mustDate(t, testDate(11)),
			CheckOut:      mustDate(t, testDate(13)),
			NumGuests:     1,
			Status:        status,
			GuestName:     "G",
			GuestEmail:    "g@example.com",
		}
		require.NoError(t, db.Create(&booking).Error)
	}
	seedStatus(blocked.ID, models.BookingStatusConfirmed)
	seedStatus(free.ID, models.BookingStatusPending)

	path := fmt.Sprintf("/api/rooms?check_in=%s&check_out=%s", testDate(10), testDate(14))
	w := doJSON(router, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	rooms := body["data"].(map[string]interface{})["rooms"].([]interface{})
	ids := make([]float64, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.(map[string]interface{})["ID"].(float64))
	}
	assert.Contains(t, ids, float64(free.ID))
	assert.NotContains(t, ids, float64(blocked.ID))
}

func TestSearchRooms_InvalidDatesRejected(t *testing.T) {
	router, _ := setupServer(t)

	// inverted range
	path := fmt.Sprintf("/api/rooms?check_in=%s&check_out=%s", testDate(14), testDate(10))
	w := doJSON(router, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body["errors"].(map[string]interface{}), "check_out")

	// past check-in
	path = fmt.Sprintf("/api/rooms?check_in=%s&check_out=%s", testDate(-3), testDate(10))
	w = doJSON(router, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingHistory_RequiresAuth(t *testing.T) {
	router, _ := setupServer(t)

	w := doJSON(router, http.MethodGet, "/api/bookings/history", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBookingHistory_ReturnsOwnBookingsOnly(t *testing.T) {
	router, db := setupServer(t)
	room := createRoom(t, db, 100, 2)
	createUser(t, db, "bob", "password123", false)
	token := loginAs(t, router, "bob", "password123")

	// one booking through the API as bob
	w := doJSON(router, http.MethodPost, fmt.Sprintf("/api/bookings/rooms/%d", room.ID), token, bookingPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	// and one anonymous booking that must not appear
	w = doJSON(router, http.MethodPost, fmt.Sprintf("/api/bookings/rooms/%d", room.ID), "", bookingPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodGet, "/api/bookings/history", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, 1.0, data["total"])
	assert.Len(t, data["bookings"].([]interface{}), 1)
}

func TestCancelBooking_OwnerAndStranger(t *testing.T) {
	router, db := setupServer(t)
	room := createRoom(t, db, 100, 2)
	createUser(t, db, "owner", "password123", false)
	createUser(t, db, "stranger", "password123", false)
	ownerToken := loginAs(t, router, "owner", "password123")
	strangerToken := loginAs(t, router, "stranger", "password123")

	w := doJSON(router, http.MethodPost, fmt.Sprintf("/api/bookings/rooms/%d", room.ID), ownerToken, bookingPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	bookingID := decodeBody(t, w)["data"].(map[string]interface{})["id"].(float64)

	cancelPath := fmt.Sprintf("/api/bookings/%.0f/cancel", bookingID)

	// stranger is rejected and the booking is untouched
	w = doJSON(router, http.MethodPost, cancelPath, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	var stored models.Booking
	require.NoError(t, db.First(&stored, uint(bookingID)).Error)
	assert.Equal(t, models.BookingStatusPending, stored.Status)

	// owner cancels
	w = doJSON(router, http.MethodPost, cancelPath, ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Booking has been cancelled.", data["message"])

	// second cancel is informational, not an error
	w = doJSON(router, http.MethodPost, cancelPath, ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "This booking is already cancelled.", data["message"])
}

func TestCancelBooking_StaffRedirectHint(t *testing.T) {
	router, db := setupServer(t)
	room := createRoom(t, db, 100, 2)
	createUser(t, db, "staff", "password123", true)
	staffToken := loginAs(t, router, "staff", "password123")

	w := doJSON(router, http.MethodPost, fmt.Sprintf("/api/bookings/rooms/%d", room.ID), "", bookingPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	bookingID := decodeBody(t, w)["data"].(map[string]interface{})["id"].(float64)

	path := fmt.Sprintf("/api/admin/bookings/%.0f/cancel?next=admin", bookingID)
	w = doJSON(router, http.MethodPost, path, staffToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "admin", data["next"])
}

func TestAdminEndpoints_RequireStaff(t *testing.T) {
	router, db := setupServer(t)
	createUser(t, db, "plain", "password123", false)
	userToken := loginAs(t, router, "plain", "password123")

	w := doJSON(router, http.MethodGet, "/api/admin/bookings", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodGet, "/api/admin/bookings", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminUpdateBooking_ConfirmBlocksAvailability(t *testing.T) {
	router, db := setupServer(t)
	room := createRoom(t, db, 100, 2)
	createUser(t, db, "manager", "password123", true)
	staffToken := loginAs(t, router, "manager", "password123")

	w := doJSON(router, http.MethodPost, fmt.Sprintf("/api/bookings/rooms/%d", room.ID), "", bookingPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	bookingID := decodeBody(t, w)["data"].(map[string]interface{})["id"].(float64)

	// pending booking does not block the search window
	searchPath := fmt.Sprintf("/api/rooms?check_in=%s&check_out=%s", testDate(10), testDate(14))
	w = doJSON(router, http.MethodGet, searchPath, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rooms := decodeBody(t, w)["data"].(map[string]interface{})["rooms"].([]interface{})
	require.Len(t, rooms, 1)

	// staff confirms it
	w = doJSON(router, http.MethodPatch, fmt.Sprintf("/api/admin/bookings/%.0f", bookingID), staffToken,
		map[string]string{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// now the room is gone from the same search
	w = doJSON(router, http.MethodGet, searchPath, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rooms = decodeBody(t, w)["data"].(map[string]interface{})["rooms"].([]interface{})
	assert.Empty(t, rooms)
}

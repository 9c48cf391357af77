package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel-booking/config"
	"hotel-booking/controllers"
	"hotel-booking/models"
	"hotel-booking/routes"
	"hotel-booking/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

// setupServer builds the full router on a fresh in-memory store. The
// package-level handlers read config.DB, so the global is pointed at the
// test database too.
func setupServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	roomService := services.NewRoomService(db, nil)
	bookingService := services.NewBookingService(db, nil)
	exportService := services.NewExportService(db)

	router := routes.SetupRouter(
		controllers.NewRoomController(roomService),
		controllers.NewBookingController(bookingService),
		controllers.NewAdminController(bookingService, exportService),
		zerolog.Nop(),
		testSecret,
	)
	return router, db
}

func createRoom(t *testing.T, db *gorm.DB, price float64, maxGuests int) *models.Room {
	t.Helper()

	hotel := models.Hotel{Name: "Hotel " + uuid.NewString()[:8], Address: "1 Main St", IsActive: true}
	require.NoError(t, db.Create(&hotel).Error)
	category := models.RoomCategory{Name: "Double", Slug: "double-" + uuid.NewString()[:8]}
	require.NoError(t, db.Create(&category).Error)

	room := models.Room{
		HotelID:       hotel.ID,
		CategoryID:    category.ID,
		Name:          "Room " + uuid.NewString()[:8],
		PricePerNight: price,
		MaxGuests:     maxGuests,
		IsAvailable:   true,
	}
	require.NoError(t, db.Create(&room).Error)
	return &room
}

func createUser(t *testing.T, db *gorm.DB, username, password string, isStaff bool) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hash),
		IsStaff:  isStaff,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func loginAs(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func testDate(daysFromNow int) string {
	return time.Now().AddDate(0, 0, daysFromNow).Format("2006-01-02")
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

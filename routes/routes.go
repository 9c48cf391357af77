package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"hotel-booking/controllers"
	"hotel-booking/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers onto the route tree.
func SetupRouter(
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	ac *controllers.AdminController,
	logger zerolog.Logger,
	jwtSecret string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/", controllers.Home)

	api := r.Group("/api")
	{
		hotels := api.Group("/hotels")
		{
			hotels.GET("", controllers.GetHotels)
			hotels.GET("/:id", controllers.GetHotelByID)
		}

		api.GET("/categories", controllers.GetCategories)

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.SearchRooms)
			rooms.GET("/:id", rc.GetRoomByID)
		}

		bookings := api.Group("/bookings")
		{
			// guest checkout allowed: auth is optional on create
			bookings.POST("/rooms/:room_id",
				middleware.AuthOptional(jwtSecret),
				middleware.RateLimit(5, 10),
				bc.CreateBooking)
			bookings.GET("/:id", bc.GetBookingDetails)
			bookings.GET("/history", middleware.AuthRequired(jwtSecret), bc.GetHistory)
			bookings.POST("/:id/cancel", middleware.AuthRequired(jwtSecret), bc.CancelBooking)
		}

		auth := api.Group("/auth")
		{
			auth.POST("/register", func(c *gin.Context) {
				controllers.Register(c, jwtSecret)
			})
			auth.POST("/login", func(c *gin.Context) {
				controllers.Login(c, jwtSecret)
			})
			auth.POST("/logout", controllers.Logout)
		}

		admin := api.Group("/admin", middleware.StaffRequired(jwtSecret))
		{
			admin.GET("/bookings", ac.ListBookings)
			admin.GET("/bookings/export", ac.ExportBookings)
			admin.PATCH("/bookings/:id", ac.UpdateBooking)
			admin.POST("/bookings/:id/cancel", bc.CancelBooking)

			admin.POST("/hotels", controllers.CreateHotel)
			admin.PATCH("/hotels/:id", controllers.UpdateHotel)
			admin.DELETE("/hotels/:id", controllers.DeleteHotel)

			admin.POST("/categories", controllers.CreateCategory)
			admin.PATCH("/categories/:id", controllers.UpdateCategory)
			admin.DELETE("/categories/:id", controllers.DeleteCategory)

			admin.POST("/rooms", controllers.CreateRoom)
			admin.PATCH("/rooms/:id", controllers.UpdateRoom)
			admin.PUT("/rooms/:id", controllers.UpdateRoom)
			admin.DELETE("/rooms/:id", controllers.DeleteRoom)
			admin.POST("/rooms/:id/images", controllers.AddRoomImage)
			admin.DELETE("/images/:id", controllers.DeleteRoomImage)
		}
	}

	return r
}

package routes

import (
	"net/http"
	"time"

	"shutterbook/handlers"
	"shutterbook/middleware"
	"shutterbook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the weekly-template and slot
// derivation endpoints. Slot derivation is public; template management is
// photographer-only.
func RegisterAvailabilityRoutes(r *gin.Engine, ah *handlers.AvailabilityHandler) {
	api := r.Group("/api/availability")
	{
		api.GET("/:photographerId/slots", ah.GetOpenSlotsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthPhotographerMiddleware())
		protected.GET("", ah.GetAvailabilityHandler)
		protected.PUT("", ah.UpdateAvailabilityHandler)
	}
}

// RegisterBookingRoutes registers the booking endpoints. Creation is public
// (clients book without an account); listing and mutation require the
// owning photographer.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	api := r.Group("/api/bookings")
	{
		api.POST("", bh.CreateBookingHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthPhotographerMiddleware())
		protected.GET("", bh.ListBookingsHandler)
		protected.PUT("/:id/status", bh.UpdateBookingStatusHandler)
		protected.DELETE("/:id", bh.CancelBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, ah *handlers.AvailabilityHandler, bh *handlers.BookingHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAvailabilityRoutes(r, ah)
	RegisterBookingRoutes(r, bh)
	RegisterHealthRoute(r)
}

// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pitchside/handlers"
	"pitchside/middleware"
	"pitchside/utils"
)

// RegisterContentRoutes registers the public marketing-site endpoints.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/programs", hb.Content.ListProgramsHandler)
		api.GET("/programs/:id", hb.Content.GetProgramHandler)
		api.GET("/coaches", hb.Coach.ListCoachesHandler)
		api.GET("/coaches/:id", hb.Coach.GetCoachHandler)
		api.GET("/facilities", hb.Content.ListFacilitiesHandler)
		api.GET("/testimonials", hb.Content.ListTestimonialsHandler)
		api.GET("/gallery", hb.Content.ListGalleryHandler)
		api.GET("/achievements", hb.Content.ListAchievementsHandler)
		api.POST("/contact", hb.Content.SubmitContactHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.GET("", hb.Booking.ListBookingsHandler)
		bookingGroup.GET("/available-slots", hb.Booking.AvailableSlotsHandler)
		bookingGroup.GET("/:id", hb.Booking.GetBookingHandler)
		bookingGroup.POST("", hb.Booking.CreateBookingHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for back-office operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		// Login is the only unauthenticated admin endpoint.
		adminGroup.POST("/login", hb.Admin.LoginHandler)

		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.POST("/logout", hb.Admin.LogoutHandler)

		adminGroup.PUT("/bookings/:id", hb.Booking.UpdateBookingHandler)
		adminGroup.DELETE("/bookings/:id", hb.Booking.CancelBookingHandler)

		adminGroup.GET("/coaches", hb.Coach.AdminListCoachesHandler)
		adminGroup.POST("/coaches", hb.Coach.CreateCoachHandler)
		adminGroup.PUT("/coaches/:id", hb.Coach.UpdateCoachHandler)
		adminGroup.DELETE("/coaches/:id", hb.Coach.DeleteCoachHandler)

		adminGroup.GET("/programs", hb.Content.AdminListProgramsHandler)
		adminGroup.POST("/programs", hb.Content.CreateProgramHandler)
		adminGroup.PUT("/programs/:id", hb.Content.UpdateProgramHandler)
		adminGroup.DELETE("/programs/:id", hb.Content.DeleteProgramHandler)

		adminGroup.POST("/facilities", hb.Content.CreateFacilityHandler)
		adminGroup.PUT("/facilities/:id", hb.Content.UpdateFacilityHandler)
		adminGroup.DELETE("/facilities/:id", hb.Content.DeleteFacilityHandler)

		adminGroup.GET("/testimonials", hb.Content.AdminListTestimonialsHandler)
		adminGroup.POST("/testimonials", hb.Content.CreateTestimonialHandler)
		adminGroup.PUT("/testimonials/:id", hb.Content.UpdateTestimonialHandler)
		adminGroup.DELETE("/testimonials/:id", hb.Content.DeleteTestimonialHandler)

		adminGroup.POST("/gallery", hb.Content.AddGalleryImageHandler)
		adminGroup.DELETE("/gallery/:id", hb.Content.DeleteGalleryImageHandler)

		adminGroup.POST("/achievements", hb.Content.CreateAchievementHandler)
		adminGroup.PUT("/achievements/:id", hb.Content.UpdateAchievementHandler)
		adminGroup.DELETE("/achievements/:id", hb.Content.DeleteAchievementHandler)

		adminGroup.GET("/contact-messages", hb.Content.ListContactMessagesHandler)
		adminGroup.PUT("/contact-messages/:id/read", hb.Content.MarkContactReadHandler)
		adminGroup.DELETE("/contact-messages/:id", hb.Content.DeleteContactMessageHandler)

		adminGroup.POST("/uploads", hb.Upload.UploadImageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": status})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterContentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
